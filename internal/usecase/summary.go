package usecase

import (
	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/repo-commits/internal/domain"
)

// Summarize computes descriptive statistics over the commit counts of repos.
func Summarize(repos []domain.RepositorySummary) domain.Summary {
	if len(repos) == 0 {
		return domain.Summary{}
	}

	counts := make(stats.Float64Data, 0, len(repos))
	for _, repo := range repos {
		counts = append(counts, float64(repo.CommitCount))
	}

	// Errors are only returned for empty input, which is excluded above.
	total, _ := counts.Sum()
	mean, _ := counts.Mean()
	median, _ := counts.Median()
	maxCount, _ := counts.Max()

	return domain.Summary{
		Repositories: len(repos),
		TotalCommits: int(total),
		Mean:         mean,
		Median:       median,
		Max:          int(maxCount),
	}
}
