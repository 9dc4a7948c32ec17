// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"

	"github.com/naka-gawa/repo-commits/internal/domain"
	"github.com/naka-gawa/repo-commits/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// RepositoryCollector defines the behavior the aggregator needs from a Collector.
type RepositoryCollector interface {
	Collect(ctx context.Context, identity string) ([]domain.RepositorySummary, error)
}

// Aggregator is the use case for building commit reports for several users.
// It orchestrates the collecting and combining of data.
type Aggregator struct {
	collector RepositoryCollector
	history   gateway.HistoryCounter
	logger    *log.Logger
}

// NewAggregator creates a new Aggregator instance.
// history may be nil when exact commit totals are never requested.
func NewAggregator(collector RepositoryCollector, history gateway.HistoryCounter, logger *log.Logger) *Aggregator {
	return &Aggregator{
		collector: collector,
		history:   history,
		logger:    logger,
	}
}

// Aggregate collects repositories for every user concurrently and builds one report per user,
// in the order the users were given.
// The `withHistory` flag controls whether exact commit totals are fetched for each repository.
func (a *Aggregator) Aggregate(ctx context.Context, users []string, withHistory bool) ([]*domain.UserReport, error) {
	a.logger.Println("Usecase: Starting data aggregation...")

	reports := make([]*domain.UserReport, len(users))

	// Use an errgroup to collect each user concurrently.
	eg, egCtx := errgroup.WithContext(ctx)

	for i, user := range users {
		i, user := i, user
		eg.Go(func() error {
			report, err := a.buildReport(egCtx, user, withHistory)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	a.logger.Println("Usecase: Aggregation complete.")
	return reports, nil
}

func (a *Aggregator) buildReport(ctx context.Context, user string, withHistory bool) (*domain.UserReport, error) {
	a.logger.Printf("[%s] Collecting repositories...\n", user)
	summaries, err := a.collector.Collect(ctx, user)
	if err != nil {
		return nil, err
	}

	repos := make([]domain.RepositoryReport, 0, len(summaries))
	for _, summary := range summaries {
		entry := domain.RepositoryReport{RepositorySummary: summary}
		if withHistory && a.history != nil {
			total, err := a.history.CountHistory(ctx, user, summary.Name)
			if err != nil {
				return nil, err
			}
			entry.HistoryTotal = &total
		}
		repos = append(repos, entry)
	}

	return &domain.UserReport{
		User:         user,
		Repositories: repos,
		Summary:      Summarize(summaries),
	}, nil
}
