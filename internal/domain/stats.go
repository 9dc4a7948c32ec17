// Package domain contains the core data structures and domain logic for the application.
package domain

// RepositorySummary holds the commit count reported for a single repository.
// It is the core domain entity of this application.
type RepositorySummary struct {
	Name        string `json:"name"`
	CommitCount int    `json:"commit_count"`
}

// RepositoryReport is a RepositorySummary as it appears in a user report.
// HistoryTotal is only set when exact commit totals were requested.
type RepositoryReport struct {
	RepositorySummary
	HistoryTotal *int `json:"history_total,omitempty"`
}

// Summary holds descriptive statistics over the commit counts of a user's repositories.
type Summary struct {
	Repositories int     `json:"repositories"`
	TotalCommits int     `json:"total_commits"`
	Mean         float64 `json:"mean"`
	Median       float64 `json:"median"`
	Max          int     `json:"max"`
}

// UserReport is the aggregated output for one user.
type UserReport struct {
	User         string             `json:"user"`
	Repositories []RepositoryReport `json:"repositories"`
	Summary      Summary            `json:"summary"`
}
