package usecase

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/naka-gawa/repo-commits/internal/domain"
	"github.com/naka-gawa/repo-commits/internal/gateway"
)

const (
	listPageSize   = "100"
	commitPageSize = "1"
)

// Collector lists a user's repositories and a commit count for each.
// It keeps no state between calls; all requests go through the injected transport,
// one at a time.
type Collector struct {
	transport gateway.Transport
	baseURL   string
	logger    *log.Logger
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithBaseURL points the collector at another REST API root, e.g. GitHub Enterprise.
func WithBaseURL(baseURL string) CollectorOption {
	return func(c *Collector) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithLogger sets the logger used for progress output.
func WithLogger(logger *log.Logger) CollectorOption {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a new Collector instance.
func NewCollector(transport gateway.Transport, opts ...CollectorOption) *Collector {
	c := &Collector{
		transport: transport,
		baseURL:   gateway.DefaultBaseURL(),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listedRepository is one element of the listing endpoint's array.
// Name is nil when the field is missing or null.
type listedRepository struct {
	Name *string `json:"name"`
}

// Collect returns the repositories owned by identity in listing order, each with
// the length of its first commits page as CommitCount.
func (c *Collector) Collect(ctx context.Context, identity string) ([]domain.RepositorySummary, error) {
	if identity == "" {
		return nil, ErrInvalidInput
	}

	results := []domain.RepositorySummary{}
	next := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(identity))
	for next != "" {
		c.logger.Printf("  Fetching repositories page %s\n", next)
		resp, err := c.transport.Get(ctx, next, map[string]string{"per_page": listPageSize})
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", identity, err)
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return nil, &APIError{Kind: NotFound, StatusCode: resp.StatusCode, Identity: identity}
		case http.StatusForbidden:
			return nil, &APIError{Kind: RateLimited, StatusCode: resp.StatusCode, Identity: identity}
		}

		var repos []listedRepository
		if err := resp.DecodeJSON(&repos); err != nil {
			return nil, fmt.Errorf("failed to decode repositories for %s: %w", identity, err)
		}
		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			if repo.Name == nil {
				continue // Skip entries without a name.
			}
			count, err := c.countCommits(ctx, identity, *repo.Name)
			if err != nil {
				return nil, err
			}
			results = append(results, domain.RepositorySummary{Name: *repo.Name, CommitCount: count})
		}

		next, _ = gateway.NextLink(resp)
	}

	c.logger.Printf("Collected %d repositories for %s.\n", len(results), identity)
	return results, nil
}

// countCommits returns the length of the first commits page as reported by the server.
// The status code is not inspected; a body that is not an array counts as zero.
func (c *Collector) countCommits(ctx context.Context, identity, repo string) (int, error) {
	commitsURL := fmt.Sprintf("%s/repos/%s/%s/commits", c.baseURL, url.PathEscape(identity), url.PathEscape(repo))
	resp, err := c.transport.Get(ctx, commitsURL, map[string]string{"per_page": commitPageSize})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch commits for %s/%s: %w", identity, repo, err)
	}

	var commits []any
	if err := resp.DecodeJSON(&commits); err != nil {
		c.logger.Printf("  Commits for %s/%s are not a list (status %d), counting 0\n", identity, repo, resp.StatusCode)
		return 0, nil
	}
	return len(commits), nil
}
