// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying HTTP transport and GraphQL client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// NewHTTPClient builds the HTTP client a caller hands to NewHTTPTransport.
// An empty token leaves requests unauthenticated. With waitOnLimit set, secondary
// rate limit responses are slept through for up to an hour instead of returned.
func NewHTTPClient(token string, waitOnLimit bool) (*http.Client, error) {
	base := http.DefaultTransport
	if waitOnLimit {
		rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
		}
		base = rateLimitWaiter
	}
	if token == "" {
		return &http.Client{Transport: base}, nil
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   base,
			Source: ts,
		},
	}, nil
}

// HistoryCounter reports the exact number of commits on a repository's default branch.
type HistoryCounter interface {
	CountHistory(ctx context.Context, owner, name string) (int, error)
}

// GitHubHistoryCounter is the GraphQL implementation of HistoryCounter.
type GitHubHistoryCounter struct {
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// historyQuery reads totalCount from the default branch's commit history.
type historyQuery struct {
	Repository struct {
		DefaultBranchRef *struct {
			Target struct {
				Commit struct {
					History struct {
						TotalCount int
					}
				} `graphql:"... on Commit"`
			}
		}
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewHistoryCounter creates a GitHubHistoryCounter. An empty graphqlURL targets github.com.
// GraphQL requires an authenticated httpClient.
func NewHistoryCounter(graphqlURL string, httpClient *http.Client, logger *log.Logger) *GitHubHistoryCounter {
	client := githubv4.NewClient(httpClient)
	if graphqlURL != "" {
		client = githubv4.NewEnterpriseClient(graphqlURL, httpClient)
	}
	return &GitHubHistoryCounter{
		graphqlClient: client,
		logger:        logger,
	}
}

func (g *GitHubHistoryCounter) CountHistory(ctx context.Context, owner, name string) (int, error) {
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(name),
	}
	var q historyQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return 0, fmt.Errorf("failed to execute GraphQL query for history of %s/%s: %w", owner, name, err)
	}
	if q.Repository.DefaultBranchRef == nil {
		g.logger.Printf("  %s/%s has no default branch, counting 0 commits\n", owner, name)
		return 0, nil
	}
	return q.Repository.DefaultBranchRef.Target.Commit.History.TotalCount, nil
}
