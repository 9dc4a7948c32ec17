// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/naka-gawa/repo-commits/internal/gateway"
	"github.com/naka-gawa/repo-commits/internal/usecase"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Lists a user's repositories with commit counts and outputs as JSON",
	Long:  `Lists the repositories owned by one or more GitHub users together with a commit count for each, and outputs the result in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		users, _ := cmd.Flags().GetStringSlice("user")
		baseURL, _ := cmd.Flags().GetString("base-url")
		graphqlURL, _ := cmd.Flags().GetString("graphql-url")
		withHistory, _ := cmd.Flags().GetBool("history")
		waitOnLimit, _ := cmd.Flags().GetBool("wait-on-limit")
		token := os.Getenv("GITHUB_TOKEN")
		if withHistory && token == "" {
			fmt.Fprintln(os.Stderr, "Error: --history requires the GITHUB_TOKEN environment variable.")
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		httpClient, err := gateway.NewHTTPClient(token, waitOnLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create HTTP client: %v\n", err)
			os.Exit(1)
		}
		opts := []usecase.CollectorOption{usecase.WithLogger(logger)}
		if baseURL != "" {
			opts = append(opts, usecase.WithBaseURL(baseURL))
		}
		collector := usecase.NewCollector(gateway.NewHTTPTransport(httpClient), opts...)

		var history gateway.HistoryCounter
		if withHistory {
			history = gateway.NewHistoryCounter(graphqlURL, httpClient, logger)
		}
		aggregator := usecase.NewAggregator(collector, history, logger)

		reports, err := aggregator.Aggregate(ctx, users, withHistory)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to collect repositories: %v\n", err)
			os.Exit(1)
		}

		jsonData, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(string(jsonData))
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
	reposCmd.Flags().StringSliceP("user", "u", nil, "Target GitHub user name, repeatable (required)")
	reposCmd.MarkFlagRequired("user")
	reposCmd.Flags().String("base-url", "", "REST API root, e.g. https://ghe.example.com/api/v3 (default https://api.github.com)")
	reposCmd.Flags().String("graphql-url", "", "GraphQL endpoint used by --history (default https://api.github.com/graphql)")
	reposCmd.Flags().Bool("history", false, "Also fetch the exact commit total of each repository's default branch")
	reposCmd.Flags().Bool("wait-on-limit", false, "Sleep through GitHub secondary rate limits instead of failing")
}
