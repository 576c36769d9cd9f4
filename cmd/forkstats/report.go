// Copyright 2026 Oliver Steele
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osteele/forkstats/internal/config"
	forkerrors "github.com/osteele/forkstats/internal/errors"
	"github.com/osteele/forkstats/internal/github"
	"github.com/osteele/forkstats/internal/report"
	"github.com/osteele/forkstats/pkg/version"
)

// newRootCommand builds the single-purpose root command.
func newRootCommand() *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "forkstats <owner>/<repo>",
		Short: "Summarize the fork network of a GitHub repository",
		Long: `Forkstats queries the GitHub GraphQL API for a repository and its fork
network, then prints a ranked table summarizing each fork's activity:
stars, issues, pull requests, forks, and time of last push. If the target
is itself a fork, its parent is included in the table.

The repository may be given as <owner>/<repo> or as a full GitHub URL.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			opts.stdout = cmd.OutOrStdout()
			return runReport(ctx, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Number of forks to fetch, 1-100 (default from config, 30)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Emit one JSON object per row instead of a table")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for the API request")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")

	return cmd
}

// reportOptions carries the resolved flag values into runReport.
type reportOptions struct {
	token      string
	limit      int
	jsonOutput bool
	timeout    time.Duration
	configPath string
	stdout     io.Writer
}

// runReport executes the report: parse the repository argument, resolve
// configuration and token, fetch the fork network, and render it. The token
// check happens before the client is ever constructed, so no network
// activity is possible without credentials.
func runReport(ctx context.Context, repoArg string, opts reportOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	token := resolveToken(opts.token)
	if token == "" {
		return fmt.Errorf("no GitHub token found. Create a personal access token at https://github.com/settings/tokens and export it as GITHUB_TOKEN, or pass it with --token: %w", forkerrors.ErrMissingToken)
	}

	limit := opts.limit
	if limit == 0 {
		limit = cfg.Defaults.ForkLimit
	}
	if limit < 1 || limit > github.MaxForkLimit {
		return fmt.Errorf("invalid --limit %d: must be between 1 and %d", limit, github.MaxForkLimit)
	}

	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)
	return writeReport(ctx, client, owner, repo, limit, opts)
}

// writeReport fetches the fork network with the given client and renders it
// in the selected output mode.
func writeReport(ctx context.Context, client github.Client, owner, repo string, limit int, opts reportOptions) error {
	network, err := client.FetchForkNetwork(ctx, owner, repo, github.FetchOptions{Limit: limit})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return report.WriteRows(opts.stdout, report.Rows(network))
	}
	return report.Render(opts.stdout, network)
}

// parseRepository parses an owner/repo argument into its components.
// A full repository URL is tolerated: the github.com prefix, a trailing
// slash, and a .git suffix are stripped before splitting.
func parseRepository(repoArg string) (owner, repo string, err error) {
	s := strings.TrimSpace(repoArg)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <owner>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// resolveToken returns the GitHub token from flag or environment variable.
// A .env file in the working directory is honored if present; it never
// overrides variables already set in the environment.
func resolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	_ = godotenv.Load()
	return os.Getenv("GITHUB_TOKEN")
}
