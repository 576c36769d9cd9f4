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

package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"

	forkerrors "github.com/osteele/forkstats/internal/errors"
	"github.com/osteele/forkstats/internal/giterror"
)

// GraphQLClient implements the GitHub Client interface using GraphQL API.
// It fetches the entire fork network in one round trip and maps transport
// and API-level failures onto the application's sentinel errors.
type GraphQLClient struct {
	client    *graphql.Client
	token     string
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// The client is configured with:
//   - Authentication via the provided token
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//
// Request deadlines are controlled by the caller's context; the client
// performs no retries of its own.
func NewGraphQLClient(token, endpoint string) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:      2,
		IdleConnTimeout:   90 * time.Second,
		ForceAttemptHTTP2: true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		token:     token,
		inspector: giterror.NewErrorChainInspector(giterror.NewInspector()),
	}
}

// repoNode is the field set requested for the parent and each fork node.
// The target repository requests the same fields inline.
type repoNode struct {
	NameWithOwner  graphql.String
	URL            graphql.String
	PushedAt       time.Time
	StargazerCount graphql.Int
	ForkCount      graphql.Int
	Issues         struct {
		TotalCount graphql.Int
	}
	PullRequests struct {
		TotalCount graphql.Int
	}
}

// FetchForkNetwork fetches the target repository, its optional parent, and
// up to opts.Limit forks ordered by star count descending, all in a single
// GraphQL round trip.
func (c *GraphQLClient) FetchForkNetwork(ctx context.Context, owner, repo string, opts FetchOptions) (*ForkNetwork, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultForkLimit
	}
	if limit > MaxForkLimit {
		limit = MaxForkLimit
	}

	var query struct {
		Repository struct {
			NameWithOwner  graphql.String
			URL            graphql.String
			PushedAt       time.Time
			StargazerCount graphql.Int
			ForkCount      graphql.Int
			Issues         struct {
				TotalCount graphql.Int
			}
			PullRequests struct {
				TotalCount graphql.Int
			}
			Parent *repoNode
			Forks  struct {
				TotalCount graphql.Int
				Nodes      []repoNode
			} `graphql:"forks(first: $limit, orderBy: {field: STARGAZERS, direction: DESC})"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"repo":  graphql.String(repo),
		"limit": graphql.Int(int32(limit)), // #nosec G115 - limit is capped at MaxForkLimit
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	network := &ForkNetwork{
		Target: RepoSummary{
			NameWithOwner: string(query.Repository.NameWithOwner),
			URL:           string(query.Repository.URL),
			PushedAt:      query.Repository.PushedAt,
			Stars:         int(query.Repository.StargazerCount),
			Issues:        int(query.Repository.Issues.TotalCount),
			PullRequests:  int(query.Repository.PullRequests.TotalCount),
			Forks:         int(query.Repository.ForkCount),
		},
		TotalForks: int(query.Repository.Forks.TotalCount),
		Forks:      make([]RepoSummary, 0, len(query.Repository.Forks.Nodes)),
	}

	if query.Repository.Parent != nil {
		parent := toSummary(*query.Repository.Parent)
		network.Parent = &parent
	}

	for _, node := range query.Repository.Forks.Nodes {
		network.Forks = append(network.Forks, toSummary(node))
	}

	return network, nil
}

// toSummary normalizes a GraphQL repository node into the domain model.
// Every count becomes a plain int here, in one place, so the renderer never
// has to distinguish raw numbers from total-count wrappers.
func toSummary(n repoNode) RepoSummary {
	return RepoSummary{
		NameWithOwner: string(n.NameWithOwner),
		URL:           string(n.URL),
		PushedAt:      n.PushedAt,
		Stars:         int(n.StargazerCount),
		Issues:        int(n.Issues.TotalCount),
		PullRequests:  int(n.PullRequests.TotalCount),
		Forks:         int(n.ForkCount),
	}
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error, owner, repo string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", forkerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", forkerrors.ErrInvalidToken)
	}

	if c.inspector.IsNotFoundError(err) {
		return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, forkerrors.ErrRepoNotFound)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", forkerrors.ErrNetworkFailure)
	}

	return fmt.Errorf("failed to fetch fork network: %w", err)
}
