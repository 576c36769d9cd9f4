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

// Package github provides a client for interacting with GitHub's GraphQL API
// to fetch a repository and its fork network. It issues a single query that
// covers the target repository, its parent (when the target is itself a
// fork), and the most-starred forks, and maps API failures onto the
// application's sentinel errors.
//
// The package includes:
//   - A Client interface for fetching a fork network
//   - A GraphQL implementation using the shurcooL/graphql library
//   - Mock client for testing
//   - Type definitions for repository summaries
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	network, err := client.FetchForkNetwork(ctx, "golang", "go", github.FetchOptions{
//	    Limit: 30,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, fork := range network.Forks {
//	    // Process fork summary
//	}
package github
