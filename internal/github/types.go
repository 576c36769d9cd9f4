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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import "time"

// RepoSummary represents one repository node returned by the API.
// Every count is normalized to a plain int by the GraphQL layer, so
// consumers never see wrapper objects or absent fields.
type RepoSummary struct {
	// NameWithOwner is the qualified repository name, e.g. "golang/go".
	NameWithOwner string `json:"name_with_owner"`

	// URL is the canonical web address of the repository.
	URL string `json:"url"`

	// PushedAt is the time of the most recent push to any branch.
	PushedAt time.Time `json:"pushed_at"`

	Stars        int `json:"stars"`
	Issues       int `json:"issues"`
	PullRequests int `json:"pull_requests"`
	Forks        int `json:"forks"`
}

// ForkNetwork is the result of a single fork-network query: the target
// repository, its parent when the target is itself a fork, and up to
// FetchOptions.Limit of the target's most-starred forks.
type ForkNetwork struct {
	// Target is the repository named on the command line.
	Target RepoSummary

	// Parent is non-nil only when the target is a fork. Its Forks field
	// carries the parent's own total fork count.
	Parent *RepoSummary

	// Forks holds the fetched fork nodes, ordered by star count descending
	// as returned by the API.
	Forks []RepoSummary

	// TotalForks is the platform-reported total fork count of the target,
	// which may exceed len(Forks).
	TotalForks int
}

// FetchOptions configures how the fork network is fetched.
type FetchOptions struct {
	// Limit controls how many forks to request.
	// Defaults to 30 if not specified. Maximum is 100 per GitHub's API limits.
	Limit int
}

// Default values for fetch operations
const (
	// DefaultForkLimit is the number of forks requested when no limit is given.
	DefaultForkLimit = 30

	// MaxForkLimit is GitHub's per-connection page cap.
	MaxForkLimit = 100
)
