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
	"time"

	forkerrors "github.com/osteele/forkstats/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
type MockClient struct {
	// Network to return
	Network *ForkNetwork

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount int
	LastOwner string
	LastRepo  string
	LastOpts  FetchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Network: generateTestNetwork(),
	}
}

// FetchForkNetwork implements the Client interface
func (m *MockClient) FetchForkNetwork(ctx context.Context, owner, repo string, opts FetchOptions) (*ForkNetwork, error) {
	// Track the call
	m.CallCount++
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastOpts = opts

	// Check for context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// Simulate various error conditions
	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", forkerrors.ErrInvalidToken)
	}

	if m.ShouldFailNetwork {
		return nil, fmt.Errorf("network timeout: %w", forkerrors.ErrNetworkFailure)
	}

	if m.ShouldFailNotFound || (owner == "nonexistent" && repo == "repo") {
		return nil, fmt.Errorf("repository not found: %w", forkerrors.ErrRepoNotFound)
	}

	// Return configured error if set
	if m.Error != nil {
		return nil, m.Error
	}

	return m.Network, nil
}

// generateTestNetwork creates a sample fork network for testing
func generateTestNetwork() *ForkNetwork {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)
	lastYear := now.Add(-365 * 24 * time.Hour)

	return &ForkNetwork{
		Target: RepoSummary{
			NameWithOwner: "alice/widgets",
			URL:           "https://github.com/alice/widgets",
			PushedAt:      yesterday,
			Stars:         128,
			Issues:        14,
			PullRequests:  7,
			Forks:         3,
		},
		Forks: []RepoSummary{
			{
				NameWithOwner: "bob/widgets",
				URL:           "https://github.com/bob/widgets",
				PushedAt:      lastWeek,
				Stars:         9,
				Issues:        0,
				PullRequests:  1,
				Forks:         0,
			},
			{
				NameWithOwner: "carol/widgets",
				URL:           "https://github.com/carol/widgets",
				PushedAt:      lastYear,
				Stars:         0,
				Issues:        0,
				PullRequests:  0,
				Forks:         0,
			},
		},
		TotalForks: 3,
	}
}
