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

package giterror

import (
	"errors"
	"fmt"
	"testing"
)

func TestInspectorClassification(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name        string
		err         error
		isAuth      bool
		isNotFound  bool
		isRateLimit bool
		isNetwork   bool
	}{
		{
			name:   "bad credentials",
			err:    errors.New("non-200 OK status code: 401 Unauthorized body: bad credentials"),
			isAuth: true,
		},
		{
			name:   "forbidden",
			err:    errors.New("403 Forbidden"),
			isAuth: true,
		},
		{
			name:       "graphql resolution failure",
			err:        errors.New(`Could not resolve to a Repository with the name 'octocat/nope'`),
			isNotFound: true,
		},
		{
			name:       "plain 404",
			err:        errors.New("unexpected status: 404"),
			isNotFound: true,
		},
		{
			name:        "rate limit message",
			err:         errors.New("API rate limit exceeded for user ID 12345"),
			isRateLimit: true,
		},
		{
			name:      "connection refused",
			err:       errors.New("dial tcp 140.82.112.6:443: connect: connection refused"),
			isNetwork: true,
		},
		{
			name:      "dns failure",
			err:       errors.New("lookup api.github.com: no such host"),
			isNetwork: true,
		},
		{
			name:      "timeout",
			err:       errors.New("context deadline exceeded (Client.Timeout exceeded)"),
			isNetwork: true,
		},
		{
			name: "unclassified error",
			err:  errors.New("something unexpected happened"),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.isAuth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.isAuth)
			}
			if got := inspector.IsNotFoundError(tt.err); got != tt.isNotFound {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.isNotFound)
			}
			if got := inspector.IsRateLimitError(tt.err); got != tt.isRateLimit {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.isRateLimit)
			}
			if got := inspector.IsNetworkError(tt.err); got != tt.isNetwork {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.isNetwork)
			}
		})
	}
}

// typedAuthError is a test error that self-identifies through the
// interface the chain inspector looks for.
type typedAuthError struct{}

func (typedAuthError) Error() string     { return "token was rejected" }
func (typedAuthError) IsAuthError() bool { return true }

func TestErrorChainInspector(t *testing.T) {
	inspector := NewErrorChainInspector(NewInspector())

	wrapped := fmt.Errorf("query failed: %w", typedAuthError{})
	if !inspector.IsAuthError(wrapped) {
		t.Error("expected typed error in chain to classify as auth error")
	}

	// Falls back to string inspection when no typed error is present.
	if !inspector.IsNotFoundError(errors.New("404 not found")) {
		t.Error("expected string fallback to classify not-found error")
	}

	if inspector.IsRateLimitError(errors.New("all fine")) {
		t.Error("did not expect unclassified error to match rate limit")
	}
}
