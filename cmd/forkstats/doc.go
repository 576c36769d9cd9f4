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

// Package main implements the forkstats command-line interface.
// The tool queries the GitHub GraphQL API for a repository and its fork
// network and prints a ranked table summarizing each fork's activity.
//
// The CLI supports:
//   - A repository argument in owner/repo form, or as a full GitHub URL
//   - GitHub token authentication via flag or environment variable
//   - Table output (default) or NDJSON with the --json flag
//   - GitHub Enterprise endpoints via configuration
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	forkstats <owner>/<repo> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	forkstats golang/go
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
