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

// Package giterror classifies errors returned by the GitHub API into the
// categories the CLI cares about: authentication failures, missing
// repositories, rate limiting, and network problems.
//
// GitHub surfaces most failures as GraphQL error messages or HTTP status
// text rather than typed errors, so classification falls back to message
// inspection. The ErrorChainInspector additionally recognizes typed errors
// anywhere in a wrapped error chain.
package giterror
