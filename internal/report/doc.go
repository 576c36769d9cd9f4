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

// Package report turns a fetched fork network into console output.
//
// The row list is built in a fixed construction order (parent when present,
// then the target, then the fetched forks) and sorted once with a composite
// comparator: star count ascending, last-push time as the tiebreak. Reading
// top to bottom, the most-starred repositories therefore appear last,
// nearest the prompt.
//
// Two output modes are supported: a bordered table with human-relative push
// dates followed by summary notes, and NDJSON with one repository summary
// per line for piping into other tools.
package report
