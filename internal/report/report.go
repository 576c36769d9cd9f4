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

package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osteele/forkstats/internal/github"
)

// Row is one rendered line of the report: a repository summary plus the
// owner segment the table displays.
type Row struct {
	Owner         string    `json:"owner"`
	NameWithOwner string    `json:"name_with_owner"`
	URL           string    `json:"url"`
	PushedAt      time.Time `json:"pushed_at"`
	Stars         int       `json:"stars"`
	Issues        int       `json:"issues"`
	PullRequests  int       `json:"pull_requests"`
	Forks         int       `json:"forks"`
}

// Rows builds the sorted row list for a fork network. Construction order is
// parent (if present), then the target, then the fetched forks; a single
// composite sort then orders all rows by star count ascending, breaking ties
// by last-push time ascending.
func Rows(network *github.ForkNetwork) []Row {
	rows := make([]Row, 0, len(network.Forks)+2)

	if network.Parent != nil {
		rows = append(rows, newRow(*network.Parent))
	}
	rows = append(rows, newRow(network.Target))
	for _, fork := range network.Forks {
		rows = append(rows, newRow(fork))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Stars != rows[j].Stars {
			return rows[i].Stars < rows[j].Stars
		}
		return rows[i].PushedAt.Before(rows[j].PushedAt)
	})

	return rows
}

func newRow(summary github.RepoSummary) Row {
	return Row{
		Owner:         ownerSegment(summary.NameWithOwner),
		NameWithOwner: summary.NameWithOwner,
		URL:           summary.URL,
		PushedAt:      summary.PushedAt,
		Stars:         summary.Stars,
		Issues:        summary.Issues,
		PullRequests:  summary.PullRequests,
		Forks:         summary.Forks,
	}
}

// ownerSegment returns the owner part of an "owner/name" qualified name.
func ownerSegment(nameWithOwner string) string {
	if idx := strings.Index(nameWithOwner, "/"); idx >= 0 {
		return nameWithOwner[:idx]
	}
	return nameWithOwner
}

// Notes returns the informational lines printed after the table: first the
// count of forks beyond the fetched page, then the parent relationship when
// the target is itself a fork.
func Notes(network *github.ForkNetwork) []string {
	var notes []string

	if hidden := network.TotalForks - len(network.Forks); hidden > 0 {
		notes = append(notes, fmt.Sprintf("%d additional %s not shown.", hidden, pluralForks(hidden)))
	}

	if parent := network.Parent; parent != nil {
		note := fmt.Sprintf("%s is a fork of %s", network.Target.NameWithOwner, parent.NameWithOwner)
		// The target is one of the parent's forks, so it never counts
		// itself among the siblings.
		if siblings := parent.Forks - 1; siblings > 0 {
			note += fmt.Sprintf(", which has %d other %s not shown here", siblings, pluralForks(siblings))
		}
		notes = append(notes, note+".")
	}

	return notes
}

func pluralForks(n int) string {
	if n == 1 {
		return "fork"
	}
	return "forks"
}
