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
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/hako/durafmt"

	"github.com/osteele/forkstats/internal/github"
)

// placeholder replaces zero counts and missing timestamps in table cells.
const placeholder = "-"

// prColumnWidth keeps the "Pull Requests" header wrapped to two lines
// instead of stretching the table.
const prColumnWidth = 10

// Table column indexes, matching the Headers call in Render.
const (
	colOwner = iota
	colLastPush
	colStars
	colIssues
	colPullRequests
	colForks
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	prStyle     = lipgloss.NewStyle().Padding(0, 1).Width(prColumnWidth).Align(lipgloss.Center)
	prHeader    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Width(prColumnWidth).Align(lipgloss.Center)
	noteStyle   = lipgloss.NewStyle().Faint(true)
)

// Render writes the bordered activity table for a fork network to w,
// followed by the summary notes. Rows are sorted by the composite
// (stars, last push) comparator; zero counts render as a dash.
func Render(w io.Writer, network *github.ForkNetwork) error {
	return renderAt(w, network, time.Now())
}

// renderAt is Render with an explicit reference time for the relative
// last-push column.
func renderAt(w io.Writer, network *github.ForkNetwork, now time.Time) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Owner", "Last Push", "Stars", "Issues", "Pull Requests", "Forks").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == colPullRequests:
				return prHeader
			case row == table.HeaderRow:
				return headerStyle
			case col == colPullRequests:
				return prStyle
			case col == colStars || col == colIssues || col == colForks:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, r := range Rows(network) {
		t.Row(
			r.Owner,
			relativeTime(now, r.PushedAt),
			formatCount(r.Stars),
			formatCount(r.Issues),
			formatCount(r.PullRequests),
			formatCount(r.Forks),
		)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	for _, note := range Notes(network) {
		if _, err := fmt.Fprintln(w, noteStyle.Render(note)); err != nil {
			return err
		}
	}

	return nil
}

// formatCount renders a count cell, replacing zero with the placeholder dash.
func formatCount(n int) string {
	if n == 0 {
		return placeholder
	}
	return strconv.Itoa(n)
}

// relativeTime renders a timestamp as a human-relative phrase such as
// "3 days ago", keeping only the largest unit.
func relativeTime(now, t time.Time) string {
	if t.IsZero() {
		return placeholder
	}

	elapsed := now.Sub(t)
	if elapsed < time.Minute {
		return "just now"
	}

	return durafmt.Parse(elapsed).LimitFirstN(1).String() + " ago"
}
