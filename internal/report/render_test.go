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
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/osteele/forkstats/internal/github"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "-"},
		{1, "1"},
		{42, "42"},
		{12345, "12345"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.input); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero time", t: time.Time{}, want: "-"},
		{name: "seconds ago", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", t: now.Add(-5 * time.Minute), want: "5 minutes ago"},
		{name: "one hour ago", t: now.Add(-time.Hour), want: "1 hour ago"},
		{name: "days ago", t: now.Add(-3 * 24 * time.Hour), want: "3 days ago"},
		{name: "weeks ago", t: now.Add(-14 * 24 * time.Hour), want: "2 weeks ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeTime(now, tt.t); got != tt.want {
				t.Errorf("relativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	target := summary("octocat/hello-world", 42, now.Add(-3*24*time.Hour))
	target.Issues = 3
	target.PullRequests = 5
	target.Forks = 2

	network := &github.ForkNetwork{
		Target: target,
		Forks: []github.RepoSummary{
			summary("alice/hello-world", 0, now.Add(-14*24*time.Hour)),
		},
		TotalForks: 2,
	}

	var buf bytes.Buffer
	if err := renderAt(&buf, network, now); err != nil {
		t.Fatalf("renderAt() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Owner", "Last Push", "Stars", "Issues", "Forks"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing header %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "octocat") {
		t.Errorf("output missing target owner:\n%s", out)
	}
	if !strings.Contains(out, "3 days ago") {
		t.Errorf("output missing relative push date:\n%s", out)
	}
	// The zero-starred fork renders dashes for its counts.
	if !strings.Contains(out, "-") {
		t.Errorf("output missing dash placeholder:\n%s", out)
	}
	// Bordered output with a rule under the header, no rules between rows.
	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Errorf("output missing table border:\n%s", out)
	}
	if !strings.Contains(out, "├") {
		t.Errorf("output missing header rule:\n%s", out)
	}

	// One additional fork is hidden.
	if !strings.Contains(out, "1 additional fork not shown.") {
		t.Errorf("output missing additional-forks note:\n%s", out)
	}
	if strings.Contains(out, "is a fork of") {
		t.Errorf("unexpected parent note without parent:\n%s", out)
	}
}

func TestRenderNoNotesForSelfContainedRepo(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	network := &github.ForkNetwork{
		Target: summary("octocat/hello-world", 42, now.Add(-time.Hour)),
	}

	var buf bytes.Buffer
	if err := renderAt(&buf, network, now); err != nil {
		t.Fatalf("renderAt() error = %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "not shown") || strings.Contains(out, "is a fork of") {
		t.Errorf("expected no notes for repo without forks or parent:\n%s", out)
	}
}

func TestWriteRows(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	network := &github.ForkNetwork{
		Target: summary("target/repo", 50, base),
		Forks: []github.RepoSummary{
			summary("low/fork", 1, base),
		},
		TotalForks: 1,
	}

	var buf bytes.Buffer
	if err := WriteRows(&buf, Rows(network)); err != nil {
		t.Fatalf("WriteRows() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}

	// Sorted order: fewest stars first.
	wantOwners := []string{"low", "target"}
	for i, line := range lines {
		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if row.Owner != wantOwners[i] {
			t.Errorf("line %d owner = %q, want %q", i, row.Owner, wantOwners[i])
		}
	}
}

func TestNDJSONWriterCount(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	for i := 0; i < 3; i++ {
		if err := w.Write(Row{Owner: "octocat"}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	if w.Count() != 3 {
		t.Errorf("Count() = %d, want 3", w.Count())
	}
}
