package gitlab

import (
	"strings"
	"testing"
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

func TestConvertMergeRequest(t *testing.T) {
	created := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)

	mr := &gitlab.BasicMergeRequest{
		IID:          17,
		Title:        "Handle empty payloads",
		Description:  "Guards the decoder against empty bodies",
		State:        "opened",
		Author:       &gitlab.BasicUser{Username: "jdoe"},
		SourceBranch: "fix/empty-payload",
		TargetBranch: "main",
		SHA:          "deadbeef",
		WebURL:       "https://gitlab.example.com/acme/widgets/-/merge_requests/17",
		Draft:        true,
		CreatedAt:    &created,
		Labels:       gitlab.Labels{"bug"},
	}

	result := convertMergeRequest(mr)

	if result.Number != 17 {
		t.Errorf("Number = %d, expected 17", result.Number)
	}
	if result.State != "open" {
		t.Errorf("State = %q, expected open (mapped from opened)", result.State)
	}
	if result.Author != "jdoe" {
		t.Errorf("Author = %q, expected jdoe", result.Author)
	}
	if result.SourceBranch != "fix/empty-payload" || result.TargetBranch != "main" {
		t.Errorf("Branches = %q -> %q", result.SourceBranch, result.TargetBranch)
	}
	if !result.Draft {
		t.Error("Draft = false, expected true")
	}
	if result.Merged {
		t.Error("Merged = true for an open MR")
	}
	if !result.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, expected %v", result.CreatedAt, created)
	}
	if len(result.Labels) != 1 || result.Labels[0] != "bug" {
		t.Errorf("Labels = %v, expected [bug]", result.Labels)
	}
}

func TestConvertMergeRequest_MergedState(t *testing.T) {
	result := convertMergeRequest(&gitlab.BasicMergeRequest{IID: 3, State: "merged"})

	if !result.Merged {
		t.Error("Merged = false for state merged")
	}
	if result.State != "merged" {
		t.Errorf("State = %q, expected merged", result.State)
	}
}

func TestConvertMergeRequest_Nil(t *testing.T) {
	if convertMergeRequest(nil) != nil {
		t.Error("Expected nil result for nil input")
	}
}

func TestParsePatchStats(t *testing.T) {
	tests := []struct {
		name      string
		patch     string
		additions int
		deletions int
	}{
		{name: "empty patch", patch: "", additions: 0, deletions: 0},
		{
			name:      "mixed changes",
			patch:     "@@ -1,3 +1,3 @@\n context\n-old line\n+new line\n+another",
			additions: 2,
			deletions: 1,
		},
		{
			name:      "header lines not counted",
			patch:     "--- a/file.go\n+++ b/file.go\n@@ -1 +1 @@\n-x\n+y",
			additions: 1,
			deletions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			additions, deletions := parsePatchStats(tt.patch)
			if additions != tt.additions || deletions != tt.deletions {
				t.Errorf("parsePatchStats() = %d/%d, expected %d/%d", additions, deletions, tt.additions, tt.deletions)
			}
		})
	}
}

func TestConvertMergeRequestDiff_Status(t *testing.T) {
	tests := []struct {
		name   string
		diff   *gitlab.MergeRequestDiff
		status string
	}{
		{name: "added", diff: &gitlab.MergeRequestDiff{NewPath: "a.go", NewFile: true}, status: "added"},
		{name: "removed", diff: &gitlab.MergeRequestDiff{OldPath: "a.go", DeletedFile: true}, status: "removed"},
		{name: "renamed", diff: &gitlab.MergeRequestDiff{OldPath: "a.go", NewPath: "b.go", RenamedFile: true}, status: "renamed"},
		{name: "modified", diff: &gitlab.MergeRequestDiff{OldPath: "a.go", NewPath: "a.go"}, status: "modified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := convertMergeRequestDiff(tt.diff)
			if change.Status != tt.status {
				t.Errorf("Status = %q, expected %q", change.Status, tt.status)
			}
		})
	}
}

func TestConvertMergeRequestDiff_RenameKeepsPreviousFilename(t *testing.T) {
	change := convertMergeRequestDiff(&gitlab.MergeRequestDiff{
		OldPath:     "src/old.go",
		NewPath:     "src/new.go",
		RenamedFile: true,
	})

	if change.PreviousFilename != "src/old.go" {
		t.Errorf("PreviousFilename = %q, expected src/old.go", change.PreviousFilename)
	}
}

func TestConvertDiscussion(t *testing.T) {
	discussion := &gitlab.Discussion{
		ID: "abc123",
		Notes: []*gitlab.Note{
			{
				ID:         1,
				Body:       "This loop never terminates",
				Resolvable: true,
				Resolved:   true,
				Position:   &gitlab.NotePosition{NewPath: "src/loop.go", NewLine: 42},
			},
			{
				ID:         2,
				Body:       "Fixed in the latest push",
				Resolvable: true,
				Resolved:   true,
			},
		},
	}

	thread := convertDiscussion(discussion)

	if thread.ID != "abc123" {
		t.Errorf("ID = %q, expected abc123", thread.ID)
	}
	if !thread.Resolved {
		t.Error("Resolved = false, expected true when every resolvable note is resolved")
	}
	if thread.Path != "src/loop.go" || thread.Line != 42 {
		t.Errorf("Anchor = %q:%d, expected src/loop.go:42", thread.Path, thread.Line)
	}
	if len(thread.Comments) != 2 {
		t.Fatalf("Comments = %d, expected 2", len(thread.Comments))
	}
}

func TestConvertDiscussion_UnresolvedNote(t *testing.T) {
	discussion := &gitlab.Discussion{
		ID: "def456",
		Notes: []*gitlab.Note{
			{ID: 1, Resolvable: true, Resolved: true},
			{ID: 2, Resolvable: true, Resolved: false},
		},
	}

	if convertDiscussion(discussion).Resolved {
		t.Error("Resolved = true with an unresolved note in the thread")
	}
}

func TestConvertDiscussion_NoResolvableNotes(t *testing.T) {
	discussion := &gitlab.Discussion{
		ID:    "ghi789",
		Notes: []*gitlab.Note{{ID: 1, Body: "just a remark"}},
	}

	if convertDiscussion(discussion).Resolved {
		t.Error("Resolved = true for a thread with no resolvable notes")
	}
}

func TestWriteDiffSegment(t *testing.T) {
	tests := []struct {
		name     string
		diff     *gitlab.MergeRequestDiff
		expected []string
	}{
		{
			name: "modified file",
			diff: &gitlab.MergeRequestDiff{
				OldPath: "src/main.go",
				NewPath: "src/main.go",
				Diff:    "@@ -1 +1 @@\n-old\n+new\n",
			},
			expected: []string{
				"diff --git a/src/main.go b/src/main.go\n",
				"--- a/src/main.go\n",
				"+++ b/src/main.go\n",
				"@@ -1 +1 @@\n",
			},
		},
		{
			name: "new file",
			diff: &gitlab.MergeRequestDiff{
				OldPath: "added.go",
				NewPath: "added.go",
				NewFile: true,
				BMode:   "100644",
				Diff:    "@@ -0,0 +1 @@\n+hello\n",
			},
			expected: []string{
				"new file mode 100644\n",
				"--- /dev/null\n",
				"+++ b/added.go\n",
			},
		},
		{
			name: "deleted file",
			diff: &gitlab.MergeRequestDiff{
				OldPath:     "gone.go",
				NewPath:     "gone.go",
				DeletedFile: true,
				AMode:       "100644",
				Diff:        "@@ -1 +0,0 @@\n-bye\n",
			},
			expected: []string{
				"deleted file mode 100644\n",
				"--- a/gone.go\n",
				"+++ /dev/null\n",
			},
		},
		{
			name: "renamed file",
			diff: &gitlab.MergeRequestDiff{
				OldPath:     "old.go",
				NewPath:     "new.go",
				RenamedFile: true,
			},
			expected: []string{
				"diff --git a/old.go b/new.go\n",
				"rename from old.go\n",
				"rename to new.go\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var builder strings.Builder
			writeDiffSegment(&builder, tt.diff)
			output := builder.String()

			for _, fragment := range tt.expected {
				if !strings.Contains(output, fragment) {
					t.Errorf("Output missing %q:\n%s", fragment, output)
				}
			}
			if !strings.HasSuffix(output, "\n") {
				t.Error("Segment does not end with a newline")
			}
		})
	}
}

func TestWriteDiffSegment_AddsMissingTrailingNewline(t *testing.T) {
	var builder strings.Builder
	writeDiffSegment(&builder, &gitlab.MergeRequestDiff{
		OldPath: "a.go",
		NewPath: "a.go",
		Diff:    "@@ -1 +1 @@\n-x\n+y",
	})

	if !strings.HasSuffix(builder.String(), "+y\n") {
		t.Errorf("Expected trailing newline to be appended, got %q", builder.String())
	}
}

func TestConvertStateFilter(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "", expected: "opened"},
		{in: "open", expected: "opened"},
		{in: "closed", expected: "closed"},
		{in: "merged", expected: "merged"},
		{in: "all", expected: "all"},
	}

	for _, tt := range tests {
		if got := convertStateFilter(tt.in); got != tt.expected {
			t.Errorf("convertStateFilter(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
