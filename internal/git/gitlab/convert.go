package gitlab

import (
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"pull-request-mcp/internal/git/types"
)

// convertMergeRequest converts a GitLab merge request to the platform-agnostic
// pull request shape. Detail endpoints return a MergeRequest that embeds
// BasicMergeRequest, so both list and get results pass through here.
func convertMergeRequest(mr *gitlab.BasicMergeRequest) *types.PullRequest {
	if mr == nil {
		return nil
	}

	result := &types.PullRequest{
		Number:       mr.IID,
		Title:        mr.Title,
		Body:         mr.Description,
		State:        convertState(mr.State),
		SourceBranch: mr.SourceBranch,
		TargetBranch: mr.TargetBranch,
		SHA:          mr.SHA,
		URL:          mr.WebURL,
		Draft:        mr.Draft,
		Merged:       mr.State == "merged",
		Labels:       []string(mr.Labels),
	}

	if mr.Author != nil {
		result.Author = mr.Author.Username
	}
	if mr.CreatedAt != nil {
		result.CreatedAt = *mr.CreatedAt
	}
	if mr.UpdatedAt != nil {
		result.UpdatedAt = *mr.UpdatedAt
	}

	return result
}

// convertState maps GitLab merge request states to the shared vocabulary
func convertState(state string) string {
	if state == "opened" {
		return "open"
	}
	return state
}

// convertNote converts a GitLab note to a platform-agnostic comment
func convertNote(note *gitlab.Note) types.Comment {
	if note == nil {
		return types.Comment{}
	}

	comment := types.Comment{
		ID:     int64(note.ID),
		Author: note.Author.Username,
		Body:   note.Body,
	}

	if note.CreatedAt != nil {
		comment.CreatedAt = *note.CreatedAt
	}
	if note.Position != nil {
		comment.Path = note.Position.NewPath
		comment.Line = note.Position.NewLine
	}

	return comment
}

// convertDiscussion converts a GitLab discussion to a review thread.
// A thread counts as resolved only when every resolvable note in it is.
func convertDiscussion(discussion *gitlab.Discussion) types.ReviewThread {
	if discussion == nil {
		return types.ReviewThread{}
	}

	thread := types.ReviewThread{
		ID:       discussion.ID,
		Resolved: true,
		Comments: make([]types.Comment, 0, len(discussion.Notes)),
	}

	resolvable := false
	for _, note := range discussion.Notes {
		if note == nil {
			continue
		}
		thread.Comments = append(thread.Comments, convertNote(note))
		if note.Resolvable {
			resolvable = true
			if !note.Resolved {
				thread.Resolved = false
			}
		}
	}
	if !resolvable {
		thread.Resolved = false
	}

	// Anchor the thread at the first positioned note
	for _, comment := range thread.Comments {
		if comment.Path != "" {
			thread.Path = comment.Path
			thread.Line = comment.Line
			break
		}
	}

	return thread
}

// convertMergeRequestDiff converts a GitLab diff entry to a FileChange.
// GitLab does not report per-file addition/deletion counts, so they are
// parsed from the patch text.
func convertMergeRequestDiff(diff *gitlab.MergeRequestDiff) types.FileChange {
	if diff == nil {
		return types.FileChange{}
	}

	fileChange := types.FileChange{
		Filename: diff.NewPath,
		Patch:    diff.Diff,
	}

	switch {
	case diff.NewFile:
		fileChange.Status = "added"
	case diff.DeletedFile:
		fileChange.Status = "removed"
	case diff.RenamedFile:
		fileChange.Status = "renamed"
		fileChange.PreviousFilename = diff.OldPath
	default:
		fileChange.Status = "modified"
	}

	additions, deletions := parsePatchStats(diff.Diff)
	fileChange.Additions = additions
	fileChange.Deletions = deletions
	fileChange.Changes = additions + deletions

	return fileChange
}

// parsePatchStats counts additions and deletions from a unified diff patch
func parsePatchStats(patch string) (additions, deletions int) {
	if patch == "" {
		return 0, 0
	}

	for _, line := range strings.Split(patch, "\n") {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '+':
			if !strings.HasPrefix(line, "+++") {
				additions++
			}
		case '-':
			if !strings.HasPrefix(line, "---") {
				deletions++
			}
		}
	}

	return additions, deletions
}

// convertMergeResult maps an accepted merge request to a merge result
func convertMergeResult(mr *gitlab.MergeRequest) *types.MergeResult {
	if mr == nil {
		return &types.MergeResult{}
	}

	result := &types.MergeResult{
		Merged: mr.State == "merged",
	}

	switch {
	case mr.MergeCommitSHA != "":
		result.SHA = mr.MergeCommitSHA
	case mr.SquashCommitSHA != "":
		result.SHA = mr.SquashCommitSHA
	default:
		result.SHA = mr.SHA
	}

	if result.Merged {
		result.Message = "Merge request merged successfully"
	} else {
		result.Message = "Merge request accepted, merge pending"
	}

	return result
}
