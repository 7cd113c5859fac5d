package github

import (
	"github.com/google/go-github/v80/github"

	"pull-request-mcp/internal/git/types"
)

// Conversion between go-github response shapes and the platform-agnostic
// model. Every optional field is copied behind an explicit nil guard with a
// fixed fallback order; missing fields stay at their zero value.

// convertPullRequest converts a GitHub PullRequest to the platform-agnostic shape
func convertPullRequest(pr *github.PullRequest) *types.PullRequest {
	if pr == nil {
		return nil
	}

	result := &types.PullRequest{}

	if pr.Number != nil {
		result.Number = *pr.Number
	}
	if pr.Title != nil {
		result.Title = *pr.Title
	}
	if pr.Body != nil {
		result.Body = *pr.Body
	}
	if pr.State != nil {
		result.State = *pr.State
	}
	if pr.User != nil && pr.User.Login != nil {
		result.Author = *pr.User.Login
	}
	if pr.Head != nil {
		if pr.Head.Ref != nil {
			result.SourceBranch = *pr.Head.Ref
		}
		if pr.Head.SHA != nil {
			result.SHA = *pr.Head.SHA
		}
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		result.TargetBranch = *pr.Base.Ref
	}
	if pr.HTMLURL != nil {
		result.URL = *pr.HTMLURL
	}
	if pr.Draft != nil {
		result.Draft = *pr.Draft
	}

	// Merged flag: list responses omit Merged but carry MergedAt, so fall
	// back to "merged-at timestamp present" when the flag itself is absent
	if pr.Merged != nil {
		result.Merged = *pr.Merged
	} else if pr.MergedAt != nil {
		result.Merged = !pr.MergedAt.Time.IsZero()
	}

	if pr.CreatedAt != nil {
		result.CreatedAt = pr.CreatedAt.Time
	}
	if pr.UpdatedAt != nil {
		result.UpdatedAt = pr.UpdatedAt.Time
	}

	for _, label := range pr.Labels {
		if label != nil && label.Name != nil {
			result.Labels = append(result.Labels, *label.Name)
		}
	}

	return result
}

// convertIssueComment converts a GitHub issue (discussion) comment
func convertIssueComment(comment *github.IssueComment) types.Comment {
	if comment == nil {
		return types.Comment{}
	}

	result := types.Comment{}

	if comment.ID != nil {
		result.ID = *comment.ID
	}
	if comment.User != nil && comment.User.Login != nil {
		result.Author = *comment.User.Login
	}
	if comment.Body != nil {
		result.Body = *comment.Body
	}
	if comment.CreatedAt != nil {
		result.CreatedAt = comment.CreatedAt.Time
	}
	if comment.HTMLURL != nil {
		result.URL = *comment.HTMLURL
	}

	return result
}

// convertReview converts a GitHub pull request review
func convertReview(review *github.PullRequestReview) types.Review {
	if review == nil {
		return types.Review{}
	}

	result := types.Review{}

	if review.ID != nil {
		result.ID = *review.ID
	}
	if review.User != nil && review.User.Login != nil {
		result.Author = *review.User.Login
	}
	if review.State != nil {
		result.State = *review.State
	}
	if review.Body != nil {
		result.Body = *review.Body
	}
	if review.SubmittedAt != nil {
		result.SubmittedAt = review.SubmittedAt.Time
	}

	return result
}

// convertFile converts a GitHub CommitFile to a platform-agnostic FileChange
func convertFile(file *github.CommitFile) types.FileChange {
	if file == nil {
		return types.FileChange{}
	}

	change := types.FileChange{}

	if file.Filename != nil {
		change.Filename = *file.Filename
	}
	if file.Status != nil {
		change.Status = *file.Status
	}
	if file.Additions != nil {
		change.Additions = *file.Additions
	}
	if file.Deletions != nil {
		change.Deletions = *file.Deletions
	}
	if file.Changes != nil {
		change.Changes = *file.Changes
	}
	if file.Patch != nil {
		change.Patch = *file.Patch
	}
	if file.PreviousFilename != nil {
		change.PreviousFilename = *file.PreviousFilename
	}

	return change
}

// convertMergeResult converts a GitHub merge response
func convertMergeResult(result *github.PullRequestMergeResult) *types.MergeResult {
	if result == nil {
		return &types.MergeResult{}
	}

	merged := types.MergeResult{}

	if result.Merged != nil {
		merged.Merged = *result.Merged
	}
	if result.SHA != nil {
		merged.SHA = *result.SHA
	}
	if result.Message != nil {
		merged.Message = *result.Message
	}

	return &merged
}
