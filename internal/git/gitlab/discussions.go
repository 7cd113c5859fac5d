package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"pull-request-mcp/internal/git/types"
)

// ListComments lists the discussion notes on a merge request, skipping
// system notes (label changes, pipeline events and the like)
func (p *Provider) ListComments(ctx context.Context, repo string, number int) ([]types.Comment, error) {
	listOpts := &gitlab.ListMergeRequestNotesOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}

	var result []types.Comment
	for {
		notes, resp, err := p.client.Notes.ListMergeRequestNotes(repo, number, listOpts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list notes for MR !%d in %s: %w", number, repo, err)
		}

		for _, note := range notes {
			if note == nil || note.System {
				continue
			}
			result = append(result, convertNote(note))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	slog.Debug("Fetched merge request notes", "project", repo, "mr", number, "count", len(result))

	return result, nil
}

// CreateComment posts a note on a merge request
func (p *Provider) CreateComment(ctx context.Context, repo string, number int, body string) (*types.Comment, error) {
	note, _, err := p.client.Notes.CreateMergeRequestNote(repo, number, &gitlab.CreateMergeRequestNoteOptions{
		Body: gitlab.Ptr(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create note on MR !%d in %s: %w", number, repo, err)
	}

	slog.Info("Created merge request note", "project", repo, "mr", number, "note_id", note.ID)

	comment := convertNote(note)
	return &comment, nil
}

// ListReviews synthesizes reviews from the merge request approval state.
// GitLab has no review object, so each approver becomes one approved review.
func (p *Provider) ListReviews(ctx context.Context, repo string, number int) ([]types.Review, error) {
	approvals, _, err := p.client.MergeRequestApprovals.GetConfiguration(repo, number, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get approvals for MR !%d in %s: %w", number, repo, err)
	}

	var result []types.Review
	for _, approver := range approvals.ApprovedBy {
		if approver == nil || approver.User == nil {
			continue
		}
		result = append(result, types.Review{
			ID:     int64(approver.User.ID),
			Author: approver.User.Username,
			State:  "approved",
		})
	}

	slog.Debug("Fetched merge request approvals", "project", repo, "mr", number, "approvers", len(result))

	return result, nil
}

// CreateReview submits a review. APPROVE approves the merge request;
// REQUEST_CHANGES and COMMENT post the body as a note (REQUEST_CHANGES
// requires one, GitLab has no changes-requested state to set without it).
func (p *Provider) CreateReview(ctx context.Context, repo string, number int, body, event string) (*types.Review, error) {
	switch strings.ToUpper(event) {
	case "APPROVE":
		approvals, _, err := p.client.MergeRequestApprovals.ApproveMergeRequest(repo, number, &gitlab.ApproveMergeRequestOptions{}, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to approve MR !%d in %s: %w", number, repo, err)
		}
		if body != "" {
			if _, err := p.CreateComment(ctx, repo, number, body); err != nil {
				return nil, err
			}
		}

		slog.Info("Approved merge request", "project", repo, "mr", number, "approvals", approvals.ApprovalsRequired)

		return &types.Review{State: "approved", Body: body}, nil

	case "REQUEST_CHANGES", "COMMENT":
		if body == "" {
			return nil, fmt.Errorf("a %s review on GitLab requires a body", strings.ToLower(event))
		}
		comment, err := p.CreateComment(ctx, repo, number, body)
		if err != nil {
			return nil, err
		}

		state := "commented"
		if strings.EqualFold(event, "REQUEST_CHANGES") {
			state = "changes_requested"
		}

		return &types.Review{
			ID:          comment.ID,
			Author:      comment.Author,
			State:       state,
			Body:        body,
			SubmittedAt: comment.CreatedAt,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported review event %q: expected APPROVE, REQUEST_CHANGES, or COMMENT", event)
	}
}

// ListReviewThreads lists merge request discussions with their resolution
// state, skipping single-note discussions that are plain comments
func (p *Provider) ListReviewThreads(ctx context.Context, repo string, number int) ([]types.ReviewThread, error) {
	listOpts := &gitlab.ListMergeRequestDiscussionsOptions{PerPage: 100, Page: 1}

	var result []types.ReviewThread
	for {
		discussions, resp, err := p.client.Discussions.ListMergeRequestDiscussions(repo, number, listOpts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list discussions for MR !%d in %s: %w", number, repo, err)
		}

		for _, discussion := range discussions {
			if discussion == nil || discussion.IndividualNote {
				continue
			}
			result = append(result, convertDiscussion(discussion))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	slog.Debug("Fetched merge request discussions", "project", repo, "mr", number, "threads", len(result))

	return result, nil
}
