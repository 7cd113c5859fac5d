package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v80/github"

	"pull-request-mcp/internal/git/types"
)

// ListComments lists discussion comments on a pull request. PR discussion
// comments live on the issues endpoint in the GitHub API.
func (p *Provider) ListComments(ctx context.Context, repo string, number int) ([]types.Comment, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	listOpts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []types.Comment
	for {
		comments, resp, err := p.client.Issues.ListComments(ctx, owner, name, number, listOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for PR #%d in %s: %w", number, repo, err)
		}

		for _, comment := range comments {
			result = append(result, convertIssueComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return result, nil
}

// CreateComment posts a discussion comment on a pull request
func (p *Provider) CreateComment(ctx context.Context, repo string, number int, body string) (*types.Comment, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	comment, _, err := p.client.Issues.CreateComment(ctx, owner, name, number, &github.IssueComment{
		Body: github.Ptr(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on PR #%d in %s: %w", number, repo, err)
	}

	slog.Debug("Created comment", "repo", repo, "pr", number)

	converted := convertIssueComment(comment)
	return &converted, nil
}

// ListReviews lists submitted reviews on a pull request
func (p *Provider) ListReviews(ctx context.Context, repo string, number int) ([]types.Review, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	listOpts := &github.ListOptions{PerPage: 100}

	var result []types.Review
	for {
		reviews, resp, err := p.client.PullRequests.ListReviews(ctx, owner, name, number, listOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for PR #%d in %s: %w", number, repo, err)
		}

		for _, review := range reviews {
			result = append(result, convertReview(review))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return result, nil
}

// CreateReview submits a pull request review. Event is APPROVE,
// REQUEST_CHANGES, or COMMENT.
func (p *Provider) CreateReview(ctx context.Context, repo string, number int, body, event string) (*types.Review, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	request := &github.PullRequestReviewRequest{
		Event: github.Ptr(event),
	}
	if body != "" {
		request.Body = github.Ptr(body)
	}

	review, _, err := p.client.PullRequests.CreateReview(ctx, owner, name, number, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create review on PR #%d in %s: %w", number, repo, err)
	}

	slog.Debug("Created review", "repo", repo, "pr", number, "event", event)

	converted := convertReview(review)
	return &converted, nil
}

// ListReviewThreads lists review discussion threads with resolution state
// via the GraphQL API
func (p *Provider) ListReviewThreads(ctx context.Context, repo string, number int) ([]types.ReviewThread, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	return p.threads.ListReviewThreads(ctx, owner, name, number)
}

// MergePullRequest merges a pull request. Method is merge, squash, or rebase;
// an empty method uses the repository default.
func (p *Provider) MergePullRequest(ctx context.Context, repo string, number int, method string) (*types.MergeResult, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	var mergeOpts *github.PullRequestOptions
	if method != "" {
		mergeOpts = &github.PullRequestOptions{MergeMethod: method}
	}

	result, _, err := p.client.PullRequests.Merge(ctx, owner, name, number, "", mergeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to merge PR #%d in %s: %w", number, repo, err)
	}

	slog.Debug("Merged pull request", "repo", repo, "pr", number, "method", method)

	return convertMergeResult(result), nil
}
