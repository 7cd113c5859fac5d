package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
)

// listComments handles list_pull_request_comments tool calls
func (h *handlers) listComments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comments, err := h.provider.ListComments(ctx, repo, number)
	if err != nil {
		slog.Error("list_pull_request_comments failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(comments)
}

// createComment handles create_pull_request_comment tool calls
func (h *handlers) createComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body, err := req.RequireString("body")
	if err != nil || body == "" {
		return mcp.NewToolResultError("body is required"), nil
	}

	comment, err := h.provider.CreateComment(ctx, repo, number, body)
	if err != nil {
		slog.Error("create_pull_request_comment failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(comment)
}

// listReviews handles list_pull_request_reviews tool calls
func (h *handlers) listReviews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	reviews, err := h.provider.ListReviews(ctx, repo, number)
	if err != nil {
		slog.Error("list_pull_request_reviews failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(reviews)
}

// createReview handles create_pull_request_review tool calls
func (h *handlers) createReview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := req.RequireString("event")
	if err != nil || event == "" {
		return mcp.NewToolResultError("event is required: APPROVE, REQUEST_CHANGES, or COMMENT"), nil
	}
	body := req.GetString("body", "")

	review, err := h.provider.CreateReview(ctx, repo, number, body, event)
	if err != nil {
		slog.Error("create_pull_request_review failed", "repo", repo, "pr", number, "event", event, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(review)
}

// listReviewThreads handles list_review_threads tool calls
func (h *handlers) listReviewThreads(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	threads, err := h.provider.ListReviewThreads(ctx, repo, number)
	if err != nil {
		slog.Error("list_review_threads failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(threads)
}

// mergePullRequest handles merge_pull_request tool calls
func (h *handlers) mergePullRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	method := req.GetString("method", "")
	switch method {
	case "", "merge", "squash", "rebase":
	default:
		return mcp.NewToolResultError("method must be merge, squash, or rebase"), nil
	}

	result, err := h.provider.MergePullRequest(ctx, repo, number, method)
	if err != nil {
		slog.Error("merge_pull_request failed", "repo", repo, "pr", number, "method", method, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("Merged pull request", "repo", repo, "pr", number, "method", method)

	return jsonResult(result)
}
