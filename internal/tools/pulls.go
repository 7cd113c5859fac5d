package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"pull-request-mcp/internal/git/types"
)

// getPullRequest handles get_pull_request tool calls
func (h *handlers) getPullRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	overview, err := h.provider.GetPullRequestOverview(ctx, repo, number)
	if err != nil {
		slog.Error("get_pull_request failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(overview)
}

// listPullRequests handles list_pull_requests tool calls
func (h *handlers) listPullRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, err := req.RequireString("repo")
	if err != nil {
		return mcp.NewToolResultError("repo is required"), nil
	}

	opts := types.ListPullRequestsOptions{
		State:        req.GetString("state", ""),
		TargetBranch: req.GetString("target_branch", ""),
		Limit:        req.GetInt("limit", 0),
	}

	prs, err := h.provider.ListPullRequests(ctx, repo, opts)
	if err != nil {
		slog.Error("list_pull_requests failed", "repo", repo, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(prs)
}

// listPullRequestFiles handles list_pull_request_files tool calls. File
// patches are omitted from the result; get_pull_request_diff serves those
// with filtering and size limits.
func (h *handlers) listPullRequestFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	files, err := h.provider.ListFiles(ctx, repo, number)
	if err != nil {
		slog.Error("list_pull_request_files failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	for i := range files {
		files[i].Patch = ""
	}

	return jsonResult(files)
}
