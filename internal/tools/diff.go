package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"pull-request-mcp/internal/diff"
)

// getPullRequestDiff handles get_pull_request_diff tool calls: fetch the raw
// diff, then run it through path filtering, size caps, and per-file
// truncation. Explicit arguments win over the configured limits, so a caller
// passing 0 turns a configured limit off.
func (h *handlers) getPullRequestDiff(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, number, err := requireRepoAndNumber(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	diffText, err := h.provider.GetDiff(ctx, repo, number)
	if err != nil {
		slog.Error("get_pull_request_diff failed", "repo", repo, "pr", number, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := diff.FilterOptions{
		IncludePaths:  req.GetStringSlice("include_paths", nil),
		ExcludePaths:  req.GetStringSlice("exclude_paths", nil),
		MaxFiles:      req.GetInt("max_files", h.limits.MaxFiles),
		MaxTotalLines: req.GetInt("max_total_lines", h.limits.MaxTotalLines),
	}
	maxLinesPerFile := req.GetInt("max_lines_per_file", h.limits.MaxLinesPerFile)

	result, stats := processDiff(diffText, opts, maxLinesPerFile)

	slog.Debug("Processed pull request diff",
		"repo", repo,
		"pr", number,
		"included_files", stats.IncludedFiles,
		"excluded_files", stats.ExcludedFiles,
		"total_lines", stats.TotalLines)

	return mcp.NewToolResultText(result), nil
}

// processDiff applies the diff pipeline: filtering first, per-file
// truncation second, so the line caps see real content sizes
func processDiff(diffText string, opts diff.FilterOptions, maxLinesPerFile int) (string, diff.FilterStats) {
	filtered, stats := diff.FilterDiff(diffText, opts)
	return diff.TruncateDiff(filtered, maxLinesPerFile), stats
}
