package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
)

// getFileContents handles get_file_contents tool calls
func (h *handlers) getFileContents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo, err := req.RequireString("repo")
	if err != nil {
		return mcp.NewToolResultError("repo is required"), nil
	}

	path, err := req.RequireString("path")
	if err != nil || path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	ref := req.GetString("ref", "")

	content, err := h.provider.GetFileContents(ctx, repo, path, ref)
	if err != nil {
		slog.Error("get_file_contents failed", "repo", repo, "path", path, "ref", ref, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(content), nil
}
