// Package tools wires the MCP server: it defines the tool surface and maps
// tool calls onto a git platform provider and the diff pipeline. No business
// logic lives here, only argument handling and result shaping.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pull-request-mcp/internal/config"
	"pull-request-mcp/internal/git/types"
)

// Version is set at build time via ldflags.
var Version = "dev"

// handlers holds the dependencies shared by every tool handler
type handlers struct {
	provider types.Provider
	limits   config.DiffLimits
}

// NewServer creates the MCP server with every pull request tool registered
func NewServer(provider types.Provider, cfg *config.Config) *server.MCPServer {
	h := &handlers{
		provider: provider,
		limits:   cfg.DiffLimits,
	}

	s := server.NewMCPServer(
		"pull-request-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("get_pull_request",
		mcp.WithDescription("Get a pull request with its comments and reviews"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
	), h.getPullRequest)

	s.AddTool(mcp.NewTool("list_pull_requests",
		mcp.WithDescription("List pull requests in a repository, newest first"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithString("state", mcp.Description("Filter by state: open, closed, merged, all (default open)")),
		mcp.WithString("target_branch", mcp.Description("Only pull requests targeting this branch")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of pull requests to return (default 30)")),
	), h.listPullRequests)

	s.AddTool(mcp.NewTool("get_pull_request_diff",
		mcp.WithDescription("Get the diff of a pull request, filtered by path patterns and size limits"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
		mcp.WithArray("include_paths", mcp.Description("Glob patterns; when set, only matching files are kept"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("exclude_paths", mcp.Description("Glob patterns; matching files are dropped (wins over include_paths)"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithNumber("max_files", mcp.Description("Maximum number of files to include; 0 means no limit")),
		mcp.WithNumber("max_total_lines", mcp.Description("Maximum total diff content lines; 0 means no limit")),
		mcp.WithNumber("max_lines_per_file", mcp.Description("Per-file line budget; oversized files keep their head and tail; 0 means no limit")),
	), h.getPullRequestDiff)

	s.AddTool(mcp.NewTool("list_pull_request_files",
		mcp.WithDescription("List the files changed by a pull request with per-file stats"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
	), h.listPullRequestFiles)

	s.AddTool(mcp.NewTool("list_pull_request_comments",
		mcp.WithDescription("List discussion comments on a pull request"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
	), h.listComments)

	s.AddTool(mcp.NewTool("create_pull_request_comment",
		mcp.WithDescription("Post a discussion comment on a pull request"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
		mcp.WithString("body", mcp.Required(), mcp.Description("Comment text")),
	), h.createComment)

	s.AddTool(mcp.NewTool("list_pull_request_reviews",
		mcp.WithDescription("List submitted reviews on a pull request"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
	), h.listReviews)

	s.AddTool(mcp.NewTool("create_pull_request_review",
		mcp.WithDescription("Submit a review on a pull request"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
		mcp.WithString("event", mcp.Required(), mcp.Description("Review action: APPROVE, REQUEST_CHANGES, or COMMENT")),
		mcp.WithString("body", mcp.Description("Review text; required for REQUEST_CHANGES and COMMENT")),
	), h.createReview)

	s.AddTool(mcp.NewTool("list_review_threads",
		mcp.WithDescription("List review discussion threads with their resolution state"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
	), h.listReviewThreads)

	s.AddTool(mcp.NewTool("merge_pull_request",
		mcp.WithDescription("Merge a pull request"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithNumber("number", mcp.Required(), mcp.Description("Pull request number")),
		mcp.WithString("method", mcp.Description("Merge method: merge, squash, or rebase (default is the platform's)")),
	), h.mergePullRequest)

	s.AddTool(mcp.NewTool("get_file_contents",
		mcp.WithDescription("Get a file's content at a ref"),
		mcp.WithString("repo", mcp.Required(), mcp.Description("Repository path, e.g. owner/name")),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path within the repository")),
		mcp.WithString("ref", mcp.Description("Branch, tag, or commit SHA (default branch when empty)")),
	), h.getFileContents)

	return s
}
