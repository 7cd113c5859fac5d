package types

import (
	"context"
)

// Provider represents a git hosting platform (GitHub, GitLab, etc.) exposing
// pull-request and repository operations. Repositories are addressed by a
// single path string: "owner/name" on GitHub, the project path on GitLab.
type Provider interface {
	// Name returns the platform name (e.g., "GitHub", "GitLab")
	Name() string

	// GetPullRequest fetches a single pull request by number
	GetPullRequest(ctx context.Context, repo string, number int) (*PullRequest, error)

	// ListPullRequests lists pull requests, newest first
	ListPullRequests(ctx context.Context, repo string, opts ListPullRequestsOptions) ([]PullRequest, error)

	// GetDiff fetches the raw unified diff text of a pull request.
	// The returned blob is what the diff pipeline consumes.
	GetDiff(ctx context.Context, repo string, number int) (string, error)

	// ListFiles lists the files changed by a pull request
	ListFiles(ctx context.Context, repo string, number int) ([]FileChange, error)

	// GetPullRequestOverview fetches the pull request together with its
	// comments and reviews
	GetPullRequestOverview(ctx context.Context, repo string, number int) (*PullRequestOverview, error)

	// ListComments lists discussion comments on a pull request
	ListComments(ctx context.Context, repo string, number int) ([]Comment, error)

	// CreateComment posts a discussion comment on a pull request
	CreateComment(ctx context.Context, repo string, number int, body string) (*Comment, error)

	// ListReviews lists submitted reviews on a pull request
	ListReviews(ctx context.Context, repo string, number int) ([]Review, error)

	// CreateReview submits a review. Event is one of APPROVE,
	// REQUEST_CHANGES, COMMENT.
	CreateReview(ctx context.Context, repo string, number int, body, event string) (*Review, error)

	// ListReviewThreads lists review discussion threads with their
	// resolution state
	ListReviewThreads(ctx context.Context, repo string, number int) ([]ReviewThread, error)

	// MergePullRequest merges a pull request. Method is one of merge,
	// squash, rebase; providers that do not support a method fall back to
	// their default.
	MergePullRequest(ctx context.Context, repo string, number int, method string) (*MergeResult, error)

	// GetFileContents fetches a file's content at a ref (empty ref means
	// the default branch)
	GetFileContents(ctx context.Context, repo, path, ref string) (string, error)
}
