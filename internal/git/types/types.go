package types

import "time"

// PullRequest represents a pull request (GitHub) or merge request (GitLab),
// platform-agnostic. Providers map their API responses into this shape with
// explicit per-field fallbacks; missing upstream fields stay at zero values.
type PullRequest struct {
	Number       int
	Title        string
	Body         string
	State        string // open, closed, merged
	Author       string
	SourceBranch string
	TargetBranch string
	SHA          string // head commit SHA
	URL          string // browser URL of the pull request
	Draft        bool
	Merged       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Labels       []string
}

// Comment represents a discussion or review comment on a pull request.
// Path and Line are zero for comments not anchored to a diff position.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	Path      string
	Line      int
	CreatedAt time.Time
	URL       string
}

// Review represents a submitted pull request review.
type Review struct {
	ID          int64
	Author      string
	State       string // approved, changes_requested, commented, dismissed
	Body        string
	SubmittedAt time.Time
}

// ReviewThread represents a review discussion thread anchored to a diff
// position, including its resolution state.
type ReviewThread struct {
	ID       string
	Path     string
	Line     int
	Resolved bool
	Outdated bool
	Comments []Comment
}

// FileChange represents a file that was changed in a pull request
type FileChange struct {
	Filename         string
	Status           string // added, modified, removed, renamed
	Additions        int
	Deletions        int
	Changes          int
	Patch            string
	PreviousFilename string // For renames
}

// MergeResult describes the outcome of a merge operation.
type MergeResult struct {
	Merged  bool
	SHA     string // merge commit SHA when available
	Message string
}

// PullRequestOverview bundles a pull request with its discussion, fetched
// concurrently by providers.
type PullRequestOverview struct {
	PullRequest *PullRequest
	Comments    []Comment
	Reviews     []Review
}

// ListPullRequestsOptions narrows ListPullRequests. Zero values mean no
// constraint; Limit <= 0 means the provider default.
type ListPullRequestsOptions struct {
	State        string // open, closed, merged, all
	TargetBranch string
	Limit        int
}
