package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v80/github"
	"golang.org/x/sync/errgroup"

	"pull-request-mcp/internal/git/types"
)

// defaultListLimit bounds ListPullRequests when the caller does not set one
const defaultListLimit = 30

// GetPullRequest fetches a single pull request by number
func (p *Provider) GetPullRequest(ctx context.Context, repo string, number int) (*types.PullRequest, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	pr, resp, err := p.client.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR #%d in %s: %w", number, repo, err)
	}

	slog.Debug("Fetched pull request", "repo", repo, "pr", number, "rate_limit_remaining", resp.Rate.Remaining)

	return convertPullRequest(pr), nil
}

// ListPullRequests lists pull requests, newest first, paginating until the
// requested limit is reached
func (p *Provider) ListPullRequests(ctx context.Context, repo string, opts types.ListPullRequestsOptions) ([]types.PullRequest, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	apiState, mergedOnly := listQueryState(opts.State)

	listOpts := &github.PullRequestListOptions{
		State:       apiState,
		Base:        opts.TargetBranch,
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var result []types.PullRequest
	for {
		prs, resp, err := p.client.PullRequests.List(ctx, owner, name, listOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list PRs in %s: %w", repo, err)
		}

		for _, pr := range prs {
			converted := convertPullRequest(pr)
			if converted == nil {
				continue
			}
			if mergedOnly && !converted.Merged {
				continue
			}
			result = append(result, *converted)
			if len(result) >= limit {
				return result, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return result, nil
}

// listQueryState maps the shared state vocabulary onto the GitHub list API,
// which only accepts open, closed, and all. "merged" queries closed pull
// requests and filters on the merged flag client-side.
func listQueryState(state string) (apiState string, mergedOnly bool) {
	switch state {
	case "":
		return "open", false
	case "merged":
		return "closed", true
	default:
		return state, false
	}
}

// GetDiff fetches the raw unified diff of a pull request. The returned text
// is the input blob for the diff pipeline.
func (p *Provider) GetDiff(ctx context.Context, repo string, number int) (string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return "", err
	}

	raw, resp, err := p.client.PullRequests.GetRaw(ctx, owner, name, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("failed to get diff for PR #%d in %s: %w", number, repo, err)
	}

	slog.Debug("Fetched raw diff", "repo", repo, "pr", number, "bytes", len(raw), "rate_limit_remaining", resp.Rate.Remaining)

	return raw, nil
}

// ListFiles lists the files changed by a pull request with full pagination
// (GitHub caps files per page, merge commits can touch thousands)
func (p *Provider) ListFiles(ctx context.Context, repo string, number int) ([]types.FileChange, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	listOpts := &github.ListOptions{PerPage: 100}
	var result []types.FileChange

	for {
		files, resp, err := p.client.PullRequests.ListFiles(ctx, owner, name, number, listOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to list files for PR #%d in %s: %w", number, repo, err)
		}

		for _, file := range files {
			result = append(result, convertFile(file))
		}

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return result, nil
}

// GetPullRequestOverview fetches the pull request, its discussion comments,
// and its reviews concurrently
func (p *Provider) GetPullRequestOverview(ctx context.Context, repo string, number int) (*types.PullRequestOverview, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var pullRequest *types.PullRequest
	var comments []types.Comment
	var reviews []types.Review

	g.Go(func() error {
		var err error
		pullRequest, err = p.GetPullRequest(gCtx, repo, number)
		return err
	})

	g.Go(func() error {
		var err error
		comments, err = p.ListComments(gCtx, repo, number)
		return err
	})

	g.Go(func() error {
		var err error
		reviews, err = p.ListReviews(gCtx, repo, number)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Fetched pull request overview",
		"repo", repo,
		"pr", number,
		"comments", len(comments),
		"reviews", len(reviews))

	return &types.PullRequestOverview{
		PullRequest: pullRequest,
		Comments:    comments,
		Reviews:     reviews,
	}, nil
}
