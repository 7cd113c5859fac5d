package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/sync/errgroup"

	"pull-request-mcp/internal/git/types"
)

// defaultListLimit bounds ListPullRequests when the caller does not set one
const defaultListLimit = 30

// GetPullRequest fetches a single merge request by IID
func (p *Provider) GetPullRequest(ctx context.Context, repo string, number int) (*types.PullRequest, error) {
	mr, _, err := p.client.MergeRequests.GetMergeRequest(repo, number, &gitlab.GetMergeRequestsOptions{}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get MR !%d in %s: %w", number, repo, err)
	}

	slog.Debug("Fetched merge request", "project", repo, "mr", number)

	return convertMergeRequest(&mr.BasicMergeRequest), nil
}

// ListPullRequests lists merge requests, newest first, paginating until the
// requested limit is reached
func (p *Provider) ListPullRequests(ctx context.Context, repo string, opts types.ListPullRequestsOptions) ([]types.PullRequest, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	listOpts := &gitlab.ListProjectMergeRequestsOptions{
		State:       gitlab.Ptr(convertStateFilter(opts.State)),
		OrderBy:     gitlab.Ptr("created_at"),
		Sort:        gitlab.Ptr("desc"),
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}
	if opts.TargetBranch != "" {
		listOpts.TargetBranch = gitlab.Ptr(opts.TargetBranch)
	}

	var result []types.PullRequest
	for {
		mrs, resp, err := p.client.MergeRequests.ListProjectMergeRequests(repo, listOpts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list MRs in %s: %w", repo, err)
		}

		for _, mr := range mrs {
			converted := convertMergeRequest(mr)
			if converted == nil {
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

// convertStateFilter maps the shared state vocabulary to GitLab's
func convertStateFilter(state string) string {
	switch state {
	case "", "open":
		return "opened"
	default:
		return state
	}
}

// GetDiff fetches the changes of a merge request and renders them as a
// unified diff. GitLab returns per-file patches without the git header
// lines, so the header each patch belongs under is reconstructed here.
func (p *Provider) GetDiff(ctx context.Context, repo string, number int) (string, error) {
	diffs, err := p.listDiffs(ctx, repo, number)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	for _, diff := range diffs {
		if diff == nil {
			continue
		}
		writeDiffSegment(&builder, diff)
	}

	slog.Debug("Assembled merge request diff", "project", repo, "mr", number, "files", len(diffs), "bytes", builder.Len())

	return builder.String(), nil
}

// writeDiffSegment renders one file change in git unified diff form
func writeDiffSegment(builder *strings.Builder, diff *gitlab.MergeRequestDiff) {
	fmt.Fprintf(builder, "diff --git a/%s b/%s\n", diff.OldPath, diff.NewPath)

	switch {
	case diff.NewFile:
		fmt.Fprintf(builder, "new file mode %s\n", diff.BMode)
		builder.WriteString("--- /dev/null\n")
		fmt.Fprintf(builder, "+++ b/%s\n", diff.NewPath)
	case diff.DeletedFile:
		fmt.Fprintf(builder, "deleted file mode %s\n", diff.AMode)
		fmt.Fprintf(builder, "--- a/%s\n", diff.OldPath)
		builder.WriteString("+++ /dev/null\n")
	default:
		if diff.RenamedFile {
			fmt.Fprintf(builder, "rename from %s\n", diff.OldPath)
			fmt.Fprintf(builder, "rename to %s\n", diff.NewPath)
		}
		fmt.Fprintf(builder, "--- a/%s\n", diff.OldPath)
		fmt.Fprintf(builder, "+++ b/%s\n", diff.NewPath)
	}

	if diff.Diff != "" {
		builder.WriteString(diff.Diff)
		if !strings.HasSuffix(diff.Diff, "\n") {
			builder.WriteString("\n")
		}
	}
}

// ListFiles lists the files changed by a merge request
func (p *Provider) ListFiles(ctx context.Context, repo string, number int) ([]types.FileChange, error) {
	diffs, err := p.listDiffs(ctx, repo, number)
	if err != nil {
		return nil, err
	}

	result := make([]types.FileChange, 0, len(diffs))
	for _, diff := range diffs {
		result = append(result, convertMergeRequestDiff(diff))
	}

	return result, nil
}

// listDiffs fetches all diff entries of a merge request with full pagination
func (p *Provider) listDiffs(ctx context.Context, repo string, number int) ([]*gitlab.MergeRequestDiff, error) {
	listOpts := &gitlab.ListMergeRequestDiffsOptions{
		ListOptions: gitlab.ListOptions{PerPage: 100, Page: 1},
	}

	var result []*gitlab.MergeRequestDiff
	for {
		diffs, resp, err := p.client.MergeRequests.ListMergeRequestDiffs(repo, number, listOpts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list diffs for MR !%d in %s: %w", number, repo, err)
		}

		result = append(result, diffs...)

		if resp.NextPage == 0 {
			break
		}
		listOpts.Page = resp.NextPage
	}

	return result, nil
}

// GetPullRequestOverview fetches the merge request, its discussion notes,
// and its approval-derived reviews concurrently
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

	slog.Debug("Fetched merge request overview",
		"project", repo,
		"mr", number,
		"comments", len(comments),
		"reviews", len(reviews))

	return &types.PullRequestOverview{
		PullRequest: pullRequest,
		Comments:    comments,
		Reviews:     reviews,
	}, nil
}

// MergePullRequest accepts a merge request. GitLab squashes only when the
// method asks for it; "rebase" falls back to the project's merge method.
func (p *Provider) MergePullRequest(ctx context.Context, repo string, number int, method string) (*types.MergeResult, error) {
	acceptOpts := &gitlab.AcceptMergeRequestOptions{}
	if method == "squash" {
		acceptOpts.Squash = gitlab.Ptr(true)
	}

	mr, _, err := p.client.MergeRequests.AcceptMergeRequest(repo, number, acceptOpts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to merge MR !%d in %s: %w", number, repo, err)
	}

	slog.Info("Merged merge request", "project", repo, "mr", number, "method", method)

	return convertMergeResult(mr), nil
}
