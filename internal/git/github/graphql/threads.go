package graphql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shurcooL/githubv4"

	"pull-request-mcp/internal/git/types"
)

// threadsPerPage balances query cost against round trips; adversarial PRs
// can hold hundreds of threads
const threadsPerPage = 50

// ThreadFetcher fetches pull request review threads over GraphQL. The REST
// API exposes review comments but not thread resolution state.
type ThreadFetcher struct {
	client *githubv4.Client
}

// NewThreadFetcher creates a review thread fetcher with authentication
func NewThreadFetcher(token string) *ThreadFetcher {
	return &ThreadFetcher{client: newClient(token)}
}

// reviewThreadsQuery follows the reviewThreads connection of a pull request
type reviewThreadsQuery struct {
	Repository struct {
		PullRequest struct {
			ReviewThreads struct {
				Nodes    []threadNode
				PageInfo struct {
					HasNextPage githubv4.Boolean
					EndCursor   githubv4.String
				}
			} `graphql:"reviewThreads(first: $pageSize, after: $cursor)"`
		} `graphql:"pullRequest(number: $number)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

type threadNode struct {
	ID         githubv4.ID
	IsResolved githubv4.Boolean
	IsOutdated githubv4.Boolean
	Path       githubv4.String
	Line       *githubv4.Int
	Comments   struct {
		Nodes []threadCommentNode
	} `graphql:"comments(first: 50)"`
}

type threadCommentNode struct {
	DatabaseID githubv4.Int
	Author     struct {
		Login githubv4.String
	}
	Body      githubv4.String
	CreatedAt githubv4.DateTime
	URL       githubv4.URI
}

// ListReviewThreads fetches all review threads of a pull request, paginating
// the thread connection to exhaustion
func (f *ThreadFetcher) ListReviewThreads(ctx context.Context, owner, name string, number int) ([]types.ReviewThread, error) {
	variables := map[string]interface{}{
		"owner":    githubv4.String(owner),
		"name":     githubv4.String(name),
		"number":   githubv4.Int(number),
		"pageSize": githubv4.Int(threadsPerPage),
		"cursor":   (*githubv4.String)(nil),
	}

	var result []types.ReviewThread
	for {
		var query reviewThreadsQuery
		if err := f.client.Query(ctx, &query, variables); err != nil {
			return nil, fmt.Errorf("failed to query review threads for PR #%d in %s/%s: %w", number, owner, name, err)
		}

		for _, node := range query.Repository.PullRequest.ReviewThreads.Nodes {
			result = append(result, convertThread(node))
		}

		pageInfo := query.Repository.PullRequest.ReviewThreads.PageInfo
		if !pageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(pageInfo.EndCursor)
	}

	slog.Debug("Fetched review threads", "owner", owner, "repo", name, "pr", number, "threads", len(result))

	return result, nil
}

// convertThread maps a GraphQL thread node to the platform-agnostic shape
func convertThread(node threadNode) types.ReviewThread {
	thread := types.ReviewThread{
		ID:       fmt.Sprintf("%v", node.ID),
		Path:     string(node.Path),
		Resolved: bool(node.IsResolved),
		Outdated: bool(node.IsOutdated),
	}

	if node.Line != nil {
		thread.Line = int(*node.Line)
	}

	for _, comment := range node.Comments.Nodes {
		thread.Comments = append(thread.Comments, types.Comment{
			ID:        int64(comment.DatabaseID),
			Author:    string(comment.Author.Login),
			Body:      string(comment.Body),
			Path:      thread.Path,
			Line:      thread.Line,
			CreatedAt: comment.CreatedAt.Time,
			URL:       comment.URL.String(),
		})
	}

	return thread
}
