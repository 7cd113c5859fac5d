package gitlab

import (
	"context"
	"fmt"
	"log/slog"

	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// GetFileContents fetches a file's content at a ref. An empty ref means the
// project's default branch.
func (p *Provider) GetFileContents(ctx context.Context, repo, path, ref string) (string, error) {
	opts := &gitlab.GetRawFileOptions{}
	if ref != "" {
		opts.Ref = gitlab.Ptr(ref)
	}

	raw, _, err := p.client.RepositoryFiles.GetRawFile(repo, path, opts, gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to get file %s at ref %q in %s: %w", path, ref, repo, err)
	}

	slog.Debug("Fetched file contents", "project", repo, "path", path, "ref", ref, "bytes", len(raw))

	return string(raw), nil
}
