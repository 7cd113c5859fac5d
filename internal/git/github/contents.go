package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v80/github"
)

// GetFileContents fetches a file's decoded content at a ref. An empty ref
// means the repository's default branch.
func (p *Provider) GetFileContents(ctx context.Context, repo, path, ref string) (string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return "", err
	}

	var getOpts *github.RepositoryContentGetOptions
	if ref != "" {
		getOpts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	fileContent, _, _, err := p.client.Repositories.GetContents(ctx, owner, name, path, getOpts)
	if err != nil {
		return "", fmt.Errorf("failed to get contents of %s in %s: %w", path, repo, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%s in %s is a directory, not a file", path, repo)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode contents of %s in %s: %w", path, repo, err)
	}

	return content, nil
}
