package github

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"

	"pull-request-mcp/internal/config"
	"pull-request-mcp/internal/git/github/graphql"
	"pull-request-mcp/internal/httpclient"
)

// Provider implements the types.Provider interface using the GitHub REST API,
// with review threads fetched over GraphQL (REST does not expose thread
// resolution state).
type Provider struct {
	client  *github.Client
	threads *graphql.ThreadFetcher
}

// NewProvider creates a GitHub provider from the loaded configuration
func NewProvider(cfg *config.Config) *Provider {
	httpClient := httpclient.New(httpclient.Options{
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	})

	return &Provider{
		client:  github.NewClient(httpClient).WithAuthToken(cfg.GitHubToken),
		threads: graphql.NewThreadFetcher(cfg.GitHubToken),
	}
}

// Name returns the platform name
func (p *Provider) Name() string {
	return "GitHub"
}

// splitRepo splits an "owner/name" repository path
func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid GitHub repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}
