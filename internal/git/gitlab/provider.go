// Package gitlab implements the platform provider for GitLab merge requests.
// GitLab has no first-class review object, so reviews are synthesized from
// the merge request approval state and review threads come from discussions.
package gitlab

import (
	"fmt"
	"time"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"pull-request-mcp/internal/config"
	"pull-request-mcp/internal/httpclient"
)

// Provider implements the types.Provider interface using the GitLab REST API.
type Provider struct {
	client *gitlab.Client
}

// NewProvider creates a GitLab provider from the loaded configuration
func NewProvider(cfg *config.Config) (*Provider, error) {
	opts := []gitlab.ClientOptionFunc{
		gitlab.WithBaseURL(cfg.GitLabBaseURL),
	}
	if cfg.GitLabSkipSSLVerify {
		httpClient := httpclient.New(httpclient.Options{
			Timeout:       time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
			SkipSSLVerify: true,
		})
		opts = append(opts, gitlab.WithHTTPClient(httpClient))
	}

	client, err := gitlab.NewClient(cfg.GitLabToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &Provider{client: client}, nil
}

// Name returns the platform name
func (p *Provider) Name() string {
	return "GitLab"
}
