package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"pull-request-mcp/internal/cli"
	"pull-request-mcp/internal/config"
	"pull-request-mcp/internal/git/github"
	"pull-request-mcp/internal/git/gitlab"
	"pull-request-mcp/internal/git/types"
	"pull-request-mcp/internal/logger"
	"pull-request-mcp/internal/tools"
)

func main() {
	// Parse command-line arguments
	args, err := cli.Parse()
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}

	// Handle help flag
	if args.ShowHelp {
		cli.ShowUsage()
		os.Exit(0)
	}

	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging
	logger.Setup(cfg)

	// Create the git platform provider
	provider, err := newProvider(args.Provider, cfg)
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	slog.Info("Starting MCP server",
		"provider", provider.Name(),
		"transport", args.Transport)

	// Serve
	s := tools.NewServer(provider, cfg)

	switch args.Transport {
	case "http":
		httpServer := server.NewStreamableHTTPServer(s)
		if err := httpServer.Start(args.Addr); err != nil {
			log.Fatalf("HTTP server failed: %v", err)
		}
	default:
		if err := server.ServeStdio(s); err != nil {
			log.Fatalf("Stdio server failed: %v", err)
		}
	}
}

// newProvider selects and constructs the git platform provider. With "auto",
// the platform follows the configured tokens; GitHub wins when both are set.
func newProvider(name string, cfg *config.Config) (types.Provider, error) {
	if name == "auto" {
		if cfg.GitHubToken != "" {
			name = "github"
		} else {
			name = "gitlab"
		}
	}

	switch name {
	case "github":
		if cfg.GitHubToken == "" {
			return nil, fmt.Errorf("the GitHub provider requires PRMCP_GITHUB_TOKEN")
		}
		return github.NewProvider(cfg), nil
	case "gitlab":
		if cfg.GitLabToken == "" {
			return nil, fmt.Errorf("the GitLab provider requires PRMCP_GITLAB_TOKEN")
		}
		return gitlab.NewProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
