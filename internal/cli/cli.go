package cli

import (
	"flag"
	"fmt"
)

// Args holds the parsed command-line arguments
type Args struct {
	Transport string
	Addr      string
	Provider  string
	ShowHelp  bool

	addrSet bool // whether --addr/-a was given explicitly
}

// Parse parses command-line arguments
func Parse() (*Args, error) {
	args := &Args{}

	// Define flags with both long and short forms
	flag.StringVar(&args.Transport, "transport", "stdio", "Server transport: 'stdio' (default) or 'http'")
	flag.StringVar(&args.Transport, "t", "stdio", "Server transport (shorthand)")

	flag.StringVar(&args.Addr, "addr", ":8080", "Listen address for the http transport")
	flag.StringVar(&args.Addr, "a", ":8080", "Listen address (shorthand)")

	flag.StringVar(&args.Provider, "provider", "auto", "Git platform: 'github', 'gitlab', or 'auto'")
	flag.StringVar(&args.Provider, "p", "auto", "Git platform (shorthand)")

	flag.BoolVar(&args.ShowHelp, "help", false, "Show help message")
	flag.BoolVar(&args.ShowHelp, "h", false, "Show help message (shorthand)")

	flag.Parse()

	// Comparing Addr against its default cannot tell "-a :8080" from an
	// omitted flag; only the set of visited flags can
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "addr" || f.Name == "a" {
			args.addrSet = true
		}
	})

	// Check for help flag early - no need to validate if user just wants help
	if args.ShowHelp {
		return args, nil
	}

	if err := args.validate(); err != nil {
		return nil, err
	}

	return args, nil
}

// validate validates the parsed arguments
func (a *Args) validate() error {
	if a.Transport != "stdio" && a.Transport != "http" {
		return fmt.Errorf("invalid transport '%s': must be 'stdio' or 'http'", a.Transport)
	}

	switch a.Provider {
	case "auto", "github", "gitlab":
	default:
		return fmt.Errorf("invalid provider '%s': must be 'github', 'gitlab', or 'auto'", a.Provider)
	}

	if a.addrSet && a.Transport != "http" {
		return fmt.Errorf("--addr is only available with the http transport")
	}

	return nil
}

// ShowUsage displays usage information
func ShowUsage() {
	fmt.Println(`Pull Request MCP - pull request tools for MCP clients

USAGE:
  Stdio transport (default):
    pull-request-mcp

  HTTP transport:
    pull-request-mcp --transport http --addr :8080

FLAGS:
  -t, --transport <transport>  Server transport: 'stdio' or 'http'
  -a, --addr <addr>            Listen address (http transport only)
  -p, --provider <provider>    Git platform: 'github', 'gitlab', or 'auto'
  -h, --help                   Show this help message

EXAMPLES:
  # Serve over stdio for a local MCP client
  pull-request-mcp

  # Serve over HTTP on port 9000
  pull-request-mcp -t http -a :9000

  # Force the GitLab provider
  pull-request-mcp -p gitlab

CONFIGURATION:
  All configuration is set via environment variables or a YAML file
  pointed to by PRMCP_CONFIG_FILE. Tokens:
    PRMCP_GITHUB_TOKEN     GitHub API token
    PRMCP_GITLAB_TOKEN     GitLab API token (requires PRMCP_GITLAB_BASE_URL)

  With --provider auto, the platform is picked from whichever token is set;
  GitHub wins when both are.`)
}
