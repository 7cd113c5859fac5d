package cli

import (
	"flag"
	"os"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		errMsg  string
		check   func(*testing.T, *Args)
	}{
		{
			name:    "defaults",
			args:    []string{"cmd"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if args.Transport != "stdio" {
					t.Errorf("Transport = %v, expected stdio", args.Transport)
				}
				if args.Provider != "auto" {
					t.Errorf("Provider = %v, expected auto", args.Provider)
				}
			},
		},
		{
			name:    "help flag should not trigger validation",
			args:    []string{"cmd", "--help", "--transport", "invalid"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if !args.ShowHelp {
					t.Error("ShowHelp should be true")
				}
			},
		},
		{
			name:    "help shorthand should not trigger validation",
			args:    []string{"cmd", "-h"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if !args.ShowHelp {
					t.Error("ShowHelp should be true")
				}
			},
		},
		{
			name:    "http transport with addr",
			args:    []string{"cmd", "-t", "http", "-a", ":9000"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if args.Transport != "http" {
					t.Errorf("Transport = %v, expected http", args.Transport)
				}
				if args.Addr != ":9000" {
					t.Errorf("Addr = %v, expected :9000", args.Addr)
				}
			},
		},
		{
			name:    "explicit provider",
			args:    []string{"cmd", "--provider", "gitlab"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if args.Provider != "gitlab" {
					t.Errorf("Provider = %v, expected gitlab", args.Provider)
				}
			},
		},
		{
			name:    "invalid transport should fail",
			args:    []string{"cmd", "--transport", "websocket"},
			wantErr: true,
			errMsg:  "invalid transport 'websocket': must be 'stdio' or 'http'",
		},
		{
			name:    "invalid provider should fail",
			args:    []string{"cmd", "-p", "bitbucket"},
			wantErr: true,
			errMsg:  "invalid provider 'bitbucket': must be 'github', 'gitlab', or 'auto'",
		},
		{
			name:    "addr without http transport should fail",
			args:    []string{"cmd", "--addr", ":9000"},
			wantErr: true,
			errMsg:  "--addr is only available with the http transport",
		},
		{
			name:    "explicit default addr without http transport should fail",
			args:    []string{"cmd", "-a", ":8080"},
			wantErr: true,
			errMsg:  "--addr is only available with the http transport",
		},
		{
			name:    "http transport without addr uses the default",
			args:    []string{"cmd", "-t", "http"},
			wantErr: false,
			check: func(t *testing.T, args *Args) {
				if args.Addr != ":8080" {
					t.Errorf("Addr = %v, expected default :8080", args.Addr)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Save and restore os.Args
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()
			os.Args = tt.args

			args, err := Parse()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse() expected error but got nil")
					return
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Parse() error = %v, expected to contain %v", err.Error(), tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("Parse() unexpected error = %v", err)
					return
				}
				if tt.check != nil {
					tt.check(t, args)
				}
			}
		})
	}
}
