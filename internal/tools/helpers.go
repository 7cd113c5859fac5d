package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// requireRepoAndNumber extracts the two arguments every pull request tool
// shares
func requireRepoAndNumber(req mcp.CallToolRequest) (string, int, error) {
	repo, err := req.RequireString("repo")
	if err != nil {
		return "", 0, fmt.Errorf("repo is required")
	}

	number, err := req.RequireInt("number")
	if err != nil {
		return "", 0, fmt.Errorf("number is required and must be an integer")
	}
	if number <= 0 {
		return "", 0, fmt.Errorf("number must be positive, got %d", number)
	}

	return repo, number, nil
}

// jsonResult marshals a value as indented JSON into a text result
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
