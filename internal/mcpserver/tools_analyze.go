package mcpserver

import (
	"context"

	"github.com/erraggy/recase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type analyzeInput struct {
	Text string `json:"text" jsonschema:"The text to analyze"`
}

func handleAnalyze(_ context.Context, _ *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, casing.Stats, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), casing.Stats{}, nil
	}
	return nil, casing.Analyze(input.Text), nil
}
