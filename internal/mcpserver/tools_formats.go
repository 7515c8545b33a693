package mcpserver

import (
	"context"

	"github.com/erraggy/recase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// formatSample is converted to every format for the example column.
const formatSample = "the quick brown fox"

type formatsInput struct{}

type formatInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type formatsOutput struct {
	Sample  string       `json:"sample"`
	Formats []formatInfo `json:"formats"`
}

func handleFormats(_ context.Context, _ *mcp.CallToolRequest, _ formatsInput) (*mcp.CallToolResult, formatsOutput, error) {
	c := casing.New()
	output := formatsOutput{Sample: formatSample}
	for _, f := range casing.Formats() {
		output.Formats = append(output.Formats, formatInfo{
			Name:        string(f),
			Description: f.Description(),
			Example:     c.Convert(formatSample, f),
		})
	}
	return nil, output, nil
}
