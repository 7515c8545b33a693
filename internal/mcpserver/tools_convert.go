package mcpserver

import (
	"context"

	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Text         string     `json:"text"                    jsonschema:"The text to convert"`
	Format       string     `json:"format,omitempty"        jsonschema:"Target format: upper\\, lower\\, title\\, sentence\\, camel\\, pascal\\, snake\\, kebab or constant"`
	Rules        rulesInput `json:"rules,omitempty"         jsonschema:"Capitalization rules for title and sentence case"`
	IncludeStats bool       `json:"include_stats,omitempty" jsonschema:"Include character\\, word\\, line and sentence counts of the input"`
}

type convertOutput struct {
	Format string        `json:"format"`
	Text   string        `json:"text"`
	Stats  *casing.Stats `json:"stats,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts, err := buildOptions(input.Rules)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Format: string(format),
		Text:   casing.Convert(input.Text, format, opts...),
	}
	if input.IncludeStats {
		stats := casing.Analyze(input.Text)
		output.Stats = &stats
	}
	return nil, output, nil
}

// resolveFormat parses name, falling back to the configured default.
func resolveFormat(name string) (casing.Format, error) {
	if name == "" {
		if cfg.DefaultFormat == "" {
			return "", &caseerrors.ConfigError{
				Option:  "format",
				Message: "format is required (no RECASE_DEFAULT_FORMAT configured)",
			}
		}
		return cfg.DefaultFormat, nil
	}
	return casing.ParseFormat(name)
}

type convertAllInput struct {
	Text  string     `json:"text"            jsonschema:"The text to convert"`
	Rules rulesInput `json:"rules,omitempty" jsonschema:"Capitalization rules for title and sentence case"`
}

type convertAllOutput struct {
	Results []casing.Result `json:"results"`
}

func handleConvertAll(_ context.Context, _ *mcp.CallToolRequest, input convertAllInput) (*mcp.CallToolResult, convertAllOutput, error) {
	if err := checkText(input.Text); err != nil {
		return errResult(err), convertAllOutput{}, nil
	}

	opts, err := buildOptions(input.Rules)
	if err != nil {
		return errResult(err), convertAllOutput{}, nil
	}

	return nil, convertAllOutput{Results: casing.New(opts...).ConvertAll(input.Text)}, nil
}
