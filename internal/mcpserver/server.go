// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes recase conversions as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/internal/rules"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `recase MCP server — converts text between case formats (upper, lower, title, sentence, camel, pascal, snake, kebab, constant).

Configuration: defaults are configurable via RECASE_* environment variables set in your MCP client config.

Key settings:
- RECASE_MAX_INPUT_SIZE (default: 1048576) — maximum text size in bytes
- RECASE_DEFAULT_FORMAT (default: none) — format used by convert when none is given
- RECASE_RULES_FILE (default: none) — YAML rules file with always_capitalize / never_capitalize lists
- RECASE_PRESERVE_ACRONYMS (default: true) — keep all-uppercase words in title and sentence case

Line breaks (\n and \r\n) are always preserved. Per-call rules are applied after the rules file.`

// baseRules holds the options loaded from RECASE_RULES_FILE at startup.
var baseRules []casing.Option

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.RulesFile != "" {
		f, err := rules.Load(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("mcpserver: %w", err)
		}
		opts, err := f.Options()
		if err != nil {
			return fmt.Errorf("mcpserver: %w", err)
		}
		baseRules = opts
		slog.Info("loaded rules file", "path", cfg.RulesFile,
			"always", len(f.AlwaysCapitalize), "never", len(f.NeverCapitalize))
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "recase", Version: recase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert text to one case format: upper, lower, title, sentence, camel, pascal, snake, kebab or constant. Title and sentence case keep acronyms (NASA) unless preserve_acronyms=false and honor always_capitalize / never_capitalize word lists. Line breaks are preserved. Set include_stats for character, word, line and sentence counts.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_all",
		Description: "Convert text to every supported case format at once. Returns one result per format in display order. Accepts the same rules as convert.",
	}, handleConvertAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "formats",
		Description: "List the supported case formats with a short description and an example conversion.",
	}, handleFormats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Count the characters, words, lines and sentences in text.",
	}, handleAnalyze)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
