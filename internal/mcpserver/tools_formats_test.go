package mcpserver

import (
	"context"
	"testing"

	"github.com/erraggy/recase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsTool(t *testing.T) {
	result, output, err := handleFormats(context.Background(), &mcp.CallToolRequest{}, formatsInput{})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, formatSample, output.Sample)
	require.Len(t, output.Formats, len(casing.Formats()))

	byName := make(map[string]formatInfo)
	for _, f := range output.Formats {
		byName[f.Name] = f
	}
	assert.Equal(t, "The Quick Brown Fox", byName["title"].Example)
	assert.Equal(t, "theQuickBrownFox", byName["camel"].Example)
	assert.Equal(t, "THE_QUICK_BROWN_FOX", byName["constant"].Example)
	assert.Equal(t, "kebab-case", byName["kebab"].Description)
}

func TestAnalyzeTool(t *testing.T) {
	withConfig(t, defaultTestConfig())

	result, output, err := handleAnalyze(context.Background(), &mcp.CallToolRequest{}, analyzeInput{Text: "Hi there.\nBye"})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, casing.Stats{Characters: 13, Words: 3, Lines: 2, Sentences: 2}, output)
}

func TestAnalyzeTool_TooLarge(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputSize: 2})

	result, _, err := handleAnalyze(context.Background(), &mcp.CallToolRequest{}, analyzeInput{Text: "abc"})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "input too large")
}
