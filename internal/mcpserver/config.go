package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/recase/casing"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInputSize caps the text accepted by any tool, in bytes.
	MaxInputSize int64

	// DefaultFormat is used by convert when the caller omits format.
	// Empty means the format is required.
	DefaultFormat casing.Format

	// RulesFile is a rules file applied before per-call rules.
	RulesFile string

	// PreserveAcronyms is the default for calls that do not set it.
	PreserveAcronyms bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RECASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInputSize:     envInt64("RECASE_MAX_INPUT_SIZE", 1024*1024),
		DefaultFormat:    envFormat("RECASE_DEFAULT_FORMAT"),
		RulesFile:        os.Getenv("RECASE_RULES_FILE"),
		PreserveAcronyms: envBool("RECASE_PRESERVE_ACRONYMS", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key string) casing.Format {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	f, err := casing.ParseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return f
}
