// Package caseerrors provides structured error types for recase.
//
// The conversion engine in package casing is total and never fails; these
// errors are produced by the surfaces around it (format parsing, rule files,
// CLI and MCP input handling). They support errors.Is() and errors.As() so
// callers can tell a bad option apart from an unreadable input.
//
// # Error Categories
//
//   - ConfigError: invalid options, unknown format names, bad rule files
//   - InputError: unreadable or oversized input text
//
// # Usage with errors.Is
//
//	f, err := casing.ParseFormat("shouty")
//	if errors.Is(err, caseerrors.ErrUnknownFormat) {
//	    // offer the list from casing.Formats()
//	}
package caseerrors
