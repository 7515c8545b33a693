package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrInput indicates the text to convert could not be obtained.
	ErrInput = errors.New("input error")

	// ErrUnknownFormat indicates a case format name that is not recognized.
	ErrUnknownFormat = errors.New("unknown case format")
)

// ConfigError represents an invalid configuration value.
// This includes unknown format names, invalid language tags and malformed
// rule files.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// InputError represents a failure to obtain the text to convert.
type InputError struct {
	// Source is the file path, "-" for stdin, or a tool argument name
	Source string
	// Size is the number of bytes read before giving up (0 if not applicable)
	Size int64
	// Limit is the configured size limit in bytes (0 if not applicable)
	Limit int64
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.Source != "" {
		msg += " for " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (exceeds limit of %d bytes)", e.Limit)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// IsTooLarge reports whether the error was caused by a size limit.
func (e *InputError) IsTooLarge() bool {
	return e.Limit > 0 && e.Size > e.Limit
}
