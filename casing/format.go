package casing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/recase/caseerrors"
)

// Format identifies a target case representation.
type Format string

const (
	// FormatUpper maps every character to uppercase.
	FormatUpper Format = "upper"
	// FormatLower maps every character to lowercase.
	FormatLower Format = "lower"
	// FormatTitle capitalizes words except interior minor words.
	FormatTitle Format = "title"
	// FormatSentence capitalizes the first letter of each sentence.
	FormatSentence Format = "sentence"
	// FormatCamel joins words as camelCase.
	FormatCamel Format = "camel"
	// FormatPascal joins words as PascalCase.
	FormatPascal Format = "pascal"
	// FormatSnake joins lowercase words with underscores.
	FormatSnake Format = "snake"
	// FormatKebab joins lowercase words with hyphens.
	FormatKebab Format = "kebab"
	// FormatConstant joins uppercase words with underscores.
	FormatConstant Format = "constant"
)

var allFormats = []Format{
	FormatUpper,
	FormatLower,
	FormatTitle,
	FormatSentence,
	FormatCamel,
	FormatPascal,
	FormatSnake,
	FormatKebab,
	FormatConstant,
}

var formatDescriptions = map[Format]string{
	FormatUpper:    "UPPER CASE",
	FormatLower:    "lower case",
	FormatTitle:    "Title Case",
	FormatSentence: "Sentence case",
	FormatCamel:    "camelCase",
	FormatPascal:   "PascalCase",
	FormatSnake:    "snake_case",
	FormatKebab:    "kebab-case",
	FormatConstant: "CONSTANT_CASE",
}

// Formats returns every supported format in display order.
func Formats() []Format {
	return slices.Clone(allFormats)
}

// IsValid reports whether f is one of the supported formats.
func (f Format) IsValid() bool {
	return slices.Contains(allFormats, f)
}

// String returns the format tag.
func (f Format) String() string {
	return string(f)
}

// Description returns the format's name written in its own style,
// e.g. "snake_case" for FormatSnake. Unknown formats return "".
func (f Format) Description() string {
	return formatDescriptions[f]
}

// ParseFormat converts a user-supplied name into a Format.
// Matching ignores case, surrounding whitespace and a trailing "-case" or
// "_case", so "Snake", "snake_case" and "SNAKE-CASE" all name FormatSnake.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimSuffix(normalized, "-case")
	normalized = strings.TrimSuffix(normalized, "_case")

	f := Format(normalized)
	if !f.IsValid() {
		return "", &caseerrors.ConfigError{
			Option:  "format",
			Value:   name,
			Message: fmt.Sprintf("valid formats: %s", formatList()),
			Cause:   caseerrors.ErrUnknownFormat,
		}
	}
	return f, nil
}

func formatList() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
