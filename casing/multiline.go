package casing

import "strings"

// ProcessMultilineText applies fn to every line of text and reassembles the
// result with the original line separators. Both "\n" and "\r\n" are
// recognized; each separator is written back in its original form. Empty
// lines are passed to fn as well.
func ProcessMultilineText(text string, fn func(string) string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		end := i
		if i > start && text[i-1] == '\r' {
			end = i - 1
		}
		b.WriteString(fn(text[start:end]))
		b.WriteString(text[end : i+1])
		start = i + 1
	}
	b.WriteString(fn(text[start:]))
	return b.String()
}
