package casing

import (
	"regexp"
	"strings"
	"unicode"
)

// wordBoundary matches a lowercase letter or digit followed by an
// uppercase letter, the boundary inside camelCase and PascalCase words.
var wordBoundary = regexp.MustCompile(`([\p{Ll}\p{Nd}])(\p{Lu})`)

// isWordRune reports whether r belongs to an identifier word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// isKebabWordRune also keeps hyphens inside words, so kebab-case output
// carries existing hyphens through verbatim.
func isKebabWordRune(r rune) bool {
	return r == '-' || isWordRune(r)
}

// identifierWords splits s into words. Every rune that is not a letter,
// digit or combining mark separates words; runs of separators collapse.
func identifierWords(s string) []string {
	return splitWords(s, isWordRune)
}

func splitWords(s string, inWord func(rune) bool) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return !inWord(r) })
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// joinCamel builds camelCase (pascal=false) or PascalCase from line.
// Existing camel humps are not split, so "helloWorld" becomes "helloworld".
func joinCamel(m *caseMapper, line string, pascal bool) string {
	var b strings.Builder
	b.Grow(len(line))
	for i, w := range identifierWords(line) {
		switch {
		case i == 0 && !pascal:
			b.WriteString(m.lower(w))
		case isDigits(w):
			b.WriteString(w)
		default:
			b.WriteString(m.capitalize(w, false))
		}
	}
	return b.String()
}

// joinDelimited builds snake_case, kebab-case or CONSTANT_CASE from line,
// splitting camel humps first. inWord decides which runes survive as part
// of a word; everything else is a separator.
func joinDelimited(m *caseMapper, line, sep string, upper bool, inWord func(rune) bool) string {
	split := wordBoundary.ReplaceAllString(line, "$1 $2")
	words := splitWords(split, inWord)
	joined := strings.Join(words, sep)
	if upper {
		return m.upper(joined)
	}
	return m.lower(joined)
}
