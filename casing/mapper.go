package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseMapper bundles the casers used during a single conversion.
// cases.Caser is stateful, so a caseMapper must not be shared between
// goroutines; Converter creates one per call.
type caseMapper struct {
	upperCaser cases.Caser
	lowerCaser cases.Caser
	foldCaser  cases.Caser
}

func newCaseMapper(tag language.Tag) *caseMapper {
	return &caseMapper{
		upperCaser: cases.Upper(tag),
		lowerCaser: cases.Lower(tag),
		foldCaser:  cases.Fold(),
	}
}

func (m *caseMapper) upper(s string) string {
	return m.upperCaser.String(s)
}

func (m *caseMapper) lower(s string) string {
	return m.lowerCaser.String(s)
}

// key returns the case-insensitive lookup key for a word.
func (m *caseMapper) key(s string) string {
	return m.foldCaser.String(s)
}

// isAcronym reports whether word has at least two characters, is already
// entirely uppercase and contains a letter.
func (m *caseMapper) isAcronym(word string) bool {
	if utf8.RuneCountInString(word) < 2 {
		return false
	}
	if m.upper(word) != word {
		return false
	}
	return strings.IndexFunc(word, unicode.IsLetter) >= 0
}

// capitalize uppercases the first character of word and lowercases the
// rest. When preserveAcronyms is set, acronyms are returned unchanged.
func (m *caseMapper) capitalize(word string, preserveAcronyms bool) string {
	if word == "" {
		return word
	}
	if preserveAcronyms && m.isAcronym(word) {
		return word
	}
	_, size := utf8.DecodeRuneInString(word)
	return m.upper(word[:size]) + m.lower(word[size:])
}

// upperFirstLetter uppercases the first letter in s, leaving everything
// before it (punctuation, digits, spaces) and after it untouched.
func (m *caseMapper) upperFirstLetter(s string) string {
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i] + m.upper(s[i:i+size]) + s[i+size:]
}

// IsAcronym reports whether word is an acronym: at least two characters,
// entirely uppercase, and containing at least one letter.
func IsAcronym(word string) bool {
	return newCaseMapper(language.Und).isAcronym(word)
}
