package casing

import (
	"unicode"
	"unicode/utf8"
)

// Token is a maximal run of either whitespace or non-whitespace characters.
type Token struct {
	Text  string
	Space bool
}

// Tokenize splits line into alternating word and space tokens.
// No token is empty, and concatenating the tokens in order yields line.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}

	var tokens []Token
	start := 0
	r, _ := utf8.DecodeRuneInString(line)
	inSpace := unicode.IsSpace(r)

	for i, r := range line {
		if space := unicode.IsSpace(r); space != inSpace {
			tokens = append(tokens, Token{Text: line[start:i], Space: inSpace})
			start = i
			inSpace = space
		}
	}
	return append(tokens, Token{Text: line[start:], Space: inSpace})
}
