package casing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{name: "empty", input: "", want: nil},
		{name: "single word", input: "hello", want: []Token{{Text: "hello"}}},
		{name: "only space", input: "  ", want: []Token{{Text: "  ", Space: true}}},
		{
			name:  "leading and trailing space",
			input: "  hi  there ",
			want: []Token{
				{Text: "  ", Space: true},
				{Text: "hi"},
				{Text: "  ", Space: true},
				{Text: "there"},
				{Text: " ", Space: true},
			},
		},
		{
			name:  "mixed whitespace kinds form one run",
			input: "a \t b",
			want: []Token{
				{Text: "a"},
				{Text: " \t ", Space: true},
				{Text: "b"},
			},
		},
		{
			name:  "punctuation belongs to words",
			input: "hi, you!",
			want: []Token{
				{Text: "hi,"},
				{Text: " ", Space: true},
				{Text: "you!"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Partition(t *testing.T) {
	inputs := []string{
		"",
		"x",
		" leading",
		"trailing ",
		"many   spaces\tand\ttabs",
		"ünïcödé wörds  ＡＢＣ",
		"line\nbreaks\r\ncount as space",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)

		var b strings.Builder
		for i, tok := range tokens {
			assert.NotEmpty(t, tok.Text, "token %d of %q is empty", i, input)
			if i > 0 {
				assert.NotEqual(t, tokens[i-1].Space, tok.Space, "adjacent tokens of the same kind in %q", input)
			}
			b.WriteString(tok.Text)
		}
		assert.Equal(t, input, b.String())
	}
}
