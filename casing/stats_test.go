package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Stats
	}{
		{name: "empty", input: "", want: Stats{}},
		{name: "one word", input: "hi", want: Stats{Characters: 2, Words: 1, Lines: 1, Sentences: 1}},
		{
			name:  "sentences across lines",
			input: "Hello world. How are you?\nFine",
			want:  Stats{Characters: 30, Words: 6, Lines: 2, Sentences: 3},
		},
		{name: "whitespace only", input: " \n ", want: Stats{Characters: 3, Words: 0, Lines: 2, Sentences: 0}},
		{name: "stray marker", input: "ok ! ", want: Stats{Characters: 5, Words: 2, Lines: 1, Sentences: 1}},
		{name: "runes not bytes", input: "héllo", want: Stats{Characters: 5, Words: 1, Lines: 1, Sentences: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.input))
		})
	}
}
