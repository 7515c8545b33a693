package casing

import (
	"strings"
	"unicode/utf8"
)

// Stats summarizes a piece of text.
type Stats struct {
	Characters int `json:"characters" yaml:"characters"`
	Words      int `json:"words"      yaml:"words"`
	Lines      int `json:"lines"      yaml:"lines"`
	Sentences  int `json:"sentences"  yaml:"sentences"`
}

// Analyze counts the characters, words, lines and sentences in text.
// Characters are runes. A sentence is any non-blank text ended by the
// boundary rule sentence case uses, or by the end of text.
func Analyze(text string) Stats {
	if text == "" {
		return Stats{}
	}

	s := Stats{
		Characters: utf8.RuneCountInString(text),
		Lines:      strings.Count(text, "\n") + 1,
	}
	for _, t := range Tokenize(text) {
		if !t.Space {
			s.Words++
		}
	}

	pending := false
	for _, seg := range splitSentences(text) {
		if seg.boundary {
			if pending {
				s.Sentences++
			}
			pending = false
			continue
		}
		if strings.TrimSpace(seg.text) != "" {
			pending = true
		}
	}
	if pending {
		s.Sentences++
	}
	return s
}
