package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceSegment is a run of text between sentence boundaries, or a
// boundary marker itself.
type sentenceSegment struct {
	text     string
	boundary bool
}

// splitSentences splits s around boundary markers: a '.', '!' or '?'
// followed by whitespace or the end of s. Markers become their own
// segments; the whitespace after a marker starts the next segment.
func splitSentences(s string) []sentenceSegment {
	var segments []sentenceSegment
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
		default:
			continue
		}
		next := i + 1
		if next < len(s) {
			r, _ := utf8.DecodeRuneInString(s[next:])
			if !unicode.IsSpace(r) {
				continue
			}
		}
		if start < i {
			segments = append(segments, sentenceSegment{text: s[start:i]})
		}
		segments = append(segments, sentenceSegment{text: s[i:next], boundary: true})
		start = next
	}
	if start < len(s) {
		segments = append(segments, sentenceSegment{text: s[start:]})
	}
	return segments
}

func (c *Converter) sentenceLine(m *caseMapper, line string) string {
	var b strings.Builder
	b.Grow(len(line))

	capitalizeNext := true
	for _, seg := range splitSentences(line) {
		if seg.boundary {
			b.WriteString(seg.text)
			capitalizeNext = true
			continue
		}

		out := c.sentenceSegment(m, seg.text)
		if capitalizeNext && out != "" {
			// Uppercasing is positional and runs after the word rules,
			// so it also applies to a never-capitalize entry.
			out = m.upperFirstLetter(out)
			capitalizeNext = false
		}
		b.WriteString(out)
	}
	return b.String()
}

func (c *Converter) sentenceSegment(m *caseMapper, segment string) string {
	var b strings.Builder
	b.Grow(len(segment))
	for _, t := range Tokenize(segment) {
		if t.Space {
			b.WriteString(t.Text)
			continue
		}
		b.WriteString(c.sentenceWord(m, t.Text))
	}
	return b.String()
}

func (c *Converter) sentenceWord(m *caseMapper, word string) string {
	if c.preserveAcronyms && m.isAcronym(word) {
		return word
	}
	if v, ok := c.override(m, word); ok {
		return v
	}
	return m.lower(word)
}
