package casing

import "strings"

// minorWords stay lowercase in title case unless they open or close a line.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "for": {}, "nor": {},
	"as": {}, "at": {}, "by": {}, "from": {}, "in": {}, "into": {},
	"near": {}, "of": {}, "on": {}, "onto": {}, "to": {}, "with": {},
}

func (c *Converter) titleLine(m *caseMapper, line string) string {
	tokens := Tokenize(line)

	first, last := -1, -1
	for i, t := range tokens {
		if t.Space {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}

	var b strings.Builder
	b.Grow(len(line))
	for i, t := range tokens {
		if t.Space {
			b.WriteString(t.Text)
			continue
		}
		b.WriteString(c.titleWord(m, t.Text, i == first || i == last))
	}
	return b.String()
}

// titleWord applies, in order: acronym preservation, the custom lists,
// first/last word capitalization, minor-word lowercasing.
func (c *Converter) titleWord(m *caseMapper, word string, boundary bool) string {
	if c.preserveAcronyms && m.isAcronym(word) {
		return word
	}
	if v, ok := c.override(m, word); ok {
		return v
	}
	if boundary {
		return m.capitalize(word, false)
	}
	lower := m.lower(word)
	if _, ok := minorWords[lower]; ok {
		return lower
	}
	return m.capitalize(word, c.preserveAcronyms)
}
