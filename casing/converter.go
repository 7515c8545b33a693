package casing

import "golang.org/x/text/language"

// Converter converts text between case formats using a fixed set of
// capitalization rules. A Converter is immutable once built and is safe
// for concurrent use.
type Converter struct {
	preserveAcronyms bool
	always           map[string]string
	never            map[string]string
	lang             language.Tag
}

// Result is one entry of ConvertAll.
type Result struct {
	Format Format `json:"format" yaml:"format"`
	Text   string `json:"text"   yaml:"text"`
}

// New creates a Converter. With no options, acronyms are preserved and no
// custom capitalization lists apply.
func New(opts ...Option) *Converter {
	cfg := applyOptions(opts...)
	m := newCaseMapper(cfg.lang)
	return &Converter{
		preserveAcronyms: cfg.preserveAcronyms,
		always:           buildLookup(m, cfg.alwaysCapitalize),
		never:            buildLookup(m, cfg.neverCapitalize),
		lang:             cfg.lang,
	}
}

// buildLookup indexes words by their case-folded form.
// The first entry for a given key wins.
func buildLookup(m *caseMapper, words []string) map[string]string {
	lookup := make(map[string]string, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		k := m.key(w)
		if _, exists := lookup[k]; !exists {
			lookup[k] = w
		}
	}
	return lookup
}

// override returns the configured casing for word when it appears in the
// always-capitalize or never-capitalize list.
func (c *Converter) override(m *caseMapper, word string) (string, bool) {
	if len(c.always) == 0 && len(c.never) == 0 {
		return "", false
	}
	k := m.key(word)
	if v, ok := c.always[k]; ok {
		return v, true
	}
	if v, ok := c.never[k]; ok {
		return v, true
	}
	return "", false
}

// Convert converts text to the given format. Empty text and unknown
// formats return text unchanged.
func (c *Converter) Convert(text string, format Format) string {
	if text == "" {
		return text
	}
	fn := c.lineFunc(format)
	if fn == nil {
		return text
	}
	return ProcessMultilineText(text, fn)
}

// ConvertAll converts text to every supported format, in Formats() order.
func (c *Converter) ConvertAll(text string) []Result {
	results := make([]Result, 0, len(allFormats))
	for _, f := range allFormats {
		results = append(results, Result{Format: f, Text: c.Convert(text, f)})
	}
	return results
}

// lineFunc returns the single-line conversion for format, or nil when the
// format is unknown.
func (c *Converter) lineFunc(format Format) func(string) string {
	m := newCaseMapper(c.lang)
	switch format {
	case FormatUpper:
		return m.upper
	case FormatLower:
		return m.lower
	case FormatTitle:
		return func(line string) string { return c.titleLine(m, line) }
	case FormatSentence:
		return func(line string) string { return c.sentenceLine(m, line) }
	case FormatCamel:
		return func(line string) string { return joinCamel(m, line, false) }
	case FormatPascal:
		return func(line string) string { return joinCamel(m, line, true) }
	case FormatSnake:
		return func(line string) string { return joinDelimited(m, line, "_", false, isWordRune) }
	case FormatKebab:
		return func(line string) string { return joinDelimited(m, line, "-", false, isKebabWordRune) }
	case FormatConstant:
		return func(line string) string { return joinDelimited(m, line, "_", true, isWordRune) }
	default:
		return nil
	}
}

// Upper converts text to UPPER CASE.
func (c *Converter) Upper(text string) string { return c.Convert(text, FormatUpper) }

// Lower converts text to lower case.
func (c *Converter) Lower(text string) string { return c.Convert(text, FormatLower) }

// Title converts text to Title Case.
func (c *Converter) Title(text string) string { return c.Convert(text, FormatTitle) }

// Sentence converts text to Sentence case.
func (c *Converter) Sentence(text string) string { return c.Convert(text, FormatSentence) }

// Camel converts text to camelCase.
func (c *Converter) Camel(text string) string { return c.Convert(text, FormatCamel) }

// Pascal converts text to PascalCase.
func (c *Converter) Pascal(text string) string { return c.Convert(text, FormatPascal) }

// Snake converts text to snake_case.
func (c *Converter) Snake(text string) string { return c.Convert(text, FormatSnake) }

// Kebab converts text to kebab-case.
func (c *Converter) Kebab(text string) string { return c.Convert(text, FormatKebab) }

// Constant converts text to CONSTANT_CASE.
func (c *Converter) Constant(text string) string { return c.Convert(text, FormatConstant) }
