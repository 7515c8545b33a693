package casing

import "golang.org/x/text/language"

// Option configures a Converter.
type Option func(*convertConfig)

// convertConfig holds the options collected before a Converter is built.
type convertConfig struct {
	preserveAcronyms bool
	alwaysCapitalize []string
	neverCapitalize  []string
	lang             language.Tag
}

func applyOptions(opts ...Option) *convertConfig {
	cfg := &convertConfig{
		preserveAcronyms: true,
		lang:             language.Und,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithPreserveAcronyms controls whether all-uppercase words such as "NASA"
// are left untouched by title and sentence case. Enabled by default.
func WithPreserveAcronyms(preserve bool) Option {
	return func(cfg *convertConfig) {
		cfg.preserveAcronyms = preserve
	}
}

// WithAlwaysCapitalize adds words that are always written with the casing
// given here, e.g. "iPhone". Repeated calls append.
func WithAlwaysCapitalize(words ...string) Option {
	return func(cfg *convertConfig) {
		cfg.alwaysCapitalize = append(cfg.alwaysCapitalize, words...)
	}
}

// WithNeverCapitalize adds words that title and sentence case never
// capitalize. The casing given here is used verbatim. Repeated calls append.
func WithNeverCapitalize(words ...string) Option {
	return func(cfg *convertConfig) {
		cfg.neverCapitalize = append(cfg.neverCapitalize, words...)
	}
}

// WithLanguage sets the language whose case mapping rules apply,
// e.g. language.Turkish maps "i" to "İ". Defaults to language.Und.
func WithLanguage(tag language.Tag) Option {
	return func(cfg *convertConfig) {
		cfg.lang = tag
	}
}
