// Package rules loads capitalization rule files.
//
// A rule file is YAML (JSON works too, being a YAML subset):
//
//	preserve_acronyms: true
//	always_capitalize: [iPhone, GitHub]
//	never_capitalize: [android]
//	language: en
//
// Every key is optional. Unknown keys are rejected so typos do not silently
// disable a rule.
package rules

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/casing"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/language"
)

// File is the decoded form of a rule file.
type File struct {
	PreserveAcronyms *bool    `yaml:"preserve_acronyms,omitempty" json:"preserve_acronyms,omitempty"`
	AlwaysCapitalize []string `yaml:"always_capitalize,omitempty" json:"always_capitalize,omitempty"`
	NeverCapitalize  []string `yaml:"never_capitalize,omitempty"  json:"never_capitalize,omitempty"`
	Language         string   `yaml:"language,omitempty"          json:"language,omitempty"`
}

var knownKeys = []string{"always_capitalize", "language", "never_capitalize", "preserve_acronyms"}

// Load reads and parses the rule file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-provided rules file
	if err != nil {
		return nil, &caseerrors.ConfigError{
			Option:  "rules",
			Value:   path,
			Message: "reading rules file",
			Cause:   err,
		}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a rule file from data. Empty data yields an empty File.
func Parse(data []byte) (*File, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &caseerrors.ConfigError{Option: "rules", Message: "invalid YAML", Cause: err}
	}

	var unknown []string
	for k := range raw {
		if !slices.Contains(knownKeys, k) {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &caseerrors.ConfigError{
			Option:  "rules",
			Value:   strings.Join(unknown, ", "),
			Message: fmt.Sprintf("unknown keys (valid keys: %s)", strings.Join(knownKeys, ", ")),
		}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &caseerrors.ConfigError{Option: "rules", Message: "invalid rule values", Cause: err}
	}
	return &f, nil
}

// Options converts the file into casing options.
// An invalid language tag is reported as a ConfigError.
func (f *File) Options() ([]casing.Option, error) {
	if f == nil {
		return nil, nil
	}

	var opts []casing.Option
	if f.PreserveAcronyms != nil {
		opts = append(opts, casing.WithPreserveAcronyms(*f.PreserveAcronyms))
	}
	if len(f.AlwaysCapitalize) > 0 {
		opts = append(opts, casing.WithAlwaysCapitalize(f.AlwaysCapitalize...))
	}
	if len(f.NeverCapitalize) > 0 {
		opts = append(opts, casing.WithNeverCapitalize(f.NeverCapitalize...))
	}
	if f.Language != "" {
		tag, err := ParseLanguage(f.Language)
		if err != nil {
			return nil, err
		}
		opts = append(opts, casing.WithLanguage(tag))
	}
	return opts, nil
}

// ParseLanguage parses a BCP 47 language tag such as "en" or "tr-TR".
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, &caseerrors.ConfigError{
			Option:  "language",
			Value:   s,
			Message: "not a valid BCP 47 language tag",
			Cause:   err,
		}
	}
	return tag, nil
}
