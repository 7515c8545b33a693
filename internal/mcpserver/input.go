package mcpserver

import (
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/internal/rules"
)

// rulesInput carries the per-call capitalization rules shared by the
// conversion tools.
type rulesInput struct {
	PreserveAcronyms *bool    `json:"preserve_acronyms,omitempty" jsonschema:"Keep all-uppercase words like NASA unchanged in title and sentence case (default true)"`
	AlwaysCapitalize []string `json:"always_capitalize,omitempty" jsonschema:"Words always written with the given casing\\, e.g. iPhone"`
	NeverCapitalize  []string `json:"never_capitalize,omitempty"  jsonschema:"Words never capitalized in title and sentence case"`
	Language         string   `json:"language,omitempty"          jsonschema:"BCP 47 language tag for case mapping\\, e.g. tr for Turkish"`
}

// buildOptions layers the server defaults, the rules file and the
// per-call rules, in that order.
func buildOptions(in rulesInput) ([]casing.Option, error) {
	opts := []casing.Option{casing.WithPreserveAcronyms(cfg.PreserveAcronyms)}
	opts = append(opts, baseRules...)

	f := rules.File{
		PreserveAcronyms: in.PreserveAcronyms,
		AlwaysCapitalize: in.AlwaysCapitalize,
		NeverCapitalize:  in.NeverCapitalize,
		Language:         in.Language,
	}
	callOpts, err := f.Options()
	if err != nil {
		return nil, err
	}
	return append(opts, callOpts...), nil
}

// checkText enforces the configured input size limit.
func checkText(text string) error {
	if int64(len(text)) > cfg.MaxInputSize {
		return &caseerrors.InputError{
			Source:  "text",
			Message: "input too large",
			Size:    int64(len(text)),
			Limit:   cfg.MaxInputSize,
		}
	}
	return nil
}
