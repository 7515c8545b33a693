// Package options provides shared validation for command and tool inputs.
package options

import "github.com/erraggy/recase/caseerrors"

// InputSource names one way of supplying text and whether it was used.
type InputSource struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one input source is set and
// returns its name. The error lists every source that was set (or all
// candidates when none was).
func ValidateSingleInputSource(sources ...InputSource) (string, error) {
	var set []string
	var all []string
	for _, src := range sources {
		all = append(all, src.Name)
		if src.Set {
			set = append(set, src.Name)
		}
	}

	switch len(set) {
	case 1:
		return set[0], nil
	case 0:
		return "", &caseerrors.ConfigError{
			Option:  "input",
			Message: "no input provided: use one of " + joinNames(all),
		}
	default:
		return "", &caseerrors.ConfigError{
			Option:  "input",
			Value:   joinNames(set),
			Message: "only one input source may be used",
		}
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		switch {
		case i == 0:
		case i == len(names)-1:
			out += " or "
		default:
			out += ", "
		}
		out += n
	}
	return out
}
