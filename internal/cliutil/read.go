package cliutil

import (
	"io"
	"os"

	"github.com/erraggy/recase/caseerrors"
)

// StdinSource is the input path that selects standard input.
const StdinSource = "-"

// ReadInput reads all of r, failing with an InputError once more than
// limit bytes are available. A non-positive limit disables the check.
func ReadInput(source string, r io.Reader, limit int64) (string, error) {
	reader := r
	if limit > 0 {
		reader = io.LimitReader(r, limit+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", &caseerrors.InputError{Source: source, Message: "reading input", Cause: err}
	}
	if limit > 0 && int64(len(data)) > limit {
		return "", &caseerrors.InputError{
			Source:  source,
			Message: "input too large",
			Size:    int64(len(data)),
			Limit:   limit,
		}
	}
	return string(data), nil
}

// ReadSource reads text from a file path, or from stdin when path is "-".
func ReadSource(path string, stdin io.Reader, limit int64) (string, error) {
	if path == StdinSource {
		return ReadInput("<stdin>", stdin, limit)
	}
	f, err := os.Open(path) //nolint:gosec // G304: path is user-provided input file
	if err != nil {
		return "", &caseerrors.InputError{Source: path, Message: "opening file", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return ReadInput(path, f, limit)
}
