package commands

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/internal/cliutil"
)

// formatsSample is converted into every format for the listing.
const formatsSample = "the quick brown fox"

// FormatsFlags contains flags for the formats command
type FormatsFlags struct {
	Format string
}

// FormatEntry describes one case format in the listing.
type FormatEntry struct {
	Name        casing.Format `json:"name"        yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Example     string        `json:"example"     yaml:"example"`
}

// SetupFormatsFlags creates and configures a FlagSet for the formats command.
func SetupFormatsFlags() (*flag.FlagSet, *FormatsFlags) {
	fs := flag.NewFlagSet("formats", flag.ContinueOnError)
	flags := &FormatsFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: recase formats [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the supported case formats with an example of each.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  recase formats\n")
		cliutil.Writef(fs.Output(), "  recase formats -f json\n")
	}

	return fs, flags
}

// HandleFormats executes the formats command
func HandleFormats(args []string) error {
	return runFormats(args, os.Stdout, os.Stderr)
}

func runFormats(args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupFormatsFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	entries := ListFormats()
	if flags.Format != FormatText {
		return OutputStructured(stdout, entries, flags.Format)
	}

	cliutil.Writef(stdout, "%-10s %-14s %s\n", "NAME", "STYLE", "EXAMPLE")
	for _, e := range entries {
		cliutil.Writef(stdout, "%-10s %-14s %s\n", e.Name, e.Description, e.Example)
	}
	return nil
}

// ListFormats returns every format in canonical order with the sample
// phrase converted into it.
func ListFormats() []FormatEntry {
	results := casing.New().ConvertAll(formatsSample)
	entries := make([]FormatEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, FormatEntry{
			Name:        r.Format,
			Description: r.Format.Description(),
			Example:     r.Text,
		})
	}
	return entries
}
