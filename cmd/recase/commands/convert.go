package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/caseerrors"
	"github.com/erraggy/recase/casing"
	"github.com/erraggy/recase/internal/cliutil"
	"github.com/erraggy/recase/internal/options"
	"github.com/erraggy/recase/internal/rules"
	"golang.org/x/sync/errgroup"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	To         string
	All        bool
	Inputs     stringList
	Rules      string
	NoAcronyms bool
	Always     stringList
	Never      stringList
	Lang       string
	Format     string
	Output     string
	Jobs       int
	Quiet      bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.To, "t", "", "target case format (see 'recase formats')")
	fs.StringVar(&flags.To, "to", "", "target case format (see 'recase formats')")
	fs.BoolVar(&flags.All, "all", false, "convert to every format")
	fs.Var(&flags.Inputs, "i", "input file, '-' for stdin (repeatable)")
	fs.Var(&flags.Inputs, "input", "input file, '-' for stdin (repeatable)")
	fs.StringVar(&flags.Rules, "r", "", "rules file (YAML or JSON)")
	fs.StringVar(&flags.Rules, "rules", "", "rules file (YAML or JSON)")
	fs.BoolVar(&flags.NoAcronyms, "no-acronyms", false, "do not preserve all-uppercase words")
	fs.Var(&flags.Always, "always", "word that is always written with this casing (repeatable)")
	fs.Var(&flags.Never, "never", "word that is never capitalized (repeatable)")
	fs.StringVar(&flags.Lang, "lang", "", "BCP 47 language tag for case mapping (e.g. tr)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.IntVar(&flags.Jobs, "j", 0, "files converted in parallel (default: GOMAXPROCS)")
	fs.IntVar(&flags.Jobs, "jobs", 0, "files converted in parallel (default: GOMAXPROCS)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the result, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: recase convert [flags] <text...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert text between case formats.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nInput (exactly one):\n")
		cliutil.Writef(fs.Output(), "  - Positional arguments, joined with single spaces\n")
		cliutil.Writef(fs.Output(), "  - One or more --input files\n")
		cliutil.Writef(fs.Output(), "  - '-' to read standard input\n")
		cliutil.Writef(fs.Output(), "\nRules File:\n")
		cliutil.Writef(fs.Output(), "  preserve_acronyms: true\n")
		cliutil.Writef(fs.Output(), "  always_capitalize: [iPhone, GitHub]\n")
		cliutil.Writef(fs.Output(), "  never_capitalize: [android]\n")
		cliutil.Writef(fs.Output(), "  language: en\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  recase convert -t title \"the lord of the rings\"\n")
		cliutil.Writef(fs.Output(), "  recase convert -t snake -i fields.txt -o fields_snake.txt\n")
		cliutil.Writef(fs.Output(), "  recase convert --all -f yaml \"user profile id\"\n")
		cliutil.Writef(fs.Output(), "  cat notes.txt | recase convert -q -t sentence -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Line breaks (\\n and \\r\\n) are always preserved\n")
		cliutil.Writef(fs.Output(), "  - --always/--never are applied after the rules file\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion succeeded\n")
		cliutil.Writef(fs.Output(), "  1    Invalid flags or unreadable input\n")
	}

	return fs, flags
}

// ConvertedDocument is the structured output for one input.
type ConvertedDocument struct {
	Source  string          `json:"source"            yaml:"source"`
	Format  casing.Format   `json:"format,omitempty"  yaml:"format,omitempty"`
	Text    string          `json:"text,omitempty"    yaml:"text,omitempty"`
	Results []casing.Result `json:"results,omitempty" yaml:"results,omitempty"`
	Stats   casing.Stats    `json:"stats"             yaml:"stats"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

func runConvert(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
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

	format, err := resolveTargetFormat(flags)
	if err != nil {
		fs.Usage()
		return err
	}

	readStdin := fs.NArg() == 1 && fs.Arg(0) == StdinFilePath
	source, err := options.ValidateSingleInputSource(
		options.InputSource{Name: "text arguments", Set: fs.NArg() > 0 && !readStdin},
		options.InputSource{Name: "--input", Set: len(flags.Inputs) > 0},
		options.InputSource{Name: "'-' (stdin)", Set: readStdin},
	)
	if err != nil {
		return err
	}

	// Concurrent readers would race on the one stdin stream.
	if countStdin(flags.Inputs) > 1 {
		return &caseerrors.ConfigError{
			Option:  "input",
			Value:   StdinFilePath,
			Message: "standard input may only be given once",
		}
	}

	opts, err := buildConvertOptions(flags)
	if err != nil {
		return err
	}
	converter := casing.New(opts...)

	var paths []string
	switch source {
	case "--input":
		paths = flags.Inputs
	case "'-' (stdin)":
		paths = []string{StdinFilePath}
	}

	startTime := time.Now()
	var docs []ConvertedDocument
	if len(paths) == 0 {
		text := strings.Join(fs.Args(), " ")
		docs = []ConvertedDocument{convertDocument(converter, "<args>", text, format, flags.All)}
	} else {
		docs, err = convertFiles(ctx, converter, paths, stdin, format, flags)
		if err != nil {
			return err
		}
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		printConvertDiagnostics(stderr, docs, format, flags.All, totalTime)
	}

	out, err := renderConverted(docs, flags, len(paths) == 0)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, paths); err != nil {
			return err
		}
		if err := os.WriteFile(flags.Output, out, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.Output)
		}
		return nil
	}

	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("writing result to stdout: %w", err)
	}
	return nil
}

func countStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == StdinFilePath {
			n++
		}
	}
	return n
}

func resolveTargetFormat(flags *ConvertFlags) (casing.Format, error) {
	switch {
	case flags.All && flags.To != "":
		return "", fmt.Errorf("--to and --all cannot be used together")
	case flags.All:
		return "", nil
	case flags.To == "":
		return "", fmt.Errorf("convert requires --to <format> or --all")
	default:
		return casing.ParseFormat(flags.To)
	}
}

// buildConvertOptions layers the rules file and then the individual flags.
func buildConvertOptions(flags *ConvertFlags) ([]casing.Option, error) {
	var opts []casing.Option

	if flags.Rules != "" {
		f, err := rules.Load(flags.Rules)
		if err != nil {
			return nil, err
		}
		fileOpts, err := f.Options()
		if err != nil {
			return nil, fmt.Errorf("rules file %s: %w", flags.Rules, err)
		}
		opts = append(opts, fileOpts...)
	}

	if flags.NoAcronyms {
		opts = append(opts, casing.WithPreserveAcronyms(false))
	}
	if len(flags.Always) > 0 {
		opts = append(opts, casing.WithAlwaysCapitalize(flags.Always...))
	}
	if len(flags.Never) > 0 {
		opts = append(opts, casing.WithNeverCapitalize(flags.Never...))
	}
	if flags.Lang != "" {
		tag, err := rules.ParseLanguage(flags.Lang)
		if err != nil {
			return nil, err
		}
		opts = append(opts, casing.WithLanguage(tag))
	}
	return opts, nil
}

func convertDocument(c *casing.Converter, source, text string, format casing.Format, all bool) ConvertedDocument {
	doc := ConvertedDocument{
		Source: source,
		Stats:  casing.Analyze(text),
	}
	if all {
		doc.Results = c.ConvertAll(text)
	} else {
		doc.Format = format
		doc.Text = c.Convert(text, format)
	}
	return doc
}

// convertFiles reads and converts every path concurrently.
// Results keep the order of paths.
func convertFiles(ctx context.Context, c *casing.Converter, paths []string, stdin io.Reader, format casing.Format, flags *ConvertFlags) ([]ConvertedDocument, error) {
	jobs := flags.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	docs := make([]ConvertedDocument, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			text, err := cliutil.ReadSource(path, stdin, 0)
			if err != nil {
				return err
			}
			// Each index is written by exactly one goroutine.
			docs[i] = convertDocument(c, FormatSourcePath(path), text, format, flags.All)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// renderConverted produces the bytes written to stdout or the output file.
// fromArgs adds a trailing newline to text output so the shell prompt starts
// on its own line; file and stdin content is written exactly as converted.
func renderConverted(docs []ConvertedDocument, flags *ConvertFlags, fromArgs bool) ([]byte, error) {
	if flags.Format != FormatText {
		if len(docs) == 1 {
			return MarshalStructured(docs[0], flags.Format)
		}
		return MarshalStructured(docs, flags.Format)
	}

	var b strings.Builder
	for i, doc := range docs {
		if len(docs) > 1 {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "==> %s <==\n", doc.Source)
		}

		if flags.All {
			for _, r := range doc.Results {
				fmt.Fprintf(&b, "%-14s %s\n", r.Format.Description()+":", r.Text)
			}
			continue
		}

		b.WriteString(doc.Text)
		if (fromArgs || len(docs) > 1) && !strings.HasSuffix(doc.Text, "\n") {
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

// printConvertDiagnostics writes the human-readable summary to stderr
// so stdout stays clean for pipelining.
func printConvertDiagnostics(w io.Writer, docs []ConvertedDocument, format casing.Format, all bool, totalTime time.Duration) {
	cliutil.Banner(w, "Case Converter")
	cliutil.Writef(w, "recase version: %s\n", recase.Version())
	if all {
		cliutil.Writef(w, "Target: all formats\n")
	} else {
		cliutil.Writef(w, "Target: %s (%s)\n", format, format.Description())
	}
	for _, doc := range docs {
		cliutil.Writef(w, "Source: %s\n", doc.Source)
		cliutil.Writef(w, "  Characters: %d\n", doc.Stats.Characters)
		cliutil.Writef(w, "  Words: %d\n", doc.Stats.Words)
		cliutil.Writef(w, "  Lines: %d\n", doc.Stats.Lines)
		cliutil.Writef(w, "  Sentences: %d\n", doc.Stats.Sentences)
	}
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)
}
