package main

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/recase"
	"github.com/erraggy/recase/cmd/recase/commands"
)

// commandNames lists the subcommands offered as "did you mean" suggestions.
var commandNames = []string{"convert", "formats", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		printVersion(os.Stdout)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "formats":
		err = commands.HandleFormats(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// printVersion writes the full build metadata.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "recase %s\n\n%s", recase.Version(), recase.BuildInfo())
}

func printUsage() {
	fmt.Println(`recase - Text Case Conversion Tools

Usage:
  recase <command> [options]

Commands:
  convert     Convert text between case formats
  formats     List the supported case formats
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  recase convert -t title "the lord of the rings"
  recase convert -t snake -i fields.txt
  recase convert --all "user profile id"
  recase formats -f yaml

Run 'recase <command> --help' for more information on a command.`)
}
