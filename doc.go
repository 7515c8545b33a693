// Package recase converts text between case formats.
//
// recase offers a case conversion engine, a command line tool and an MCP
// server. The engine lives in the casing package; everything else is a thin
// surface over it.
//
// # Overview
//
// Nine formats are supported:
//
//   - UPPER CASE and lower case
//   - Title Case, with minor words ("a", "of", "the", ...) kept lowercase
//   - Sentence case, capitalizing the first letter of every sentence
//   - camelCase, PascalCase, snake_case, kebab-case and CONSTANT_CASE
//
// Acronyms such as "NASA" are preserved by title and sentence case, and
// callers can supply words that must always ("iPhone") or never ("android")
// be capitalized. Multi-line text is converted line by line and every "\n"
// or "\r\n" is kept exactly where it was.
//
// # Installation
//
//	go get github.com/erraggy/recase
//
// # Quick Start
//
//	import "github.com/erraggy/recase/casing"
//
//	fmt.Println(casing.ToTitleCase("NASA launched a rocket"))
//	// NASA Launched a Rocket
//
//	c := casing.New(casing.WithAlwaysCapitalize("iPhone"))
//	fmt.Println(c.Convert("the new iphone", casing.FormatTitle))
//	// The New iPhone
//
// # Command Line
//
//	recase convert -t snake "User Profile ID"
//	recase convert --all -f yaml -i notes.txt
//	cat README.md | recase convert -t sentence -
//	recase formats
//	recase mcp
//
// # Related Packages
//
//   - [github.com/erraggy/recase/casing] - The conversion engine
//   - [github.com/erraggy/recase/caseerrors] - Structured errors for option and input handling
package recase
