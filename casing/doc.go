// Package casing converts text between case formats.
//
// Nine formats are supported: UPPER, lower, Title Case, Sentence case,
// camelCase, PascalCase, snake_case, kebab-case and CONSTANT_CASE. Prose
// formats (upper, lower, title, sentence) keep every whitespace run exactly
// as it was; identifier formats (camel through constant) join the words of
// each line into a single identifier. All formats treat line breaks the same
// way: each line is converted on its own and "\n" or "\r\n" separators are
// passed through untouched.
//
// # Quick Start
//
// Convert with the package-level functions:
//
//	casing.ToTitleCase("NASA launched a rocket")
//	// "NASA Launched a Rocket"
//
//	casing.Convert("user profile id", casing.FormatSnake)
//	// "user_profile_id"
//
// Or build a reusable Converter when the same rules apply to many inputs:
//
//	c := casing.New(
//		casing.WithAlwaysCapitalize("iPhone", "GitHub"),
//		casing.WithNeverCapitalize("android"),
//	)
//	c.Title("the iphone and android") // "The iPhone and android"
//
// # Capitalization Rules
//
// Title and sentence case honor three rules, checked in this order:
//
//   - Acronyms (two or more characters, all uppercase, at least one letter)
//     are kept as written unless WithPreserveAcronyms(false) is given.
//   - Words listed with WithAlwaysCapitalize are written with the casing of
//     the list entry. Matching is case-insensitive and the first entry wins.
//   - Words listed with WithNeverCapitalize are written the same way.
//
// Title case then forces the first and last word of a line to be
// capitalized and lowercases minor words ("a", "of", "the", ...) everywhere
// else. Sentence case lowercases everything else and uppercases the first
// letter of every sentence. That uppercasing happens after the list rules,
// so a never-capitalize entry such as "iPhone" that starts a sentence comes
// out as "IPhone".
//
// # Errors
//
// Conversion never fails. Unknown formats return the input unchanged.
// ParseFormat is the only function that reports an error, for callers
// turning user input into a Format.
package casing
