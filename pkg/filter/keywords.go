// Package filter implements the executable-line pipeline: a classifier that
// drops blank lines, comments, and definition docstrings; an entry-point
// stripper for library mode; and a line counter. Each transform is a
// stream.Source, so stages compose by wrapping.
package filter

import "strings"

// Statements are the keywords that open an indented block.
var Statements = []string{
	"class",
	"def",
	"elif",
	"else",
	"for",
	"if",
	"while",
}

// definitions is the subset of Statements that introduce a class or function
// body, which may begin with a docstring.
var definitions = []string{"class", "def"}

// delimiters are the recognized triple-quote markers. The opening and
// closing marker on a single physical line must be the same to count as a
// self-closed block quote.
var delimiters = []string{`"""`, "'''"}

// IsBlockStatement reports whether the trimmed line begins with a keyword
// that opens an indented block.
func IsBlockStatement(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, stmt := range Statements {
		if strings.HasPrefix(trimmed, stmt) {
			return true
		}
	}
	return false
}

// IsDefinition reports whether the trimmed line begins a class or function
// definition.
func IsDefinition(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, def := range definitions {
		if strings.HasPrefix(trimmed, def) {
			return true
		}
	}
	return false
}

// blockQuoteDelimiter returns the triple-quote marker the trimmed line
// starts with, or "" when the line does not open a block quote.
func blockQuoteDelimiter(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, d := range delimiters {
		if strings.HasPrefix(trimmed, d) {
			return d
		}
	}
	return ""
}
