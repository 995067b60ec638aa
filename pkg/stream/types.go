// Package stream provides pull-based line sources for the filter pipeline.
package stream

// StdinName is the conventional source name for standard input.
const StdinName = "-"

// Line is a single line of input text, including its trailing line
// terminator when the source had one (the final line of a stream may lack
// one). Identity is positional: Num is the 1-based position in the
// originating source.
type Line struct {
	// Text is the raw line content, terminator included.
	Text string

	// Num is the 1-based line number in the source.
	Num int
}
