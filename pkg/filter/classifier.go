package filter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"rawlines/pkg/stream"
)

// commentMarker introduces a full-line comment.
const commentMarker = "#"

// Classifier filters a line source down to its executable lines. Blank and
// comment-only lines are dropped, and a docstring immediately following a
// class or def header is absorbed in full (the header itself is kept).
//
// The classification is heuristic: keyword prefixes after trimming and
// triple-quote counting, not a tokenizer. Escaped quotes inside docstrings
// and similar edge cases are out of scope.
//
// Classifier is single pass and stateful; it must not be shared across
// goroutines.
type Classifier struct {
	src     stream.Source
	pending *stream.Line // looked-ahead line awaiting emission
}

// NewClassifier wraps src in the executable-line classifier.
func NewClassifier(src stream.Source) *Classifier {
	return &Classifier{src: src}
}

// Next returns the next executable line, preserving upstream order.
// Returns io.EOF once the upstream source is exhausted. If the source runs
// dry in the middle of a lookahead (a definition header with no body, or a
// docstring that never closes), Next returns an error wrapping
// io.ErrUnexpectedEOF.
func (c *Classifier) Next(ctx context.Context) (stream.Line, error) {
	if c.pending != nil {
		line := *c.pending
		c.pending = nil
		return line, nil
	}

	for {
		line, err := c.src.Next(ctx)
		if err != nil {
			return stream.Line{}, err
		}

		trimmed := strings.TrimSpace(line.Text)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
			continue
		}

		if !IsDefinition(trimmed) {
			return line, nil
		}

		// A definition header is assumed to always have a body line.
		successor, err := c.src.Next(ctx)
		if err != nil {
			return stream.Line{}, exhausted(err, "definition header at line %d has no body", line.Num)
		}

		marker := blockQuoteDelimiter(successor.Text)
		if marker == "" {
			// Ordinary body line: emit the header now, the successor on the
			// next pull.
			c.pending = &successor
			return line, nil
		}

		// The marker appearing exactly twice means a one-line, self-closed
		// docstring; the successor is absorbed as-is. Anything else spans
		// multiple lines.
		if strings.Count(successor.Text, marker) != 2 {
			if err := c.skipBlockQuote(ctx, marker, line.Num); err != nil {
				return stream.Line{}, err
			}
		}
		return line, nil
	}
}

// skipBlockQuote discards lines up to and including the first one containing
// marker. The scan is unbounded: an unterminated docstring drains the source
// and surfaces as premature exhaustion.
func (c *Classifier) skipBlockQuote(ctx context.Context, marker string, headerNum int) error {
	for {
		line, err := c.src.Next(ctx)
		if err != nil {
			return exhausted(err, "docstring opened after line %d never closes", headerNum)
		}
		if strings.Contains(line.Text, marker) {
			return nil
		}
	}
}

// Close closes the upstream source.
func (c *Classifier) Close() error {
	return c.src.Close()
}

// exhausted converts an upstream error seen during a lookahead into a
// premature-exhaustion error: natural io.EOF is promoted to
// io.ErrUnexpectedEOF with context, anything else passes through unchanged.
func exhausted(err error, format string, args ...any) error {
	if err == io.EOF {
		return fmt.Errorf(format+": %w", append(args, io.ErrUnexpectedEOF)...)
	}
	return err
}
