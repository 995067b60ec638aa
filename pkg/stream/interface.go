package stream

import (
	"context"
	"io"
)

// Source provides a single-pass iterator over lines of text.
// Implementations must be safe for sequential access (not concurrent).
type Source interface {
	// Next returns the next line.
	// Returns io.EOF when no more lines are available. Once a line has been
	// returned it cannot be re-read; consumers needing lookahead must hold
	// pulled lines themselves.
	Next(ctx context.Context) (Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// Ensure io.EOF is available for callers
var _ = io.EOF
