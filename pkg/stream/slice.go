package stream

import (
	"context"
	"io"
)

// SliceSource implements Source over an in-memory slice of lines. It is
// primarily useful in tests and when a caller already holds the input.
type SliceSource struct {
	lines []string
	pos   int
}

// NewSliceSource creates a line source over the given lines. The strings
// are used as-is; callers should include trailing newlines where the
// original input had them.
func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

// Next returns the next line, or io.EOF once the slice is exhausted.
func (s *SliceSource) Next(ctx context.Context) (Line, error) {
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if s.pos >= len(s.lines) {
		return Line{}, io.EOF
	}

	s.pos++
	return Line{Text: s.lines[s.pos-1], Num: s.pos}, nil
}

// Close is a no-op.
func (s *SliceSource) Close() error {
	return nil
}
