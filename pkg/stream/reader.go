package stream

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ReaderSource implements Source over an arbitrary reader, typically
// standard input. Lines keep their trailing newline; the final line of a
// reader that does not end in a newline is returned without one.
type ReaderSource struct {
	name   string
	reader *bufio.Reader
	num    int
	done   bool
}

// NewReaderSource creates a line source reading from r. The name is used
// only in error messages.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, reader: bufio.NewReader(r)}
}

// Next returns the next line from the reader.
// Returns io.EOF when the reader is exhausted.
func (s *ReaderSource) Next(ctx context.Context) (Line, error) {
	// Check for context cancellation
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if s.done {
		return Line{}, io.EOF
	}

	text, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.done = true
		if text == "" {
			return Line{}, io.EOF
		}
		// Final line without a terminator.
		s.num++
		return Line{Text: text, Num: s.num}, nil
	}
	if err != nil {
		return Line{}, fmt.Errorf("reading %s: %w", s.name, err)
	}

	s.num++
	return Line{Text: text, Num: s.num}, nil
}

// Close is a no-op; the caller owns the underlying reader.
func (s *ReaderSource) Close() error {
	return nil
}
