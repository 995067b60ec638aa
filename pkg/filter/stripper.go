package filter

import (
	"context"
	"io"
	"regexp"
	"strings"

	"rawlines/pkg/stream"
)

// entryPoint matches the conventional guard that runs code only when a file
// is executed directly, with either quote style.
var entryPoint = regexp.MustCompile(`^if __name__ == ["']__main__["']:`)

// DefaultIndentWidth is the number of spaces per indentation level assumed
// when discarding an entry-point body.
const DefaultIndentWidth = 4

// Stripper removes entry-point guard lines and their indented bodies from a
// line source, turning a script into library-only code.
//
// Nested guards are tracked by a level counter, but the discard check only
// ever compares against the current level, so nesting is handled best
// effort. Known limitation, kept for compatibility.
type Stripper struct {
	src     stream.Source
	indent  string
	level   int
	pending *stream.Line // first line past a stripped body, awaiting re-evaluation
}

// NewStripper wraps src in the entry-point stripper. indentWidth is the
// number of spaces per indentation level; values below 1 fall back to
// DefaultIndentWidth.
func NewStripper(src stream.Source, indentWidth int) *Stripper {
	if indentWidth < 1 {
		indentWidth = DefaultIndentWidth
	}
	return &Stripper{src: src, indent: strings.Repeat(" ", indentWidth)}
}

// Next returns the next line outside any entry-point block.
// Returns io.EOF once the upstream source is exhausted.
func (s *Stripper) Next(ctx context.Context) (stream.Line, error) {
	for {
		var line stream.Line
		if s.pending != nil {
			line = *s.pending
			s.pending = nil
		} else {
			var err error
			line, err = s.src.Next(ctx)
			if err != nil {
				return stream.Line{}, err
			}
		}

		if !entryPoint.MatchString(strings.TrimSpace(line.Text)) {
			return line, nil
		}

		if err := s.skipBody(ctx); err != nil {
			return stream.Line{}, err
		}
	}
}

// skipBody discards the guard's body: every line indented at least
// level*indent spaces, plus interior blank lines. The first line that does
// not qualify is held back for re-evaluation by Next, since it may itself
// be another guard. A body running to end of stream is not an error.
func (s *Stripper) skipBody(ctx context.Context) error {
	s.level++
	defer func() { s.level-- }()

	prefix := strings.Repeat(s.indent, s.level)
	for {
		line, err := s.src.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.HasPrefix(line.Text, prefix) || strings.TrimSpace(line.Text) == "" {
			continue
		}

		s.pending = &line
		return nil
	}
}

// Close closes the upstream source.
func (s *Stripper) Close() error {
	return s.src.Close()
}
