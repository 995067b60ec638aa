package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter renders one "<count> <source>" line per input, the tool's
// historical output shape.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	for _, s := range report.Sources {
		line := strings.TrimSpace(fmt.Sprintf("%d %s", s.Lines, s.Name))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
