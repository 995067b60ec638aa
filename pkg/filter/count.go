package filter

import (
	"context"
	"io"

	"rawlines/pkg/stream"
)

// Count fully drains src and returns the number of lines it produced.
// Content is never inspected. Any error other than io.EOF aborts the count
// and is returned alongside the lines seen so far.
func Count(ctx context.Context, src stream.Source) (int, error) {
	n := 0
	for {
		_, err := src.Next(ctx)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
