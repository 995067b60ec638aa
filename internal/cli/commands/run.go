package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rawlines/pkg/config"
	"rawlines/pkg/filter"
	"rawlines/pkg/output"
	"rawlines/pkg/stream"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// RunOptions holds command-line options for the root command.
type RunOptions struct {
	Count   bool
	Library bool
	Out     string
	Format  string
	Config  string
}

// Run executes the filter pipeline over each named source. Sources that
// cannot be opened or that end mid-lookahead are reported to stderr and
// counted as failures; the remaining sources are still processed.
func Run(cmd *cobra.Command, args []string, opts *RunOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.Load(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override the config file.
	if opts.Format != "" {
		cfg.Format = config.Format(opts.Format)
	}
	if opts.Library {
		cfg.Library = true
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	names, err := stream.ExpandGlobs(args)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = []string{stream.StdinName}
	}

	out := io.Writer(os.Stdout)
	if opts.Out != "" {
		f, err := os.Create(opts.Out) // #nosec G304 -- user-provided output path is expected
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	report := &output.Report{}
	failed := false

	for _, name := range names {
		src, err := openSource(name)
		if err != nil {
			// The os error already names the file.
			fmt.Fprintf(os.Stderr, "rawlines: %v\n", err)
			failed = true
			continue
		}

		if err := processSource(ctx, src, name, cfg, opts.Count, out, report); err != nil {
			fmt.Fprintf(os.Stderr, "rawlines: %s: %v\n", name, err)
			failed = true
		}
	}

	if opts.Count {
		formatter, err := newFormatter(cfg.Format)
		if err != nil {
			return err
		}
		if err := formatter.Format(ctx, report, out); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	if failed {
		ExitCode = 1
	}

	return nil
}

// openSource opens a named input, with "-" meaning standard input.
func openSource(name string) (stream.Source, error) {
	if name == stream.StdinName {
		return stream.NewReaderSource(stream.StdinName, os.Stdin), nil
	}
	return stream.Open(name)
}

// processSource runs one isolated pipeline over src: classify, optionally
// strip entry points, then either record the count or copy the surviving
// lines to out.
func processSource(ctx context.Context, src stream.Source, name string, cfg *config.Config, count bool, out io.Writer, report *output.Report) error {
	defer func() { _ = src.Close() }()

	var lines stream.Source = filter.NewClassifier(src)
	if cfg.Library {
		lines = filter.NewStripper(lines, cfg.IndentWidth)
	}

	if count {
		n, err := filter.Count(ctx, lines)
		if err != nil {
			return err
		}
		report.Add(name, n)
		return nil
	}

	for {
		line, err := lines.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, line.Text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
}

func newFormatter(format config.Format) (output.Formatter, error) {
	switch format {
	case config.FormatText:
		return output.NewTextFormatter(), nil
	case config.FormatJSON:
		return output.NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
