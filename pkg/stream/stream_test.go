package stream

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func drain(t *testing.T, src Source) []Line {
	t.Helper()

	ctx := context.Background()
	var lines []Line
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			return lines
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestFileSource_Next(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")
	content := "x = 1\ny = 2\nz = 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	source, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer source.Close()

	lines := drain(t, source)

	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3", len(lines))
	}
	if lines[0].Text != "x = 1\n" {
		t.Errorf("Text = %q, want %q (terminator must be preserved)", lines[0].Text, "x = 1\n")
	}
	if lines[0].Num != 1 || lines[2].Num != 3 {
		t.Errorf("Line numbers = %d, %d, want 1, 3", lines[0].Num, lines[2].Num)
	}
}

func TestFileSource_FinalLineWithoutNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")
	if err := os.WriteFile(path, []byte("x = 1\ny = 2"), 0644); err != nil {
		t.Fatal(err)
	}

	source, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer source.Close()

	lines := drain(t, source)

	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(lines))
	}
	if lines[1].Text != "y = 2" {
		t.Errorf("Final line = %q, want %q", lines[1].Text, "y = 2")
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.py")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	source, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer source.Close()

	if lines := drain(t, source); len(lines) != 0 {
		t.Errorf("Got %d lines, want 0", len(lines))
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.py")); err == nil {
		t.Error("Open() on missing file should fail")
	}
}

func TestFileSource_EOFIsSticky(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	source, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer source.Close()

	drain(t, source)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := source.Next(ctx); err != io.EOF {
			t.Errorf("Next() after exhaustion = %v, want io.EOF", err)
		}
	}
}

func TestReaderSource_Next(t *testing.T) {
	source := NewReaderSource("-", strings.NewReader("a\nb\n"))
	defer source.Close()

	lines := drain(t, source)

	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(lines))
	}
	if lines[0].Text != "a\n" || lines[1].Text != "b\n" {
		t.Errorf("Lines = %q, %q, want %q, %q", lines[0].Text, lines[1].Text, "a\n", "b\n")
	}
}

func TestReaderSource_ContextCancelled(t *testing.T) {
	source := NewReaderSource("-", strings.NewReader("a\n"))
	defer source.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := source.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestSliceSource_Next(t *testing.T) {
	source := NewSliceSource("a\n", "b\n", "c\n")
	defer source.Close()

	lines := drain(t, source)

	if len(lines) != 3 {
		t.Fatalf("Got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if line.Num != i+1 {
			t.Errorf("Num = %d, want %d", line.Num, i+1)
		}
	}
}

func TestSliceSource_Empty(t *testing.T) {
	source := NewSliceSource()
	defer source.Close()

	if _, err := source.Next(context.Background()); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}
