package stream

import (
	"os"
)

// FileSource implements Source for reading lines from a single file.
type FileSource struct {
	*ReaderSource
	file *os.File
}

// Open opens the named file as a line source.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		// os.Open's error already names the file and operation.
		return nil, err
	}

	return &FileSource{
		ReaderSource: NewReaderSource(path, f),
		file:         f,
	}, nil
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		return err
	}
	return nil
}
