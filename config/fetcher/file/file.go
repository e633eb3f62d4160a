package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxFileSize is the largest file a Fetcher will read.
const MaxFileSize = 16 << 20

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrFileTooLarge is returned when the file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file too large")

// Fetcher implements config.DataFetcher for a file on disk.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads the file at fpath. Returning a
// constructor lets an Fx container decide when the read happens.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		if stat.Size() > MaxFileSize {
			return nil, fmt.Errorf("path %q is %d bytes: %w", cleanPath, stat.Size(), ErrFileTooLarge)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{path: cleanPath, data: data}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the bytes read at construction.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
