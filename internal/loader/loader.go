// Package loader handles ROM file loading operations.
package loader

import (
	"io"
	"os"

	"github.com/retroenv/rom2msx/internal/layout"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete ROM file. Failures are returned as *layout.IOError.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &layout.IOError{Op: "opening file", Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	return l.LoadFrom(file, path)
}

// LoadFrom reads a ROM from a reader, the name is used for error reporting.
func (l *Loader) LoadFrom(reader io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &layout.IOError{Op: "reading file", Path: name, Err: err}
	}
	return data, nil
}
