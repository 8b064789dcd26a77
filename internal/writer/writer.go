// Package writer implements writing of flash images.
package writer

import (
	"io"
	"os"

	"github.com/retroenv/rom2msx/internal/layout"
)

// Writer writes flash images to files.
type Writer struct {
	perm os.FileMode
}

// New creates a new image writer.
func New() *Writer {
	return &Writer{
		perm: 0o644,
	}
}

// Write creates or truncates the file and writes the complete image.
// Failures are returned as *layout.IOError.
func (w *Writer) Write(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, w.perm)
	if err != nil {
		return &layout.IOError{Op: "creating file", Path: path, Err: err}
	}

	if err := w.WriteTo(file, path, data); err != nil {
		_ = file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return &layout.IOError{Op: "closing file", Path: path, Err: err}
	}
	return nil
}

// WriteTo writes the complete image to a writer, the name is used for error reporting.
func (w *Writer) WriteTo(writer io.Writer, name string, data []byte) error {
	n, err := writer.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &layout.IOError{Op: "writing file", Path: name, Err: err}
	}
	return nil
}
