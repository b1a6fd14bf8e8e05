package metadata

import (
	"io"
	"os"
)

// Source opens image files for reading.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

// OSSource reads images from the local filesystem.
type OSSource struct{}

// Open opens the named file for reading.
func (OSSource) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
