package billy

import (
	"github.com/go-git/go-billy/v5"
	"github.com/midian/base/fs/core"
)

// File wraps billy.File to implement core.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation.
type File struct {
	file billy.File
	name string
}

// Write delegates directly to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close delegates directly to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Compile-time interface check.
var _ core.File = (*File)(nil)
