package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal FSType = iota + 1
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem interface combining all core operations.
type FS interface {
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Stat returns file metadata.
	// If there is an error, it will be of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents.
	// A successful call returns err == nil, not err == EOF.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error indicates the existence
	// could not be determined, not that the file doesn't exist.
	Exists(name string) (bool, error)
}

// WriteFS defines write operations.
type WriteFS interface {
	// OpenFile opens a file with the specified flags and permissions.
	// The flags are a bitmask (O_WRONLY, O_RDWR, O_CREATE, O_APPEND, O_TRUNC, etc.).
	// If the file is created, the permission mode perm is used (before umask).
	//
	// The returned file must be closed when no longer needed.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// MkdirAll creates a directory named path, along with any necessary parents.
	// If path is already a directory, MkdirAll does nothing and returns nil.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines file removal.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	// If the path does not exist, Remove returns an error (typically ErrNotExist).
	Remove(name string) error
}

// File represents an open, writable file handle.
type File interface {
	io.Writer
	io.Closer

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// Volume is an FS rooted at application storage.
type Volume interface {
	FS

	// Root returns the location the volume is rooted at, for diagnostics.
	Root() string

	// Mounted reports whether the storage backing the volume is available.
	// Writers must treat an unmounted volume as absent and skip their work.
	Mounted() bool
}
