package billy

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/midian/base/fs/core"
)

// Volume adapts a billy.Filesystem to core.Volume.
type Volume struct {
	bfs        billy.Filesystem
	typ        core.FSType
	root       string
	mountCheck func() bool
}

// Option configures volume creation.
type Option func(*Volume)

// WithMountCheck replaces the default mount state rule.
func WithMountCheck(check func() bool) Option {
	return func(v *Volume) {
		v.mountCheck = check
	}
}

// NewLocal creates a disk backed volume rooted at root.
func NewLocal(root string, opts ...Option) *Volume {
	v := &Volume{
		bfs:  osfs.New(root),
		typ:  core.FSTypeLocal,
		root: root,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewMemory creates an empty in-memory volume.
func NewMemory(opts ...Option) *Volume {
	v := &Volume{
		bfs:  memfs.New(),
		typ:  core.FSTypeMemory,
		root: "memory://",
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Type returns the filesystem type.
func (v *Volume) Type() core.FSType {
	return v.typ
}

// Root returns the location the volume is rooted at.
func (v *Volume) Root() string {
	return v.root
}

// Mounted reports whether the storage backing the volume is available.
func (v *Volume) Mounted() bool {
	if v.mountCheck != nil {
		return v.mountCheck()
	}
	if v.typ == core.FSTypeMemory {
		return true
	}
	info, err := v.bfs.Stat(".")
	return err == nil && info.IsDir()
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// Stat returns file metadata for the named file.
func (v *Volume) Stat(name string) (fs.FileInfo, error) {
	return v.bfs.Stat(normalize(name))
}

// ReadFile reads the named file and returns its contents.
func (v *Volume) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(v.bfs, normalize(name))
}

// Exists reports whether the named file or directory exists.
func (v *Volume) Exists(name string) (bool, error) {
	_, err := v.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions.
func (v *Volume) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	name = normalize(name)
	f, err := v.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, name: name}, nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (v *Volume) MkdirAll(path string, perm fs.FileMode) error {
	return v.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (v *Volume) Remove(name string) error {
	return v.bfs.Remove(normalize(name))
}

// Compile-time interface check.
var _ core.Volume = (*Volume)(nil)
