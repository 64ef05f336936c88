package filesystem

import (
	"io/fs"
	"testing/fstest"
)

// TestFileSystem extends fstest.MapFS with the write operations of
// FullFileSystem, so unit tests can exercise the locator and service
// without touching disk.
type TestFileSystem struct {
	fstest.MapFS
}

// NewTestFileSystem creates an empty in-memory filesystem.
func NewTestFileSystem() *TestFileSystem {
	return &TestFileSystem{
		MapFS: make(fstest.MapFS),
	}
}

// NewTestFileSystemFromMap creates a test filesystem from an existing map.
func NewTestFileSystemFromMap(files map[string]*fstest.MapFile) *TestFileSystem {
	return &TestFileSystem{
		MapFS: files,
	}
}

// WriteFile implements WriteFS.
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}
	tfs.MapFS[name] = &fstest.MapFile{
		Data: data,
		Mode: perm,
	}
	return nil
}

// AppendFile implements WriteFS.
func (tfs *TestFileSystem) AppendFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "appendfile", Path: name, Err: fs.ErrInvalid}
	}
	existing, ok := tfs.MapFS[name]
	if !ok {
		return tfs.WriteFile(name, data, perm)
	}
	existing.Data = append(existing.Data, data...)
	return nil
}

// Remove implements WriteFS.
func (tfs *TestFileSystem) Remove(name string) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
	}
	if _, exists := tfs.MapFS[name]; !exists {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(tfs.MapFS, name)
	return nil
}
