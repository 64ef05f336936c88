package filesystem

import (
	"io/fs"
)

// ReadFS is an alias for fs.FS, representing a read-only file system.
type ReadFS = fs.FS

// WriteFS defines the write operations the backup tool performs.
type WriteFS interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	AppendFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error
}

// FullFileSystem combines reads, writes, Stat, and directory listing.
// All names are slash-separated and relative to the filesystem root.
type FullFileSystem interface {
	ReadFS
	WriteFS
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
