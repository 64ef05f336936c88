package filesystem_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/safeback/pkg/safeback/filesystem"
)

func TestTestFileSystem(t *testing.T) {
	t.Run("WriteFile and ReadFile", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystem()
		if err := tfs.WriteFile("a.txt", []byte("abc"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		data, err := fs.ReadFile(tfs, "a.txt")
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "abc" {
			t.Errorf("Expected \"abc\", got %q", data)
		}
	})

	t.Run("AppendFile", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystem()
		if err := tfs.AppendFile("log", []byte("one"), 0644); err != nil {
			t.Fatalf("AppendFile (create) failed: %v", err)
		}
		if err := tfs.AppendFile("log", []byte("two"), 0644); err != nil {
			t.Fatalf("AppendFile (extend) failed: %v", err)
		}
		data, err := fs.ReadFile(tfs, "log")
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "onetwo" {
			t.Errorf("Expected \"onetwo\", got %q", data)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystemFromMap(map[string]*fstest.MapFile{
			"a.txt": {Data: []byte("x")},
		})
		if err := tfs.Remove("a.txt"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if err := tfs.Remove("a.txt"); err == nil {
			t.Error("Expected Remove of missing file to fail")
		}
	})

	t.Run("ReadDir sees written files", func(t *testing.T) {
		tfs := filesystem.NewTestFileSystem()
		if err := tfs.WriteFile("x.bak", []byte("1"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		entries, err := tfs.ReadDir(".")
		if err != nil {
			t.Fatalf("ReadDir failed: %v", err)
		}
		if len(entries) != 1 || entries[0].Name() != "x.bak" {
			t.Errorf("Expected single entry x.bak, got %v", entries)
		}
	})
}
