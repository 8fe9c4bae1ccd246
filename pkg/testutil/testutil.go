// Package testutil provides filesystem helpers for tests: an in-memory
// types.FS plus fixture helpers for creating files with a given content,
// size, or modification time.
package testutil

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/filemaid/filemaid/pkg/filesystem"
	"github.com/filemaid/filemaid/pkg/types"
)

// NewMemoryFS returns an in-memory types.FS
func NewMemoryFS() types.FS {
	return filesystem.NewAfero(afero.NewMemMapFs())
}

// WriteFile creates a file with the given content, creating parents
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	mkdirParent(t, fsys, path)
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// WriteFileSized creates a file of exactly size bytes
func WriteFileSized(t *testing.T, fsys types.FS, path string, size int) {
	t.Helper()
	WriteFile(t, fsys, path, strings.Repeat("x", size))
}

// Touch sets a file's modification time, creating it empty if needed
func Touch(t *testing.T, fsys types.FS, path string, mtime time.Time) {
	t.Helper()
	if _, err := fsys.Stat(path); err != nil {
		WriteFile(t, fsys, path, "")
	}
	if err := fsys.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes(%s): %v", path, err)
	}
}

func mkdirParent(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	if i := strings.LastIndexByte(path, '/'); i > 0 {
		if err := fsys.MkdirAll(path[:i], 0755); err != nil {
			t.Fatalf("MkdirAll(%s): %v", path[:i], err)
		}
	}
}
