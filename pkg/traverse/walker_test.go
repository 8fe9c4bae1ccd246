package traverse

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemaid/filemaid/pkg/filesystem"
	"github.com/filemaid/filemaid/pkg/testutil"
)

func walkPaths(t *testing.T, root string, opts Options) []string {
	t.Helper()
	var paths []string
	err := Walk(filesystem.NewOS(), root, opts, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	return paths
}

func TestWalk_NonRecursive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "nested.txt"), []byte("x"), 0644))

	paths := walkPaths(t, root, Options{Recursive: false})

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "sub"),
		filepath.Join(root, "top.txt"),
		root,
	}, paths)
	assert.NotContains(t, paths, filepath.Join(root, "sub", "nested.txt"))
}

func TestWalk_Recursive(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "nested.txt"), []byte("x"), 0644))

	paths := walkPaths(t, root, Options{Recursive: true})

	assert.Contains(t, paths, root)
	assert.Contains(t, paths, filepath.Join(root, "top.txt"))
	assert.Contains(t, paths, filepath.Join(root, "sub"))
	assert.Contains(t, paths, filepath.Join(root, "sub", "nested.txt"))
}

func TestWalk_YieldOrderWithinDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a-file"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "z-dir"), 0755))

	paths := walkPaths(t, root, Options{})

	// subdirectories come before files, the directory itself last
	assert.Equal(t, []string{
		filepath.Join(root, "z-dir"),
		filepath.Join(root, "a-file"),
		root,
	}, paths)
}

func TestWalk_DirectoryYieldedAsChildAndAsVisited(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))

	paths := walkPaths(t, root, Options{Recursive: true})

	count := 0
	for _, path := range paths {
		if path == sub {
			count++
		}
	}
	assert.Equal(t, 2, count, "a subdirectory is a candidate of its parent and of its own visit")
}

func TestWalk_SymlinkedDirectory(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "inside.txt"), []byte("x"), 0644))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(outside, link))

	// without following: the link is a candidate, its contents are not
	paths := walkPaths(t, root, Options{Recursive: true})
	assert.Contains(t, paths, link)
	assert.NotContains(t, paths, filepath.Join(link, "inside.txt"))

	// with following: the walk descends through the link
	paths = walkPaths(t, root, Options{Recursive: true, FollowSymlinks: true})
	assert.Contains(t, paths, filepath.Join(link, "inside.txt"))
}

func TestWalk_BrokenSymlinkIsAFileCandidate(t *testing.T) {
	root := t.TempDir()
	dangling := filepath.Join(root, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), dangling))

	paths := walkPaths(t, root, Options{Recursive: true})
	assert.Contains(t, paths, dangling)
}

func TestWalk_Restartable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f"), []byte("x"), 0644))

	first := walkPaths(t, root, Options{Recursive: true})
	second := walkPaths(t, root, Options{Recursive: true})
	assert.Equal(t, first, second)
}

func TestWalk_CallbackErrorHalts(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, fmt.Sprintf("f%d", i)), []byte("x"), 0644))
	}

	var seen int
	err := Walk(filesystem.NewOS(), root, Options{}, func(string) error {
		seen++
		if seen == 2 {
			return fmt.Errorf("stop here")
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 2, seen)
}

func TestWalk_MissingRoot(t *testing.T) {
	err := Walk(filesystem.NewOS(), "/no/such/dir", Options{}, func(string) error { return nil })
	assert.Error(t, err)
}

func TestWalk_MemoryFS(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/scan/doc.txt", "x")
	require.NoError(t, fsys.MkdirAll("/scan/sub", 0755))

	var paths []string
	err := Walk(fsys, "/scan", Options{Recursive: true}, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, paths, "/scan")
	assert.Contains(t, paths, "/scan/doc.txt")
	assert.Contains(t, paths, "/scan/sub")
}
