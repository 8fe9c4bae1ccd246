// Package traverse enumerates candidate paths for rule evaluation. For
// every directory visited the walk yields its immediate subdirectory
// paths, its immediate file paths, and then the directory itself — the
// scan root included, so callers exclude the root through the ignore
// set rather than through traversal logic.
package traverse

import (
	"io/fs"
	"path/filepath"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// Options controls traversal behavior
type Options struct {
	// Recursive descends into subdirectories; otherwise only the root
	// directory is visited.
	Recursive bool

	// FollowSymlinks descends into symlinked directories. Symlinked
	// directories are yielded as candidates either way.
	FollowSymlinks bool
}

// WalkFunc receives each candidate path in traversal-yield order.
// Returning an error halts the walk.
type WalkFunc func(path string) error

// Walk runs a fresh scan rooted at the given directory. Every call
// starts over; there is no cross-call state.
func Walk(fsys types.FS, root string, opts Options, fn WalkFunc) error {
	return walkDir(fsys, root, opts, fn)
}

// dirEntry is a classified child of a visited directory
type dirEntry struct {
	path      string
	symlinked bool
}

func walkDir(fsys types.FS, dir string, opts Options, fn WalkFunc) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", dir)
	}

	var subdirs []dirEntry
	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, dirEntry{path: path})
		case entry.Type()&fs.ModeSymlink != 0:
			// a symlink to a directory counts as a directory; broken
			// symlinks fall through as file candidates
			if info, err := fsys.Stat(path); err == nil && info.IsDir() {
				subdirs = append(subdirs, dirEntry{path: path, symlinked: true})
			} else {
				files = append(files, path)
			}
		default:
			files = append(files, path)
		}
	}

	// subdirectories first, then files, then the directory itself
	for _, subdir := range subdirs {
		if err := fn(subdir.path); err != nil {
			return err
		}
	}
	for _, file := range files {
		if err := fn(file); err != nil {
			return err
		}
	}
	if err := fn(dir); err != nil {
		return err
	}

	if !opts.Recursive {
		return nil
	}

	for _, subdir := range subdirs {
		if subdir.symlinked && !opts.FollowSymlinks {
			continue
		}
		if err := walkDir(fsys, subdir.path, opts, fn); err != nil {
			return err
		}
	}

	return nil
}
