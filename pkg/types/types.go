// Package types defines the core interfaces shared across filemaid:
// the filesystem abstraction, the condition and action contracts, and
// the declaration-node model rules are built from.
package types

import (
	"io/fs"
	"time"
)

// Condition is a boolean predicate over a filesystem path. Composite
// conditions combine other conditions; leaf conditions inspect the path
// string or the file behind it.
type Condition interface {
	// Match reports whether the path satisfies the condition. Filesystem
	// failures (stat, read) propagate; they are not treated as "no match".
	Match(path string) (bool, error)
}

// Action is a side-effecting step applied to a matched path. Actions are
// chained: each receives the path produced by the previous step.
type Action interface {
	// Apply performs the action and returns the path the file lives at
	// afterwards. An empty return means the path is unchanged.
	Apply(path string) (string, error)

	// IgnorePaths lists the paths this action writes into. They are
	// excluded from candidate evaluation so rules never process their
	// own output.
	IgnorePaths() []string
}

// FS abstracts the filesystem operations filemaid performs, so the engine
// can run against the real OS filesystem or a test filesystem.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Open(name string) (fs.File, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}
