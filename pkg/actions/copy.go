package actions

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/logging"
	"github.com/filemaid/filemaid/pkg/paths"
	"github.com/filemaid/filemaid/pkg/types"
)

// CopyAction duplicates a file into a destination directory, preserving
// mode and modification time. The path seen by subsequent actions is
// unchanged: the original keeps flowing through the chain.
type CopyAction struct {
	fs          types.FS
	destination string
	logger      zerolog.Logger
}

// NewCopyAction creates a copy action; the destination is expanded and
// made absolute at construction time.
func NewCopyAction(fsys types.FS, args types.Args) (*CopyAction, error) {
	raw, err := args.String("destination", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrActionInvalid, "copy action")
	}

	destination, err := paths.Normalize(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionInvalid, "copy action destination %q", raw)
	}

	return &CopyAction{
		fs:          fsys,
		destination: destination,
		logger:      logging.GetLogger("actions.copy"),
	}, nil
}

// Destination returns the expanded destination directory
func (a *CopyAction) Destination() string {
	return a.destination
}

// IgnorePaths returns the destination directory
func (a *CopyAction) IgnorePaths() []string {
	return []string{a.destination}
}

// Apply duplicates the file; the path is reported unchanged
func (a *CopyAction) Apply(path string) (string, error) {
	if err := a.fs.MkdirAll(a.destination, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", a.destination)
	}

	target := filepath.Join(a.destination, filepath.Base(path))
	if err := copyPreservingMetadata(a.fs, path, target); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", path, target)
	}

	a.logger.Debug().Str("from", path).Str("to", target).Msg("Copied file")
	return "", nil
}

// copyPreservingMetadata duplicates a file's content, mode, and
// modification time.
func copyPreservingMetadata(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

func init() {
	RegisterFactory("copy", func(fsys types.FS, args types.Args) (types.Action, error) {
		return NewCopyAction(fsys, args)
	})
}
