package actions

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/logging"
	"github.com/filemaid/filemaid/pkg/paths"
	"github.com/filemaid/filemaid/pkg/types"
)

// MoveAction relocates a file into a destination directory, creating the
// directory if absent. The destination is an ignore path: the engine
// never evaluates rules against it.
type MoveAction struct {
	fs          types.FS
	destination string
	logger      zerolog.Logger
}

// NewMoveAction creates a move action; the destination is expanded and
// made absolute at construction time.
func NewMoveAction(fsys types.FS, args types.Args) (*MoveAction, error) {
	raw, err := args.String("destination", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrActionInvalid, "move action")
	}

	destination, err := paths.Normalize(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionInvalid, "move action destination %q", raw)
	}

	return &MoveAction{
		fs:          fsys,
		destination: destination,
		logger:      logging.GetLogger("actions.move"),
	}, nil
}

// Destination returns the expanded destination directory
func (a *MoveAction) Destination() string {
	return a.destination
}

// IgnorePaths returns the destination directory
func (a *MoveAction) IgnorePaths() []string {
	return []string{a.destination}
}

// Apply relocates the file and returns its new path
func (a *MoveAction) Apply(path string) (string, error) {
	if err := a.fs.MkdirAll(a.destination, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", a.destination)
	}

	target := filepath.Join(a.destination, filepath.Base(path))
	if err := a.fs.Rename(path, target); err != nil {
		// rename fails across devices; fall back to copy and remove
		if err := copyPreservingMetadata(a.fs, path, target); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", path, target)
		}
		if err := a.fs.Remove(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrFileMove, "cannot remove %s after copying", path)
		}
	}

	a.logger.Debug().Str("from", path).Str("to", target).Msg("Moved file")
	return target, nil
}

func init() {
	RegisterFactory("move", func(fsys types.FS, args types.Args) (types.Action, error) {
		return NewMoveAction(fsys, args)
	})
}
