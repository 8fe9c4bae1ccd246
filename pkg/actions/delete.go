package actions

import (
	"github.com/rs/zerolog"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/logging"
	"github.com/filemaid/filemaid/pkg/types"
)

// DeleteAction removes a file. It introduces no ignore paths.
type DeleteAction struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewDeleteAction creates a delete action; it takes no arguments
func NewDeleteAction(fsys types.FS, args types.Args) (*DeleteAction, error) {
	if !args.IsEmpty() {
		return nil, errors.New(errors.ErrActionInvalid, "delete action takes no arguments")
	}

	return &DeleteAction{
		fs:     fsys,
		logger: logging.GetLogger("actions.delete"),
	}, nil
}

// IgnorePaths returns nothing; delete writes nowhere
func (a *DeleteAction) IgnorePaths() []string {
	return nil
}

// Apply removes the file; the path is reported unchanged
func (a *DeleteAction) Apply(path string) (string, error) {
	if err := a.fs.Remove(path); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", path)
	}

	a.logger.Debug().Str("path", path).Msg("Deleted file")
	return "", nil
}

func init() {
	RegisterFactory("delete", func(fsys types.FS, args types.Args) (types.Action, error) {
		return NewDeleteAction(fsys, args)
	})
}
