package actions

import (
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/registry"
	"github.com/filemaid/filemaid/pkg/types"
)

// Factory builds an action from its declared arguments
type Factory func(fsys types.FS, args types.Args) (types.Action, error)

var factories = registry.New[Factory]()

// RegisterFactory adds an action factory under the given type tag.
// Registration happens in init functions; duplicate tags panic.
func RegisterFactory(name string, factory Factory) {
	registry.MustRegister(factories, name, factory)
}

// Tags returns the registered action type tags
func Tags() []string {
	return factories.List()
}

// Build constructs an action from a declaration node. Unknown type tags
// are fatal at construction time, before any filesystem mutation.
func Build(fsys types.FS, node interface{}) (types.Action, error) {
	tag, args, err := types.ParseDecl(node)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrActionInvalid, "invalid action declaration")
	}

	factory, err := factories.Get(tag)
	if err != nil {
		return nil, errors.Newf(errors.ErrActionUnknown, "unknown action type: %s", tag)
	}

	return factory(fsys, args)
}

// BuildChain constructs an ordered action chain from a declaration list
func BuildChain(fsys types.FS, nodes []interface{}) ([]types.Action, error) {
	chain := make([]types.Action, 0, len(nodes))
	for _, node := range nodes {
		action, err := Build(fsys, node)
		if err != nil {
			return nil, err
		}
		chain = append(chain, action)
	}
	return chain, nil
}
