package conditions

import (
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/registry"
	"github.com/filemaid/filemaid/pkg/types"
)

// Factory builds a condition from its declared arguments
type Factory func(fsys types.FS, args types.Args) (types.Condition, error)

var factories = registry.New[Factory]()

// RegisterFactory adds a condition factory under the given type tag.
// Registration happens in init functions; duplicate tags panic.
func RegisterFactory(name string, factory Factory) {
	registry.MustRegister(factories, name, factory)
}

// Tags returns the registered condition type tags
func Tags() []string {
	return factories.List()
}

// Build constructs a condition from a declaration node. Unknown type tags
// are fatal at construction time, before any path is evaluated.
func Build(fsys types.FS, node interface{}) (types.Condition, error) {
	tag, args, err := types.ParseDecl(node)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "invalid condition declaration")
	}

	factory, err := factories.Get(tag)
	if err != nil {
		return nil, errors.Newf(errors.ErrConditionUnknown, "unknown condition type: %s", tag)
	}

	return factory(fsys, args)
}
