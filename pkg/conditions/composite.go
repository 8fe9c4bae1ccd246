package conditions

import (
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// AllCondition matches when every child condition matches
type AllCondition struct {
	conditions []types.Condition
}

// AnyCondition matches when at least one child condition matches
type AnyCondition struct {
	conditions []types.Condition
}

// NotCondition inverts its single child condition
type NotCondition struct {
	condition types.Condition
}

// buildChildren constructs each child declaration through the factory
func buildChildren(fsys types.FS, args types.Args) ([]types.Condition, error) {
	if len(args.Named) > 0 {
		return nil, errors.New(errors.ErrConditionInvalid,
			"composite conditions take a list of child conditions, not named arguments")
	}

	children := make([]types.Condition, 0, len(args.Positional))
	for _, node := range args.Positional {
		child, err := Build(fsys, node)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// NewAllCondition creates a condition over the child declarations
func NewAllCondition(fsys types.FS, args types.Args) (*AllCondition, error) {
	children, err := buildChildren(fsys, args)
	if err != nil {
		return nil, err
	}
	return &AllCondition{conditions: children}, nil
}

// Match reports whether every child matches; evaluation stops at the
// first non-match.
func (c *AllCondition) Match(path string) (bool, error) {
	for _, condition := range c.conditions {
		matched, err := condition.Match(path)
		if err != nil {
			return false, err
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

// NewAnyCondition creates a condition over the child declarations
func NewAnyCondition(fsys types.FS, args types.Args) (*AnyCondition, error) {
	children, err := buildChildren(fsys, args)
	if err != nil {
		return nil, err
	}
	return &AnyCondition{conditions: children}, nil
}

// Match reports whether at least one child matches; evaluation stops at
// the first match.
func (c *AnyCondition) Match(path string) (bool, error) {
	for _, condition := range c.conditions {
		matched, err := condition.Match(path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// NewNotCondition creates a negation over exactly one child declaration
func NewNotCondition(fsys types.FS, args types.Args) (*NotCondition, error) {
	if len(args.Named) > 0 || len(args.Positional) != 1 {
		return nil, errors.New(errors.ErrConditionInvalid,
			"not condition requires exactly one child condition")
	}

	child, err := Build(fsys, args.Positional[0])
	if err != nil {
		return nil, err
	}
	return &NotCondition{condition: child}, nil
}

// Match inverts the child's result
func (c *NotCondition) Match(path string) (bool, error) {
	matched, err := c.condition.Match(path)
	if err != nil {
		return false, err
	}
	return !matched, nil
}

func init() {
	RegisterFactory("all", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewAllCondition(fsys, args)
	})
	RegisterFactory("any", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewAnyCondition(fsys, args)
	})
	RegisterFactory("not", func(fsys types.FS, args types.Args) (types.Condition, error) {
		return NewNotCondition(fsys, args)
	})
}
