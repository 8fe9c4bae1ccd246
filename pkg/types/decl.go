package types

import (
	"github.com/filemaid/filemaid/pkg/errors"
)

// Args carries the arguments of a declaration node, bound either by name
// (mapping), by position (sequence), or as a single scalar (which binds as
// the sole positional argument).
type Args struct {
	Named      map[string]interface{}
	Positional []interface{}
}

// IsEmpty reports whether no arguments were declared
func (a Args) IsEmpty() bool {
	return len(a.Named) == 0 && len(a.Positional) == 0
}

// lookup resolves an argument by name first, then by position
func (a Args) lookup(name string, pos int) (interface{}, bool) {
	if v, ok := a.Named[name]; ok {
		return v, true
	}
	if pos >= 0 && pos < len(a.Positional) {
		return a.Positional[pos], true
	}
	return nil, false
}

// String returns a required string argument bound by name or position
func (a Args) String(name string, pos int) (string, error) {
	v, ok := a.lookup(name, pos)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "missing required argument: %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "argument %s must be a string, got %T", name, v)
	}
	return s, nil
}

// BoolOr returns an optional named bool argument, or def when absent
func (a Args) BoolOr(name string, def bool) (bool, error) {
	v, ok := a.Named[name]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Newf(errors.ErrInvalidInput, "argument %s must be a bool, got %T", name, v)
	}
	return b, nil
}

// IntOr returns an optional named int argument, or def when absent
func (a Args) IntOr(name string, def int) (int, error) {
	v, ok := a.Named[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "argument %s must be an integer, got %T", name, v)
	}
}

// ParseDecl splits a declaration node into its type tag and arguments.
// A node is either a single-key mapping {tag: args} or a bare tag scalar
// with no arguments.
func ParseDecl(node interface{}) (string, Args, error) {
	switch n := node.(type) {
	case string:
		return n, Args{}, nil
	case map[string]interface{}:
		if len(n) != 1 {
			return "", Args{}, errors.Newf(errors.ErrInvalidInput,
				"declaration must have exactly one key, got %d", len(n))
		}
		for tag, raw := range n {
			return tag, bindArgs(raw), nil
		}
	}
	return "", Args{}, errors.Newf(errors.ErrInvalidInput, "invalid declaration node: %T", node)
}

// bindArgs maps the raw argument value onto the Args shapes
func bindArgs(raw interface{}) Args {
	switch v := raw.(type) {
	case nil:
		return Args{}
	case map[string]interface{}:
		return Args{Named: v}
	case []interface{}:
		return Args{Positional: v}
	default:
		return Args{Positional: []interface{}{v}}
	}
}
