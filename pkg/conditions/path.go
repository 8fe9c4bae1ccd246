package conditions

import (
	"regexp"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// PathCondition matches paths against a regular expression anchored at
// the start of the path string. The pattern does not need to cover the
// whole path: "foo" matches "foobar/x" but not "xfoobar".
type PathCondition struct {
	regex *regexp.Regexp
}

// compilePrefix compiles a pattern anchored to the start of the subject
func compilePrefix(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	expr := "^(?:" + pattern + ")"
	if ignoreCase {
		expr = "(?i)" + expr
	}
	regex, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConditionInvalid, "invalid pattern %q", pattern)
	}
	return regex, nil
}

// NewPathCondition creates a path condition from the declared pattern
func NewPathCondition(args types.Args) (*PathCondition, error) {
	pattern, err := args.String("regex", 0)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConditionInvalid, "path condition")
	}

	regex, err := compilePrefix(pattern, false)
	if err != nil {
		return nil, err
	}
	return &PathCondition{regex: regex}, nil
}

// Match reports whether the pattern matches at the start of the path
func (c *PathCondition) Match(path string) (bool, error) {
	return c.regex.MatchString(path), nil
}

func init() {
	RegisterFactory("path", func(_ types.FS, args types.Args) (types.Condition, error) {
		return NewPathCondition(args)
	})
}
