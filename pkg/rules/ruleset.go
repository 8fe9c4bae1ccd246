package rules

import (
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/paths"
)

// RuleSet is an ordered sequence of rules plus the target root path.
// Order is never changed after construction.
type RuleSet struct {
	root  string
	rules []*Rule
}

// NewRuleSet creates a rule set over the target root; the root is made
// absolute so ignore-set comparisons work on one canonical form.
func NewRuleSet(root string, ruleList []*Rule) (*RuleSet, error) {
	absRoot, err := paths.Normalize(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid target root %q", root)
	}

	return &RuleSet{root: absRoot, rules: ruleList}, nil
}

// Root returns the absolute target root
func (s *RuleSet) Root() string {
	return s.root
}

// Rules returns the rules in declaration order
func (s *RuleSet) Rules() []*Rule {
	return s.rules
}

// IgnoreSet returns the effective ignore set: the target root unioned
// with every rule's ignore paths.
func (s *RuleSet) IgnoreSet() map[string]struct{} {
	ignore := map[string]struct{}{s.root: {}}
	for _, rule := range s.rules {
		for _, path := range rule.IgnorePaths() {
			ignore[path] = struct{}{}
		}
	}
	return ignore
}
