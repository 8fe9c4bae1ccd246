package rules

import (
	"github.com/filemaid/filemaid/pkg/types"
)

// Rule pairs a name with one condition tree and one ordered action chain
type Rule struct {
	Name string

	condition   types.Condition
	actions     []types.Action
	ignorePaths []string
}

// New creates a rule. The rule's ignore paths are the union of the
// ignore paths declared by its actions, in declaration order.
func New(name string, condition types.Condition, actions []types.Action) *Rule {
	var ignorePaths []string
	seen := make(map[string]struct{})
	for _, action := range actions {
		for _, path := range action.IgnorePaths() {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			ignorePaths = append(ignorePaths, path)
		}
	}

	return &Rule{
		Name:        name,
		condition:   condition,
		actions:     actions,
		ignorePaths: ignorePaths,
	}
}

// Match evaluates the rule's condition tree against the path
func (r *Rule) Match(path string) (bool, error) {
	return r.condition.Match(path)
}

// Apply threads the path through the action chain in order. An action
// returning a new path hands that path to the next action; an action
// returning nothing leaves the path unchanged. The final path is
// returned.
func (r *Rule) Apply(path string) (string, error) {
	for _, action := range r.actions {
		newPath, err := action.Apply(path)
		if err != nil {
			return "", err
		}
		if newPath != "" {
			path = newPath
		}
	}
	return path, nil
}

// IgnorePaths returns the paths this rule's actions write into
func (r *Rule) IgnorePaths() []string {
	return r.ignorePaths
}
