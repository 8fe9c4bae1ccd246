package rules

import (
	"gopkg.in/yaml.v3"

	"github.com/filemaid/filemaid/pkg/actions"
	"github.com/filemaid/filemaid/pkg/conditions"
	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/logging"
	"github.com/filemaid/filemaid/pkg/types"
)

// Load reads an ordered rule sequence from a YAML file. Each entry is a
// single-key mapping {rule_name: {condition: ..., actions: [...]}}.
// All rules are built before any path is processed, so unknown tags and
// malformed expressions abort before the first filesystem mutation.
func Load(fsys types.FS, path string) ([]*Rule, error) {
	logger := logging.GetLogger("rules.loader")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesLoad, "cannot read rules from %s", path)
	}

	var declarations []map[string]interface{}
	if err := yaml.Unmarshal(data, &declarations); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesParse, "cannot parse rules from %s", path)
	}

	ruleList := make([]*Rule, 0, len(declarations))
	for _, declaration := range declarations {
		rule, err := buildRule(fsys, declaration)
		if err != nil {
			return nil, err
		}
		ruleList = append(ruleList, rule)
	}

	logger.Debug().Int("ruleCount", len(ruleList)).Str("path", path).Msg("Loaded rules")
	return ruleList, nil
}

// buildRule constructs one rule from its declaration mapping
func buildRule(fsys types.FS, declaration map[string]interface{}) (*Rule, error) {
	if len(declaration) != 1 {
		return nil, errors.Newf(errors.ErrRulesParse,
			"rule declaration must have exactly one key, got %d", len(declaration))
	}

	for name, rawBody := range declaration {
		body, ok := rawBody.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrRulesParse, "rule %q body must be a mapping", name)
		}

		conditionDecl, ok := body["condition"]
		if !ok {
			return nil, errors.Newf(errors.ErrRulesParse, "rule %q has no condition", name)
		}
		condition, err := conditions.Build(fsys, conditionDecl)
		if err != nil {
			return nil, err
		}

		actionDecls, ok := body["actions"].([]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrRulesParse, "rule %q has no actions list", name)
		}
		chain, err := actions.BuildChain(fsys, actionDecls)
		if err != nil {
			return nil, err
		}

		return New(name, condition, chain), nil
	}

	// unreachable: the single-key check above guarantees one iteration
	return nil, errors.New(errors.ErrInternal, "empty rule declaration")
}
