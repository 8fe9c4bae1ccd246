// Package core runs the matching loop: it loads the rule set, builds the
// effective ignore set, walks the target tree, and applies the first
// matching rule to each candidate path.
package core

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/filemaid/filemaid/pkg/logging"
	"github.com/filemaid/filemaid/pkg/rules"
	"github.com/filemaid/filemaid/pkg/traverse"
	"github.com/filemaid/filemaid/pkg/types"
)

// Options configures a run. There is no process-wide state: everything
// the engine needs is passed in here.
type Options struct {
	// RulesPath is the rule declaration file
	RulesPath string

	// Root is the target directory to scan
	Root string

	// DryRun reports matches without applying actions
	DryRun bool

	// Recursive descends into subdirectories
	Recursive bool

	// FollowSymlinks descends into symlinked directories
	FollowSymlinks bool

	// Out receives dry-run match reports; defaults to stdout
	Out io.Writer
}

// Engine evaluates an ordered rule set against a directory tree
type Engine struct {
	fs     types.FS
	opts   Options
	logger zerolog.Logger
}

// NewEngine creates an engine over the given filesystem
func NewEngine(fsys types.FS, opts Options) *Engine {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Engine{
		fs:     fsys,
		opts:   opts,
		logger: logging.GetLogger("core.engine"),
	}
}

// Run loads the rules and processes the target tree. Rule construction
// happens in full before traversal begins, so configuration mistakes
// abort before any filesystem mutation. Any failure afterwards halts
// the run; there is no skip-and-continue.
func (e *Engine) Run() error {
	ruleList, err := rules.Load(e.fs, e.opts.RulesPath)
	if err != nil {
		return err
	}

	set, err := rules.NewRuleSet(e.opts.Root, ruleList)
	if err != nil {
		return err
	}

	ignore := set.IgnoreSet()
	e.logger.Debug().
		Int("ruleCount", len(set.Rules())).
		Int("ignoreCount", len(ignore)).
		Str("root", set.Root()).
		Bool("dryRun", e.opts.DryRun).
		Msg("Starting scan")

	walkOpts := traverse.Options{
		Recursive:      e.opts.Recursive,
		FollowSymlinks: e.opts.FollowSymlinks,
	}
	return traverse.Walk(e.fs, set.Root(), walkOpts, func(path string) error {
		if _, skip := ignore[path]; skip {
			e.logger.Trace().Str("path", path).Msg("Skipping ignored path")
			return nil
		}
		return e.process(set, path)
	})
}

// process evaluates the rules against one candidate path. The first
// matching rule is the only one applied; later rules are skipped.
func (e *Engine) process(set *rules.RuleSet, path string) error {
	for _, rule := range set.Rules() {
		matched, err := rule.Match(path)
		if err != nil {
			return err
		}
		if !matched {
			continue
		}

		if e.opts.DryRun {
			fmt.Fprintf(e.opts.Out, "%s: %s\n", rule.Name, path)
			return nil
		}

		finalPath, err := rule.Apply(path)
		if err != nil {
			return err
		}
		e.logger.Info().
			Str("rule", rule.Name).
			Str("path", path).
			Str("result", finalPath).
			Msg("Applied rule")
		return nil
	}

	return nil
}
