package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/types"
)

// recordingAction captures the path it was applied to and optionally
// rewrites it
type recordingAction struct {
	applied     []string
	returnPath  string
	ignorePaths []string
	err         error
}

func (a *recordingAction) Apply(path string) (string, error) {
	a.applied = append(a.applied, path)
	return a.returnPath, a.err
}

func (a *recordingAction) IgnorePaths() []string {
	return a.ignorePaths
}

type fixedCondition struct{ result bool }

func (c fixedCondition) Match(string) (bool, error) { return c.result, nil }

func TestRule_IgnorePathUnion(t *testing.T) {
	rule := New("archive", fixedCondition{true}, []types.Action{
		&recordingAction{ignorePaths: []string{"/archive"}},
		&recordingAction{ignorePaths: nil},
		&recordingAction{ignorePaths: []string{"/backup", "/archive"}},
	})

	assert.Equal(t, []string{"/archive", "/backup"}, rule.IgnorePaths())
}

func TestRule_ApplyThreadsPath(t *testing.T) {
	mover := &recordingAction{returnPath: "/archive/f"}
	deleter := &recordingAction{}
	rule := New("chain", fixedCondition{true}, []types.Action{mover, deleter})

	finalPath, err := rule.Apply("/inbox/f")
	require.NoError(t, err)

	// the second action operates on the path produced by the first
	assert.Equal(t, []string{"/inbox/f"}, mover.applied)
	assert.Equal(t, []string{"/archive/f"}, deleter.applied)
	assert.Equal(t, "/archive/f", finalPath)
}

func TestRule_ApplyCarriesPathWhenUnchanged(t *testing.T) {
	copier := &recordingAction{}
	second := &recordingAction{}
	rule := New("copy-twice", fixedCondition{true}, []types.Action{copier, second})

	finalPath, err := rule.Apply("/f")
	require.NoError(t, err)
	assert.Equal(t, []string{"/f"}, second.applied)
	assert.Equal(t, "/f", finalPath)
}

func TestRule_ApplyStopsOnError(t *testing.T) {
	failing := &recordingAction{err: errors.New(errors.ErrFileMove, "disk full")}
	never := &recordingAction{}
	rule := New("failing", fixedCondition{true}, []types.Action{failing, never})

	_, err := rule.Apply("/f")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileMove))
	assert.Empty(t, never.applied)
}

func TestRule_MatchDelegatesToCondition(t *testing.T) {
	matched, err := New("r", fixedCondition{true}, nil).Match("/f")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = New("r", fixedCondition{false}, nil).Match("/f")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestRuleSet_IgnoreSet(t *testing.T) {
	first := New("a", fixedCondition{true}, []types.Action{
		&recordingAction{ignorePaths: []string{"/archive"}},
	})
	second := New("b", fixedCondition{true}, []types.Action{
		&recordingAction{ignorePaths: []string{"/backup"}},
	})

	set, err := NewRuleSet("/scan-root", []*Rule{first, second})
	require.NoError(t, err)

	ignore := set.IgnoreSet()
	assert.Contains(t, ignore, "/scan-root")
	assert.Contains(t, ignore, "/archive")
	assert.Contains(t, ignore, "/backup")
	assert.Len(t, ignore, 3)
}

func TestRuleSet_PreservesOrder(t *testing.T) {
	ruleList := []*Rule{
		New("first", fixedCondition{true}, nil),
		New("second", fixedCondition{true}, nil),
		New("third", fixedCondition{true}, nil),
	}

	set, err := NewRuleSet("/root", ruleList)
	require.NoError(t, err)

	var names []string
	for _, rule := range set.Rules() {
		names = append(names, rule.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}
