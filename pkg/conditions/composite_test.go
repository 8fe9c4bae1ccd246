package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemaid/filemaid/pkg/types"
)

// stubCondition returns a fixed result and counts invocations; tests use
// it to verify short-circuiting.
type stubCondition struct {
	result bool
	calls  int
}

func (s *stubCondition) Match(string) (bool, error) {
	s.calls++
	return s.result, nil
}

// explodingCondition fails the test if it is ever evaluated
type explodingCondition struct {
	t *testing.T
}

func (e *explodingCondition) Match(string) (bool, error) {
	e.t.Fatal("condition evaluated after the result was already decided")
	return false, nil
}

func TestAllCondition_Match(t *testing.T) {
	tests := []struct {
		name     string
		results  []bool
		expected bool
	}{
		{"all true", []bool{true, true, true}, true},
		{"one false", []bool{true, false, true}, false},
		{"all false", []bool{false, false}, false},
		{"no children", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var children []types.Condition
			for _, r := range tt.results {
				children = append(children, &stubCondition{result: r})
			}
			condition := &AllCondition{conditions: children}

			matched, err := condition.Match("/any")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestAnyCondition_Match(t *testing.T) {
	tests := []struct {
		name     string
		results  []bool
		expected bool
	}{
		{"all true", []bool{true, true}, true},
		{"one true", []bool{false, true, false}, true},
		{"all false", []bool{false, false}, false},
		{"no children", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var children []types.Condition
			for _, r := range tt.results {
				children = append(children, &stubCondition{result: r})
			}
			condition := &AnyCondition{conditions: children}

			matched, err := condition.Match("/any")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestAllCondition_ShortCircuits(t *testing.T) {
	condition := &AllCondition{conditions: []types.Condition{
		&stubCondition{result: false},
		&explodingCondition{t: t},
	}}

	matched, err := condition.Match("/any")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestAnyCondition_ShortCircuits(t *testing.T) {
	condition := &AnyCondition{conditions: []types.Condition{
		&stubCondition{result: true},
		&explodingCondition{t: t},
	}}

	matched, err := condition.Match("/any")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestNotCondition_Inverts(t *testing.T) {
	for _, childResult := range []bool{true, false} {
		condition := &NotCondition{condition: &stubCondition{result: childResult}}

		matched, err := condition.Match("/any")
		require.NoError(t, err)
		assert.Equal(t, !childResult, matched)
	}
}

func TestNotCondition_RequiresSingleChild(t *testing.T) {
	_, err := NewNotCondition(nil, types.Args{
		Positional: []interface{}{
			map[string]interface{}{"path": "a"},
			map[string]interface{}{"path": "b"},
		},
	})
	assert.Error(t, err)

	_, err = NewNotCondition(nil, types.Args{})
	assert.Error(t, err)
}

func TestCompositeCondition_RejectsNamedArguments(t *testing.T) {
	_, err := NewAllCondition(nil, types.Args{Named: map[string]interface{}{"child": "x"}})
	assert.Error(t, err)
}
