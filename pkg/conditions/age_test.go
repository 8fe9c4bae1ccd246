package conditions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemaid/filemaid/pkg/errors"
	"github.com/filemaid/filemaid/pkg/testutil"
	"github.com/filemaid/filemaid/pkg/types"
)

func newAge(t *testing.T, fsys types.FS, expression string) *AgeCondition {
	t.Helper()
	condition, err := NewAgeCondition(fsys, types.Args{Positional: []interface{}{expression}})
	require.NoError(t, err)
	return condition
}

func TestAgeCondition_Match(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.Touch(t, fsys, "/old.log", time.Now().Add(-40*24*time.Hour))
	testutil.Touch(t, fsys, "/fresh.log", time.Now().Add(-time.Minute))

	tests := []struct {
		expression string
		path       string
		expected   bool
	}{
		{"> 30 days", "/old.log", true},
		{"< 30 days", "/old.log", false},
		{">= 5 weeks", "/old.log", true},
		{"<= 5 weeks", "/old.log", false},
		{"> 30 days", "/fresh.log", false},
		{"< 2 minutes", "/fresh.log", true},
		{"> 30 seconds", "/fresh.log", true},
		{"< 1 hours", "/fresh.log", true},
	}

	for _, tt := range tests {
		t.Run(tt.expression+" "+tt.path, func(t *testing.T) {
			matched, err := newAge(t, fsys, tt.expression).Match(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, matched)
		})
	}
}

func TestAgeCondition_StrictVersusNonStrict(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.Touch(t, fsys, "/f", time.Now().Add(-10*24*time.Hour))

	// the age is strictly between 9 and 11 days, so strict and
	// non-strict comparators agree away from the boundary
	for expression, expected := range map[string]bool{
		"> 9 days":   true,
		">= 9 days":  true,
		"< 11 days":  true,
		"<= 11 days": true,
		"> 11 days":  false,
		"< 9 days":   false,
		"= 10 days":  false, // exact equality of a live duration
	} {
		matched, err := newAge(t, fsys, expression).Match("/f")
		require.NoError(t, err)
		assert.Equal(t, expected, matched, "expression %q", expression)
	}
}

func TestAgeCondition_ConstructionErrors(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	tests := []string{
		"> 30",           // missing unit
		"30 days",        // missing comparator
		"!= 30 days",     // unknown comparator
		"> 2.5 days",     // non-integer magnitude
		"> 30 fortnight", // unknown unit
	}

	for _, expression := range tests {
		_, err := NewAgeCondition(fsys, types.Args{Positional: []interface{}{expression}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConditionInvalid), "expression %q: got %v", expression, err)
	}
}

func TestAgeCondition_StatFailurePropagates(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	_, err := newAge(t, fsys, "> 1 days").Match("/missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestAgeCondition_NotCached(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.Touch(t, fsys, "/f", time.Now())

	condition := newAge(t, fsys, "> 1 hours")
	matched, err := condition.Match("/f")
	require.NoError(t, err)
	assert.False(t, matched)

	// metadata changes between evaluations must be observed
	testutil.Touch(t, fsys, "/f", time.Now().Add(-2*time.Hour))
	matched, err = condition.Match("/f")
	require.NoError(t, err)
	assert.True(t, matched)
}
