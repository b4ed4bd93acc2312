package comparator_test

import (
	"testing"

	"github.com/leapstack-labs/leaprange/internal/comparator"
	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/domain"
	"github.com/leapstack-labs/leaprange/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_IntResult(t *testing.T) {
	f, err := comparator.Compile("b - a", comparator.Int64)
	require.NoError(t, err)

	assert.Equal(t, 1, f.Compare(1, 2))
	assert.Equal(t, -1, f.Compare(2, 1))
	assert.Equal(t, 0, f.Compare(3, 3))
	assert.NoError(t, f.Err())
}

func TestCompile_BoolResult(t *testing.T) {
	f, err := comparator.Compile("a % 10 < b % 10", comparator.Int64)
	require.NoError(t, err)

	assert.Equal(t, -1, f.Compare(21, 13))
	assert.Equal(t, 1, f.Compare(13, 21))
	assert.Equal(t, 0, f.Compare(13, 23))
	assert.NoError(t, f.Err())
}

func TestCompile_Strings(t *testing.T) {
	f, err := comparator.Compile("len(a) - len(b)", comparator.String)
	require.NoError(t, err)
	assert.Equal(t, -1, f.Compare("a", "bb"))
	assert.Equal(t, 0, f.Compare("ab", "cd"))
}

func TestCompile_SyntaxError(t *testing.T) {
	_, err := comparator.Compile("a <", comparator.Int64)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestFunc_RuntimeErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"wrong result type", "'x'"},
		{"undefined name", "c - a"},
		{"bad operands", "a + 'x'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := comparator.Compile(tt.expr, comparator.Float64)
			require.NoError(t, err)

			assert.Equal(t, 0, f.Compare(1, 2))
			require.Error(t, f.Err())
			assert.ErrorIs(t, f.Err(), core.ErrTypeMismatch)

			// sticky
			assert.Equal(t, 0, f.Compare(2, 1))
		})
	}
}

func TestFunc_DrivesIntervalMax(t *testing.T) {
	f, err := comparator.Compile("b - a", comparator.Int64)
	require.NoError(t, err)

	iv := interval.New(domain.Integers[int64](), 1, 10)
	v, ok, err := iv.Max(f.Comparator())
	require.NoError(t, err)
	require.NoError(t, f.Err())
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	v, ok, err = iv.Min(f.Comparator())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(10), v)
}
