package enumerable_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/leapstack-labs/leaprange/internal/testutil"
	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/domain"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_Ascending(t *testing.T) {
	ints := domain.Integers[int]()
	tests := []struct {
		name string
		b    enumerable.Bounds[int]
		want []int
	}{
		{"inclusive", enumerable.Bounds[int]{Start: 1, End: 4, HasStart: true, HasEnd: true, Domain: ints}, []int{1, 2, 3, 4}},
		{"exclusive", enumerable.Bounds[int]{Start: 1, End: 4, HasStart: true, HasEnd: true, ExcludeEnd: true, Domain: ints}, []int{1, 2, 3}},
		{"single", enumerable.Bounds[int]{Start: 4, End: 4, HasStart: true, HasEnd: true, Domain: ints}, []int{4}},
		{"empty", enumerable.Bounds[int]{Start: 5, End: 4, HasStart: true, HasEnd: true, Domain: ints}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := enumerable.Lazy[int]{}.Ascending(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slices.Collect(seq))
			// restartable
			assert.Equal(t, tt.want, slices.Collect(seq))
		})
	}
}

func TestLazy_AscendingErrors(t *testing.T) {
	lazy := enumerable.Lazy[float64]{}

	_, err := lazy.Ascending(enumerable.Bounds[float64]{Start: 1, End: 2, HasStart: true, HasEnd: true, Domain: domain.Floats[float64]()})
	assert.ErrorIs(t, err, core.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "float64")

	_, err = lazy.Ascending(enumerable.Bounds[float64]{End: 2, HasEnd: true, Domain: domain.Floats[float64]()})
	assert.ErrorIs(t, err, core.ErrTypeMismatch)

	_, err = lazy.Ascending(enumerable.Bounds[float64]{Start: 1, HasStart: true})
	assert.ErrorIs(t, err, core.ErrTypeMismatch)
}

func TestLazy_AscendingEndless(t *testing.T) {
	seq, err := enumerable.Lazy[uint8]{}.Ascending(enumerable.Bounds[uint8]{Start: 250, HasStart: true, Domain: domain.Integers[uint8]()})
	require.NoError(t, err)
	assert.Equal(t, []uint8{250, 251, 252, 253, 254, 255}, slices.Collect(seq))

	endless, err := enumerable.Lazy[int]{}.Ascending(enumerable.Bounds[int]{Start: 0, HasStart: true, Domain: domain.Integers[int]()})
	require.NoError(t, err)
	var got []int
	for v := range endless {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestLazy_AscendingStrings(t *testing.T) {
	seq, err := enumerable.Lazy[string]{}.Ascending(enumerable.Bounds[string]{Start: "x", End: "ab", HasStart: true, HasEnd: true, Domain: domain.Strings()})
	require.NoError(t, err)
	// "x" sorts after "ab", so the interval is empty
	assert.Empty(t, slices.Collect(seq))

	seq, err = enumerable.Lazy[string]{}.Ascending(enumerable.Bounds[string]{Start: "a", End: "ba", HasStart: true, HasEnd: true, Domain: domain.Strings()})
	require.NoError(t, err)
	got := slices.Collect(seq)
	assert.Len(t, got, 26+26+1)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "z", got[25])
	assert.Equal(t, "aa", got[26])
	assert.Equal(t, "ba", got[len(got)-1])
}

func TestLazy_Extremal(t *testing.T) {
	lazy := enumerable.Lazy[int]{}
	seq := slices.Values([]int{3, 9, -2, 9, 4})

	v, ok, err := lazy.Extremal(seq, cmp.Compare[int], enumerable.PickMax)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	v, ok, err = lazy.Extremal(seq, cmp.Compare[int], enumerable.PickMin)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, -2, v)

	_, ok, err = lazy.Extremal(slices.Values([]int{}), cmp.Compare[int], enumerable.PickMax)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = lazy.Extremal(seq, nil, enumerable.PickMax)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestLazy_ExtremalTiesKeepFirst(t *testing.T) {
	type pair struct{ key, id int }
	byKey := func(a, b pair) int { return cmp.Compare(a.key, b.key) }
	seq := slices.Values([]pair{{1, 0}, {5, 1}, {5, 2}, {1, 3}})

	v, _, err := enumerable.Lazy[pair]{}.Extremal(seq, byKey, enumerable.PickMax)
	require.NoError(t, err)
	assert.Equal(t, 1, v.id)

	v, _, err = enumerable.Lazy[pair]{}.Extremal(seq, byKey, enumerable.PickMin)
	require.NoError(t, err)
	assert.Equal(t, 0, v.id)
}

func TestLazy_ExtremalLimit(t *testing.T) {
	lazy := enumerable.Lazy[int]{Limit: 3, Logger: testutil.NewTestLogger(t)}

	v, ok, err := lazy.Extremal(slices.Values([]int{1, 2, 3}), cmp.Compare[int], enumerable.PickMax)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, _, err = lazy.Extremal(slices.Values([]int{1, 2, 3, 4}), cmp.Compare[int], enumerable.PickMax)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerable.ErrLimitExceeded)
	assert.ErrorIs(t, err, core.ErrUnsupportedOperation)
}

func TestLazy_ExtremalLimitLogs(t *testing.T) {
	logger, logs := testutil.CaptureLogger(t)
	lazy := enumerable.Lazy[int]{Limit: 2, Logger: logger}

	_, _, err := lazy.Extremal(slices.Values([]int{1, 2, 3}), cmp.Compare[int], enumerable.PickMin)
	require.ErrorIs(t, err, enumerable.ErrLimitExceeded)
	assert.Contains(t, logs(), "enumeration limit reached")
	assert.Contains(t, logs(), "op=min")
}

func TestLazy_Tail(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		n    int
		want []int
	}{
		{"tail", []int{1, 2, 3, 4, 5}, 2, []int{4, 5}},
		{"wraps ring", []int{1, 2, 3, 4, 5, 6, 7}, 3, []int{5, 6, 7}},
		{"exact", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"shorter than n", []int{1, 2}, 5, []int{1, 2}},
		{"zero", []int{1, 2}, 0, []int{}},
		{"empty", []int{}, 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enumerable.Lazy[int]{}.Tail(slices.Values(tt.in), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := enumerable.Lazy[int]{}.Tail(slices.Values([]int{1}), -1)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestLazy_TailLimit(t *testing.T) {
	logger, logs := testutil.CaptureLogger(t)
	lazy := enumerable.Lazy[int]{Limit: 3, Logger: logger}

	got, err := lazy.Tail(slices.Values([]int{1, 2, 3}), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)

	_, err = lazy.Tail(slices.Values([]int{1, 2, 3, 4}), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerable.ErrLimitExceeded)
	assert.ErrorIs(t, err, core.ErrUnsupportedOperation)
	assert.Contains(t, logs(), "op=last")
}

func TestPick_String(t *testing.T) {
	assert.Equal(t, "max", enumerable.PickMax.String())
	assert.Equal(t, "min", enumerable.PickMin.String())
}
