package domain_test

import (
	"math"
	"testing"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestIntegers(t *testing.T) {
	d := domain.Integers[int64]()
	assert.Equal(t, "int64", d.Name())
	assert.Equal(t, core.ClassInteger, d.Class())
	assert.Equal(t, -1, d.Compare(1, 2))
	assert.Equal(t, 0, d.Compare(2, 2))
	assert.Equal(t, 1, d.Compare(3, 2))

	v, ok := d.Succ(41)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)

	_, ok = d.Succ(math.MaxInt64)
	assert.False(t, ok)
	_, ok = d.Pred(math.MinInt64)
	assert.False(t, ok)
}

func TestIntegers_Bounds(t *testing.T) {
	i8 := domain.Integers[int8]()
	_, ok := i8.Succ(127)
	assert.False(t, ok)
	_, ok = i8.Pred(-128)
	assert.False(t, ok)
	v, ok := i8.Pred(-127)
	assert.True(t, ok)
	assert.Equal(t, int8(-128), v)

	u16 := domain.Integers[uint16]()
	_, ok = u16.Succ(math.MaxUint16)
	assert.False(t, ok)
	_, ok = u16.Pred(0)
	assert.False(t, ok)

	u64 := domain.Integers[uint64]()
	_, ok = u64.Succ(math.MaxUint64)
	assert.False(t, ok)
	w, ok := u64.Succ(math.MaxUint64 - 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), w)
}

func TestFloats(t *testing.T) {
	d := domain.Floats[float32]()
	assert.Equal(t, "float32", d.Name())
	assert.Equal(t, core.ClassFloat, d.Class())
	assert.True(t, d.Class().Numeric())
	_, ok := d.Succ(1.5)
	assert.False(t, ok)
	_, ok = d.Pred(1.5)
	assert.False(t, ok)
}

func TestOrdered(t *testing.T) {
	even := domain.Ordered("even", func(v int) (int, bool) { return v + 2, true }, nil)
	assert.Equal(t, "even", even.Name())
	assert.Equal(t, core.ClassGeneric, even.Class())
	v, ok := even.Succ(4)
	assert.True(t, ok)
	assert.Equal(t, 6, v)
	_, ok = even.Pred(4)
	assert.False(t, ok)

	anon := domain.Ordered[string]("", nil, nil)
	assert.Equal(t, "string", anon.Name())
}

func TestSuccessor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a", "b"},
		{"az", "ba"},
		{"zz", "aaa"},
		{"a9", "b0"},
		{"Zz", "AAa"},
		{"9", "10"},
		{"-9", "-10"},
		{"1.9", "2.0"},
		{"***", "**+"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Successor(tt.in))
		})
	}
}

func TestStrings(t *testing.T) {
	d := domain.Strings()
	assert.Equal(t, "string", d.Name())
	assert.Equal(t, core.ClassGeneric, d.Class())
	v, ok := d.Succ("ay")
	assert.True(t, ok)
	assert.Equal(t, "az", v)
	_, ok = d.Succ("")
	assert.False(t, ok)
}
