// Package domain provides element domains for intervals.
//
// A domain supplies the natural order, the successor step used for
// enumeration, and the Class marker that selects the numeric fast path.
package domain

import (
	"cmp"
	"fmt"
	"math"
	"reflect"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"golang.org/x/exp/constraints"
)

// =============================================================================
// Integers
// =============================================================================

type integers[T constraints.Integer] struct {
	name     string
	min, max T
}

// Integers returns the discrete domain of the integer type T. Enumeration
// stops at the largest value of T instead of wrapping around.
func Integers[T constraints.Integer]() core.Domain[T] {
	var zero T
	d := integers[T]{name: reflect.TypeOf(zero).String()}
	d.min, d.max = integerBounds[T]()
	return d
}

func (d integers[T]) Name() string       { return d.name }
func (d integers[T]) Class() core.Class  { return core.ClassInteger }
func (d integers[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (d integers[T]) Succ(v T) (T, bool) {
	if v == d.max {
		return v, false
	}
	return v + 1, true
}

func (d integers[T]) Pred(v T) (T, bool) {
	if v == d.min {
		return v, false
	}
	return v - 1, true
}

func integerBounds[T constraints.Integer]() (T, T) {
	var zero T
	allOnes := ^zero
	if allOnes < zero {
		// signed: max is all ones except the sign bit
		maxV := T(uint64(math.MaxUint64) >> (65 - bitSize[T]()))
		return -maxV - 1, maxV
	}
	return zero, allOnes
}

func bitSize[T constraints.Integer]() int {
	var zero T
	return int(reflect.TypeOf(zero).Size()) * 8
}

// =============================================================================
// Floats
// =============================================================================

type floats[T constraints.Float] struct{ name string }

// Floats returns the domain of the float type T. It is numeric but not
// discrete: Succ and Pred always report false, so float intervals cannot be
// enumerated and cannot exclude their upper bound in max.
func Floats[T constraints.Float]() core.Domain[T] {
	var zero T
	return floats[T]{name: reflect.TypeOf(zero).String()}
}

func (d floats[T]) Name() string       { return d.name }
func (d floats[T]) Class() core.Class  { return core.ClassFloat }
func (d floats[T]) Compare(a, b T) int { return cmp.Compare(a, b) }
func (d floats[T]) Succ(v T) (T, bool) { return v, false }
func (d floats[T]) Pred(v T) (T, bool) { return v, false }

// =============================================================================
// Ordered
// =============================================================================

type ordered[T cmp.Ordered] struct {
	name string
	succ func(T) (T, bool)
	pred func(T) (T, bool)
}

// Ordered returns a generic domain over T ordered by cmp.Compare. succ and pred
// may be nil, in which case the domain is not enumerable in that direction.
func Ordered[T cmp.Ordered](name string, succ, pred func(T) (T, bool)) core.Domain[T] {
	if name == "" {
		var zero T
		name = fmt.Sprintf("%T", zero)
	}
	return ordered[T]{name: name, succ: succ, pred: pred}
}

func (d ordered[T]) Name() string       { return d.name }
func (d ordered[T]) Class() core.Class  { return core.ClassGeneric }
func (d ordered[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

func (d ordered[T]) Succ(v T) (T, bool) {
	if d.succ == nil {
		return v, false
	}
	return d.succ(v)
}

func (d ordered[T]) Pred(v T) (T, bool) {
	if d.pred == nil {
		return v, false
	}
	return d.pred(v)
}
