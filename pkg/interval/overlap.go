package interval

import (
	"fmt"
	"reflect"

	"github.com/leapstack-labs/leaprange/pkg/core"
)

// Overlaps reports whether iv and other have at least one element in common.
// Both intervals are compared with iv's domain order. Touching endpoints
// overlap unless the upper one is excluded: 1..5 overlaps 5..6, 1...5 does
// not. An empty interval overlaps nothing.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	// iv starts after other ends
	if iv.hasStart && iv.beyond(iv.start, other.end, other.hasEnd, other.exclusiveEnd) {
		return false
	}
	// other starts after iv ends
	if other.hasStart && iv.beyond(other.start, iv.end, iv.hasEnd, iv.exclusiveEnd) {
		return false
	}
	if iv.sameStart(other) {
		return true
	}
	if iv.IsEmpty() {
		return false
	}
	if other.hasStart && iv.beyond(other.start, other.end, other.hasEnd, other.exclusiveEnd) {
		return false
	}
	return true
}

// OverlapsValue is Overlaps for callers holding an untyped value. It fails
// with core.ErrTypeMismatch unless other is an Interval[T] or *Interval[T].
func (iv Interval[T]) OverlapsValue(other any) (bool, error) {
	switch o := other.(type) {
	case Interval[T]:
		return iv.Overlaps(o), nil
	case *Interval[T]:
		if o != nil {
			return iv.Overlaps(*o), nil
		}
	case interface{ elementName() string }:
		if v := reflect.ValueOf(o); v.Kind() != reflect.Pointer || !v.IsNil() {
			return false, core.Errorf(core.ErrTypeMismatch, "overlap", "cannot compare %s range with %s range", iv.elementName(), o.elementName())
		}
	}
	return false, core.Errorf(core.ErrTypeMismatch, "overlap", "argument must be a range, got %T", other)
}

// elementName names the element type, preferring the domain's name.
func (iv Interval[T]) elementName() string {
	if iv.dom != nil {
		return iv.dom.Name()
	}
	var zero T
	return fmt.Sprintf("%T", zero)
}

// beyond reports whether v lies past the upper bound hi. An absent upper
// bound is never passed.
func (iv Interval[T]) beyond(v, hi T, hasHi, hiExclusive bool) bool {
	if !hasHi || iv.dom == nil {
		return false
	}
	c := iv.dom.Compare(v, hi)
	return c > 0 || c == 0 && hiExclusive
}

func (iv Interval[T]) sameStart(other Interval[T]) bool {
	if !iv.hasStart || !other.hasStart {
		return !iv.hasStart && !other.hasStart
	}
	return iv.dom != nil && iv.dom.Compare(iv.start, other.start) == 0
}
