package interval

import (
	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
)

// Max returns the greatest element of the interval. The bool is false when
// the interval is empty.
//
// With a non-nil cmp the question is handed to the enumerator as is, over
// the full element sequence; endless intervals are not rejected here, so the
// enumerator's own limits decide what happens. With a nil cmp an endless
// interval is an error, numeric domains are answered from the endpoints,
// and anything else is enumerated in natural order.
func (iv Interval[T]) Max(cmp core.Comparator[T]) (T, bool, error) {
	var zero T
	if cmp != nil {
		return iv.extremal(cmp, enumerable.PickMax)
	}
	if !iv.hasEnd {
		return zero, false, core.Errorf(core.ErrUnsupportedOperation, "max", "cannot get the maximum of endless range")
	}

	if iv.numeric() {
		if iv.exclusiveEnd && iv.dom.Class() != core.ClassInteger {
			return zero, false, core.Errorf(core.ErrTypeMismatch, "max", "cannot exclude non Integer end value")
		}
		if iv.IsEmpty() {
			return zero, false, nil
		}
		if !iv.exclusiveEnd {
			return iv.end, true, nil
		}
		// start < end here, so end always has a predecessor
		v, ok := iv.dom.Pred(iv.end)
		return v, ok, nil
	}

	return iv.extremal(iv.natural(), enumerable.PickMax)
}

// Min returns the least element of the interval. The bool is false when the
// interval is empty.
//
// Unlike Max, a non-nil cmp on an endless interval is rejected. With a nil
// cmp an endless interval answers its start directly, numeric domains are
// answered from the endpoints, and anything else is enumerated.
func (iv Interval[T]) Min(cmp core.Comparator[T]) (T, bool, error) {
	var zero T
	if cmp != nil {
		if !iv.hasEnd {
			return zero, false, core.Errorf(core.ErrUnsupportedOperation, "min",
				"cannot get the minimum of endless range with custom comparison method")
		}
		return iv.extremal(cmp, enumerable.PickMin)
	}
	if !iv.hasEnd {
		return iv.start, iv.hasStart, nil
	}

	if iv.numeric() {
		if iv.IsEmpty() {
			return zero, false, nil
		}
		return iv.start, true, nil
	}

	return iv.extremal(iv.natural(), enumerable.PickMin)
}

// numeric reports whether both endpoints are present and the domain has the
// arithmetic fast path.
func (iv Interval[T]) numeric() bool {
	return iv.hasStart && iv.hasEnd && iv.dom != nil && iv.dom.Class().Numeric()
}

func (iv Interval[T]) extremal(cmp core.Comparator[T], p enumerable.Pick) (T, bool, error) {
	e := iv.enumerator()
	seq, err := e.Ascending(iv.bounds())
	if err != nil {
		var zero T
		return zero, false, err
	}
	return e.Extremal(seq, cmp, p)
}
