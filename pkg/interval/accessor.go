package interval

import "github.com/leapstack-labs/leaprange/pkg/core"

// First returns the start of the interval.
func (iv Interval[T]) First() (T, error) {
	if !iv.hasStart {
		var zero T
		return zero, core.Errorf(core.ErrUnsupportedOperation, "first", "cannot get the first element of beginless range")
	}
	return iv.start, nil
}

// FirstN returns up to n elements enumerated upward from the start. The
// result has min(n, cardinality) elements.
func (iv Interval[T]) FirstN(n int) ([]T, error) {
	if !iv.hasStart {
		return nil, core.Errorf(core.ErrUnsupportedOperation, "first", "cannot get the first element of beginless range")
	}
	if n < 0 {
		return nil, core.Errorf(core.ErrInvalidArgument, "first", "negative array size (or size too big)")
	}

	seq, err := iv.enumerator().Ascending(iv.bounds())
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, min(n, 64))
	if n == 0 {
		return out, nil
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

// Last returns the end of the interval. The end is returned as is even when
// it is excluded; use LastN(1) for the last element actually contained.
func (iv Interval[T]) Last() (T, error) {
	if !iv.hasEnd {
		var zero T
		return zero, core.Errorf(core.ErrUnsupportedOperation, "last", "cannot get the last element of endless range")
	}
	return iv.end, nil
}

// LastN returns the final n elements of the ascending enumeration, in
// ascending order. Every element is enumerated, subject to the enumerator's
// limit.
func (iv Interval[T]) LastN(n int) ([]T, error) {
	if !iv.hasEnd {
		return nil, core.Errorf(core.ErrUnsupportedOperation, "last", "cannot get the last element of endless range")
	}
	if n < 0 {
		return nil, core.Errorf(core.ErrInvalidArgument, "last", "negative array size")
	}

	seq, err := iv.enumerator().Ascending(iv.bounds())
	if err != nil {
		return nil, err
	}

	return iv.enumerator().Tail(seq, n)
}
