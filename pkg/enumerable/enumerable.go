// Package enumerable provides ascending enumeration of interval elements and
// generic extremal search over element sequences.
//
// It is the fallback used by pkg/interval whenever an answer cannot be
// computed arithmetically from the endpoints.
package enumerable

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/leapstack-labs/leaprange/pkg/core"
)

// ErrLimitExceeded is wrapped into the error returned when a sequence yields
// more elements than the enumerator's Limit.
var ErrLimitExceeded = errors.New("enumeration limit exceeded")

// Pick selects which extreme Extremal returns.
type Pick int

// Extremes.
const (
	PickMax Pick = iota
	PickMin
)

func (p Pick) String() string {
	if p == PickMin {
		return "min"
	}
	return "max"
}

// Bounds is the shape of an interval as seen by an Enumerator.
type Bounds[T any] struct {
	Start      T
	End        T
	HasStart   bool
	HasEnd     bool
	ExcludeEnd bool
	Domain     core.Domain[T]
}

// Enumerator is the enumeration and extremal-search facility intervals fall
// back to.
type Enumerator[T any] interface {
	// Ascending returns the elements of b from Start upward by the domain's
	// successor. The sequence is finite iff b has an end (or the domain runs
	// out of successors) and may be ranged over more than once.
	Ascending(b Bounds[T]) (iter.Seq[T], error)

	// Extremal returns the greatest (PickMax) or least (PickMin) element of
	// seq under cmp. Callers wanting natural order pass Domain.Compare. It
	// reports false when seq is empty.
	Extremal(seq iter.Seq[T], cmp core.Comparator[T], p Pick) (T, bool, error)

	// Tail returns the last n elements of seq in sequence order, or all of
	// them when seq is shorter.
	Tail(seq iter.Seq[T], n int) ([]T, error)
}

// past is implemented by domains whose successor walk does not follow their
// natural order, such as strings. Enumeration stops once Past reports true.
type past[T any] interface {
	Past(v, end T) bool
}

// Lazy is the default Enumerator. Its zero value is ready to use.
type Lazy[T any] struct {
	// Limit caps how many elements Extremal and Tail pull from a sequence.
	// Zero means no limit.
	Limit int
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// Ascending implements Enumerator.
func (l Lazy[T]) Ascending(b Bounds[T]) (iter.Seq[T], error) {
	if b.Domain == nil {
		return nil, core.Errorf(core.ErrTypeMismatch, "each", "interval has no element domain")
	}
	if !b.HasStart {
		return nil, core.Errorf(core.ErrTypeMismatch, "each", "can't iterate from beginless interval")
	}
	if _, ok := b.Domain.Succ(b.Start); !ok && b.Domain.Class() != core.ClassInteger {
		return nil, core.Errorf(core.ErrTypeMismatch, "each", "can't iterate from %s", b.Domain.Name())
	}

	dom := b.Domain
	walker, _ := dom.(past[T])

	return func(yield func(T) bool) {
		v := b.Start
		if b.HasEnd && dom.Compare(v, b.End) > 0 {
			return
		}
		for {
			if b.HasEnd {
				if walker != nil && walker.Past(v, b.End) {
					return
				}
				c := dom.Compare(v, b.End)
				if walker == nil && c > 0 {
					return
				}
				if c == 0 {
					if !b.ExcludeEnd {
						yield(v)
					}
					return
				}
			}
			if !yield(v) {
				return
			}
			next, ok := dom.Succ(v)
			if !ok {
				return
			}
			v = next
		}
	}, nil
}

// Extremal implements Enumerator. Ties keep the first element seen.
func (l Lazy[T]) Extremal(seq iter.Seq[T], cmp core.Comparator[T], p Pick) (T, bool, error) {
	var best T
	if cmp == nil {
		return best, false, core.Errorf(core.ErrInvalidArgument, p.String(), "comparator is required")
	}
	if seq == nil {
		return best, false, nil
	}

	found := false
	n := 0
	for v := range seq {
		n++
		if l.Limit > 0 && n > l.Limit {
			var zero T
			return zero, false, l.exceeded(p.String())
		}
		if !found {
			best, found = v, true
			continue
		}
		c := cmp(v, best)
		if p == PickMax && c > 0 || p == PickMin && c < 0 {
			best = v
		}
	}
	return best, found, nil
}

// Tail implements Enumerator. It keeps at most n elements in memory.
func (l Lazy[T]) Tail(seq iter.Seq[T], n int) ([]T, error) {
	if n < 0 {
		return nil, core.Errorf(core.ErrInvalidArgument, "last", "negative array size")
	}
	if seq == nil || n == 0 {
		return []T{}, nil
	}

	ring := make([]T, 0, min(n, 64))
	next, pulled := 0, 0
	for v := range seq {
		pulled++
		if l.Limit > 0 && pulled > l.Limit {
			return nil, l.exceeded("last")
		}
		if len(ring) < n {
			ring = append(ring, v)
			continue
		}
		ring[next] = v
		next = (next + 1) % n
	}

	out := make([]T, 0, len(ring))
	out = append(out, ring[next:]...)
	return append(out, ring[:next]...), nil
}

func (l Lazy[T]) exceeded(op string) error {
	l.logger().Debug("enumeration limit reached", "op", op, "limit", l.Limit)
	return fmt.Errorf("%w: %w",
		core.Errorf(core.ErrUnsupportedOperation, op, "sequence has more than %d elements", l.Limit),
		ErrLimitExceeded)
}

func (l Lazy[T]) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}
