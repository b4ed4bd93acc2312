// Package interval implements immutable range values and the operations
// defined over them: first/last accessors, min/max extremal queries with an
// arithmetic fast path, and a pairwise overlap predicate.
//
// An Interval may be unbounded on either side and may exclude its upper
// bound:
//
//	10..20    New(dom, 10, 20)
//	10...20   Exclusive(dom, 10, 20)
//	..20      Beginless(dom, 20, false)
//	10..      Endless(dom, 10)
//
// Every operation is a pure read, so intervals can be shared between
// goroutines without locking.
package interval

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
)

// Interval is a range of elements of T drawn from a core.Domain.
// The zero Interval has no domain and fails every enumerating operation.
type Interval[T any] struct {
	start, end       T
	hasStart, hasEnd bool
	exclusiveEnd     bool

	dom  core.Domain[T]
	enum enumerable.Enumerator[T]
}

// Option configures an Interval at construction.
type Option[T any] func(*Interval[T])

// WithEnumerator replaces the enumeration and extremal-search fallback.
func WithEnumerator[T any](e enumerable.Enumerator[T]) Option[T] {
	return func(iv *Interval[T]) {
		if e != nil {
			iv.enum = e
		}
	}
}

func build[T any](dom core.Domain[T], iv Interval[T], opts []Option[T]) Interval[T] {
	iv.dom = dom
	iv.enum = enumerable.Lazy[T]{}
	for _, opt := range opts {
		opt(&iv)
	}
	return iv
}

// New returns the inclusive interval start..end.
func New[T any](dom core.Domain[T], start, end T, opts ...Option[T]) Interval[T] {
	return build(dom, Interval[T]{start: start, end: end, hasStart: true, hasEnd: true}, opts)
}

// Exclusive returns the interval start...end, which excludes end.
func Exclusive[T any](dom core.Domain[T], start, end T, opts ...Option[T]) Interval[T] {
	return build(dom, Interval[T]{start: start, end: end, hasStart: true, hasEnd: true, exclusiveEnd: true}, opts)
}

// Beginless returns the interval ..end (or ...end when exclusive).
func Beginless[T any](dom core.Domain[T], end T, exclusive bool, opts ...Option[T]) Interval[T] {
	return build(dom, Interval[T]{end: end, hasEnd: true, exclusiveEnd: exclusive}, opts)
}

// Endless returns the interval start.. with no upper bound.
func Endless[T any](dom core.Domain[T], start T, opts ...Option[T]) Interval[T] {
	return build(dom, Interval[T]{start: start, hasStart: true}, opts)
}

// Unbounded returns the interval .. with neither bound.
func Unbounded[T any](dom core.Domain[T], opts ...Option[T]) Interval[T] {
	return build(dom, Interval[T]{}, opts)
}

// FromBounds returns the interval described by b, using b.Domain. It is
// the only constructor for shapes like ... that have no endpoint to exclude.
func FromBounds[T any](b enumerable.Bounds[T], opts ...Option[T]) Interval[T] {
	iv := Interval[T]{
		start:        b.Start,
		end:          b.End,
		hasStart:     b.HasStart,
		hasEnd:       b.HasEnd,
		exclusiveEnd: b.ExcludeEnd,
	}
	return build(b.Domain, iv, opts)
}

// Begin returns the start and whether the interval has one.
func (iv Interval[T]) Begin() (T, bool) { return iv.start, iv.hasStart }

// End returns the end and whether the interval has one.
func (iv Interval[T]) End() (T, bool) { return iv.end, iv.hasEnd }

// ExcludeEnd reports whether the end is excluded from the interval.
func (iv Interval[T]) ExcludeEnd() bool { return iv.exclusiveEnd }

// IsBeginless reports whether the interval is unbounded below.
func (iv Interval[T]) IsBeginless() bool { return !iv.hasStart }

// IsEndless reports whether the interval is unbounded above.
func (iv Interval[T]) IsEndless() bool { return !iv.hasEnd }

// Domain returns the element domain.
func (iv Interval[T]) Domain() core.Domain[T] { return iv.dom }

// IsEmpty reports whether the interval is degenerate: both endpoints are
// present and start > end, or start == end with the end excluded.
func (iv Interval[T]) IsEmpty() bool {
	return iv.hasStart && iv.beyond(iv.start, iv.end, iv.hasEnd, iv.exclusiveEnd)
}

// String renders the interval in range literal form, e.g. "10...20" or "..5".
func (iv Interval[T]) String() string {
	var b strings.Builder
	if iv.hasStart {
		fmt.Fprint(&b, iv.start)
	}
	if iv.exclusiveEnd {
		b.WriteString("...")
	} else {
		b.WriteString("..")
	}
	if iv.hasEnd {
		fmt.Fprint(&b, iv.end)
	}
	return b.String()
}

func (iv Interval[T]) bounds() enumerable.Bounds[T] {
	return enumerable.Bounds[T]{
		Start:      iv.start,
		End:        iv.end,
		HasStart:   iv.hasStart,
		HasEnd:     iv.hasEnd,
		ExcludeEnd: iv.exclusiveEnd,
		Domain:     iv.dom,
	}
}

func (iv Interval[T]) enumerator() enumerable.Enumerator[T] {
	if iv.enum == nil {
		return enumerable.Lazy[T]{}
	}
	return iv.enum
}

// natural returns the domain order, or nil for a zero Interval.
func (iv Interval[T]) natural() core.Comparator[T] {
	if iv.dom == nil {
		return nil
	}
	return iv.dom.Compare
}
