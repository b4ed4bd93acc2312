// Package comparator compiles Starlark expressions into element comparators
// for min --by and max --by.
//
// The expression sees the two elements as a and b. An int result orders by
// its sign; a bool result is read as "a sorts before b".
//
//	b - a          reverse numeric order
//	len(a) - len(b)
//	a % 10 < b % 10
package comparator

import (
	"fmt"
	"sync"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const filename = "<by>"

// Func is a compiled comparator. Its Compare method satisfies
// core.Comparator. Compare cannot fail, so the first evaluation error is
// recorded and returned by Err; every later call returns 0.
type Func[T any] struct {
	expr string
	conv func(T) starlark.Value

	mu  sync.Mutex
	err error
}

// Compile checks the syntax of expr and returns a comparator that converts
// elements with conv.
func Compile[T any](expr string, conv func(T) starlark.Value) (*Func[T], error) {
	if _, err := syntax.ParseExpr(filename, expr, 0); err != nil { //nolint:staticcheck // SA1019: will migrate to FileOptions later
		return nil, core.Errorf(core.ErrInvalidArgument, "by", "invalid comparison expression %q: %v", expr, err)
	}
	return &Func[T]{expr: expr, conv: conv}, nil
}

// Compare orders a and b.
func (f *Func[T]) Compare(a, b T) int {
	if f.Err() != nil {
		return 0
	}

	v, err := f.eval(a, b)
	if err != nil {
		f.fail(err)
		return 0
	}

	switch r := v.(type) {
	case starlark.Int:
		return r.Sign()
	case starlark.Bool:
		if r {
			return -1
		}
		// a does not come before b; either b comes before a or they tie
		w, err := f.eval(b, a)
		if err != nil {
			f.fail(err)
			return 0
		}
		if rev, ok := w.(starlark.Bool); ok && bool(rev) {
			return 1
		}
		return 0
	default:
		f.fail(fmt.Errorf("comparison of %s with %s failed: expression returned %s, want int or bool",
			f.conv(a), f.conv(b), v.Type()))
		return 0
	}
}

// Err returns the first evaluation error, if any.
func (f *Func[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Comparator returns Compare as a core.Comparator.
func (f *Func[T]) Comparator() core.Comparator[T] {
	return f.Compare
}

func (f *Func[T]) eval(a, b T) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name:  filename,
		Print: func(_ *starlark.Thread, _ string) {},
	}
	globals := starlark.StringDict{
		"a": f.conv(a),
		"b": f.conv(b),
	}
	return starlark.Eval(thread, filename, f.expr, globals) //nolint:staticcheck // SA1019: will migrate to EvalOptions later
}

func (f *Func[T]) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = core.Errorf(core.ErrTypeMismatch, "by", "%v", err)
	}
}

// Int64 converts an integer element.
func Int64(v int64) starlark.Value { return starlark.MakeInt64(v) }

// Float64 converts a float element.
func Float64(v float64) starlark.Value { return starlark.Float(v) }

// String converts a string element.
func String(v string) starlark.Value { return starlark.String(v) }
