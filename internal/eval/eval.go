// Package eval dispatches range operations by name. It backs the CLI
// subcommands, the eval command and the REPL.
package eval

import (
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leaprange/internal/comparator"
	"github.com/leapstack-labs/leaprange/internal/literal"
	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/interval"
	"go.starlark.net/starlark"
)

// Kind classifies a Result.
type Kind string

// Result kinds.
const (
	KindScalar Kind = "scalar"
	KindList   Kind = "list"
	KindBool   Kind = "bool"
	KindAbsent Kind = "absent"
)

// Result is the outcome of one operation.
type Result struct {
	Op       string `json:"op" yaml:"op"`
	Interval string `json:"range" yaml:"range"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	// Values holds one element for scalar and bool results and every
	// element for list results. Elements are int64, float64, string or bool.
	Values []any `json:"values" yaml:"values"`
}

// Text renders the result the way the REPL prints it.
func (r Result) Text() string {
	switch r.Kind {
	case KindAbsent:
		return "nil"
	case KindList:
		parts := make([]string, len(r.Values))
		for i, v := range r.Values {
			parts[i] = literal.FormatElement(v)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		if len(r.Values) == 0 {
			return "nil"
		}
		return literal.FormatElement(r.Values[0])
	}
}

// Ops lists the operation names Eval accepts.
var Ops = []string{"first", "last", "min", "max", "overlap"}

// Evaluator runs operations against parsed literals.
type Evaluator struct {
	// Parser parses literal arguments such as the other range of overlap.
	Parser literal.Parser
	Logger *slog.Logger
}

// New returns an Evaluator that parses with p.
func New(p literal.Parser, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{Parser: p, Logger: logger}
}

// Eval applies op to recv. args are the raw operation arguments; by is an
// optional comparison expression for min and max.
func (e *Evaluator) Eval(op string, recv literal.Value, args []string, by string) (Result, error) {
	op = canonical(op)
	e.logger().Debug("evaluating", "op", op, "range", recv.String(), "args", args, "by", by)

	if by != "" && op != "min" && op != "max" {
		return Result{}, core.Errorf(core.ErrInvalidArgument, op, "a comparison expression is only accepted by min and max")
	}

	var (
		res Result
		err error
	)
	switch recv.Kind {
	case literal.KindFloat:
		res, err = apply(e, op, recv.Float, args, by, comparator.Float64, otherFloat)
	case literal.KindString:
		res, err = apply(e, op, recv.Str, args, by, comparator.String, literal.Value.Interval)
	default:
		if op == "overlap" && len(args) == 1 {
			if other, perr := e.Parser.Parse(args[0]); perr == nil && other.Kind == literal.KindFloat {
				// int receiver against a float range compares as floats
				f, _ := recv.AsFloat()
				res, err = apply(e, op, f.Float, args, by, comparator.Float64, otherFloat)
				break
			}
		}
		res, err = apply(e, op, recv.Int, args, by, comparator.Int64, literal.Value.Interval)
	}
	if err != nil {
		return Result{}, err
	}
	res.Op = op
	res.Interval = recv.String()
	return res, nil
}

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func canonical(op string) string {
	op = strings.ToLower(strings.TrimSpace(op))
	return strings.TrimSuffix(op, "?")
}

// otherFloat extracts an overlap argument for a float receiver, widening
// integer ranges. Other receivers pass the argument through untyped so that
// OverlapsValue reports a kind mismatch.
func otherFloat(v literal.Value) any {
	if f, ok := v.AsFloat(); ok {
		return f.Float
	}
	return v.Interval()
}

func apply[T any](e *Evaluator, op string, iv interval.Interval[T], args []string, by string,
	conv func(T) starlark.Value, other func(literal.Value) any,
) (Result, error) {
	switch op {
	case "first", "last":
		if len(args) > 1 {
			return Result{}, arity(op, len(args), "0..1")
		}
		if len(args) == 0 {
			var v T
			var err error
			if op == "first" {
				v, err = iv.First()
			} else {
				v, err = iv.Last()
			}
			if err != nil {
				return Result{}, err
			}
			return scalar(v), nil
		}
		n, err := interval.Count(args[0])
		if err != nil {
			return Result{}, err
		}
		var vs []T
		if op == "first" {
			vs, err = iv.FirstN(n)
		} else {
			vs, err = iv.LastN(n)
		}
		if err != nil {
			return Result{}, err
		}
		return list(vs), nil

	case "min", "max":
		if len(args) > 0 {
			return Result{}, arity(op, len(args), "0")
		}
		var cmp core.Comparator[T]
		var fn *comparator.Func[T]
		if by != "" {
			var err error
			if fn, err = comparator.Compile(by, conv); err != nil {
				return Result{}, err
			}
			cmp = fn.Comparator()
		}
		var (
			v   T
			ok  bool
			err error
		)
		if op == "max" {
			v, ok, err = iv.Max(cmp)
		} else {
			v, ok, err = iv.Min(cmp)
		}
		if err != nil {
			return Result{}, err
		}
		if fn != nil && fn.Err() != nil {
			return Result{}, fn.Err()
		}
		if !ok {
			return Result{Kind: KindAbsent, Values: []any{}}, nil
		}
		return scalar(v), nil

	case "overlap":
		if len(args) != 1 {
			return Result{}, arity(op, len(args), "1")
		}
		o, err := e.Parser.Parse(args[0])
		if err != nil {
			if literal.IsScalar(args[0]) {
				return Result{}, core.Errorf(core.ErrTypeMismatch, op, "argument must be a range, got %s", args[0])
			}
			return Result{}, err
		}
		hit, err := iv.OverlapsValue(other(o))
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindBool, Values: []any{hit}}, nil
	}

	return Result{}, core.Errorf(core.ErrInvalidArgument, op, "undefined method '%s' for range, expected one of %s", op, strings.Join(Ops, ", "))
}

func arity(op string, given int, expected string) error {
	return core.Errorf(core.ErrInvalidArgument, op, "wrong number of arguments (given %d, expected %s)", given, expected)
}

func scalar[T any](v T) Result {
	return Result{Kind: KindScalar, Values: []any{v}}
}

func list[T any](vs []T) Result {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return Result{Kind: KindList, Values: out}
}
