// Package literal parses range literals such as 10..20, 10...20, ..5, 3..
// and 'a'..'e' into interval values.
package literal

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/domain"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
	"github.com/leapstack-labs/leaprange/pkg/interval"
)

// Kind is the element kind of a parsed interval.
type Kind int

// Element kinds. KindAuto is only meaningful as a Parser hint.
const (
	KindAuto Kind = iota
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "auto"
	}
}

// ParseKind converts a configuration value to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindAuto, true
	case "int", "integer":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "string", "str":
		return KindString, true
	default:
		return KindAuto, false
	}
}

// Value is a parsed interval. Exactly one of Int, Float and Str is set,
// selected by Kind.
type Value struct {
	Kind  Kind
	Int   interval.Interval[int64]
	Float interval.Interval[float64]
	Str   interval.Interval[string]

	p Parser
}

// Interval returns the populated interval as an untyped value.
func (v Value) Interval() any {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	default:
		return v.Int
	}
}

// AsFloat converts an integer value to the equivalent float value. Float
// values are returned unchanged. It reports false for strings.
func (v Value) AsFloat() (Value, bool) {
	switch v.Kind {
	case KindFloat:
		return v, true
	case KindInt:
		start, hasStart := v.Int.Begin()
		end, hasEnd := v.Int.End()
		b := enumerable.Bounds[float64]{
			Start:      float64(start),
			End:        float64(end),
			HasStart:   hasStart,
			HasEnd:     hasEnd,
			ExcludeEnd: v.Int.ExcludeEnd(),
			Domain:     domain.Floats[float64](),
		}
		return Value{Kind: KindFloat, Float: interval.FromBounds(b, withLimit[float64](v.p)), p: v.p}, true
	default:
		return v, false
	}
}

// String renders the value back in literal form, quoting string endpoints.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		return render(v.Float)
	case KindString:
		return render(v.Str)
	default:
		return render(v.Int)
	}
}

func render[T any](iv interval.Interval[T]) string {
	var b strings.Builder
	if s, ok := iv.Begin(); ok {
		b.WriteString(FormatElement(s))
	}
	if iv.ExcludeEnd() {
		b.WriteString("...")
	} else {
		b.WriteString("..")
	}
	if e, ok := iv.End(); ok {
		b.WriteString(FormatElement(e))
	}
	return b.String()
}

// FormatElement renders a single element the way it is written in a
// literal: strings single-quoted, integral floats with a trailing ".0".
func FormatElement(v any) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e16 {
			return strconv.FormatFloat(x, 'f', 1, 64)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprint(v)
	}
}

// Parser turns literals into Values. The zero Parser infers the element
// kind from the endpoints and places no limit on enumeration.
type Parser struct {
	// Kind forces the element kind. KindAuto infers it.
	Kind Kind
	// Limit is passed to the enumerator of every parsed interval.
	Limit int
	// Logger is passed to the enumerator of every parsed interval.
	Logger *slog.Logger
}

// Parse parses s with the zero Parser.
func Parse(s string) (Value, error) {
	return Parser{}.Parse(s)
}

// IsScalar reports whether s is a single element literal, such as 7, 1.5
// or 'a', rather than a range.
func IsScalar(s string) bool {
	src := strings.TrimSpace(s)
	if at, _ := findOperator(src); at >= 0 {
		return false
	}
	e, err := parseEndpoint(src)
	return err == nil && !e.absent
}

type endpoint struct {
	raw    string
	kind   Kind
	i      int64
	f      float64
	s      string
	absent bool
}

// Parse parses a range literal. Surrounding parentheses are ignored.
func (p Parser) Parse(s string) (Value, error) {
	src := strings.TrimSpace(s)
	for len(src) >= 2 && src[0] == '(' && src[len(src)-1] == ')' {
		src = strings.TrimSpace(src[1 : len(src)-1])
	}

	at, width := findOperator(src)
	if at < 0 {
		return Value{}, core.Errorf(core.ErrInvalidArgument, "parse", "%q is not a range literal", s)
	}
	exclusive := width == 3

	lo, err := parseEndpoint(strings.TrimSpace(src[:at]))
	if err != nil {
		return Value{}, err
	}
	hi, err := parseEndpoint(strings.TrimSpace(src[at+width:]))
	if err != nil {
		return Value{}, err
	}

	kind, err := p.resolveKind(lo, hi)
	if err != nil {
		return Value{}, err
	}

	switch kind {
	case KindString:
		return Value{Kind: KindString, Str: build(p, domain.Strings(), lo.asString(), hi.asString(), lo, hi, exclusive), p: p}, nil
	case KindFloat:
		return Value{Kind: KindFloat, Float: build(p, domain.Floats[float64](), lo.f, hi.f, lo, hi, exclusive), p: p}, nil
	default:
		return Value{Kind: KindInt, Int: build(p, domain.Integers[int64](), lo.i, hi.i, lo, hi, exclusive), p: p}, nil
	}
}

func (p Parser) resolveKind(lo, hi endpoint) (Kind, error) {
	switch p.Kind {
	case KindString:
		return KindString, nil
	case KindFloat:
		if lo.kind == KindString || hi.kind == KindString {
			return 0, core.Errorf(core.ErrInvalidArgument, "parse", "bad value for range: string endpoint in float range")
		}
		return KindFloat, nil
	case KindInt:
		if lo.kind == KindString || hi.kind == KindString || lo.kind == KindFloat || hi.kind == KindFloat {
			return 0, core.Errorf(core.ErrInvalidArgument, "parse", "bad value for range: %s and %s endpoints in int range", lo.kind, hi.kind)
		}
		return KindInt, nil
	}

	kinds := []Kind{}
	for _, e := range []endpoint{lo, hi} {
		if !e.absent {
			kinds = append(kinds, e.kind)
		}
	}
	switch {
	case len(kinds) == 0:
		return KindInt, nil
	case len(kinds) == 1 || kinds[0] == kinds[1]:
		return kinds[0], nil
	case kinds[0] != KindString && kinds[1] != KindString:
		return KindFloat, nil
	default:
		return 0, core.Errorf(core.ErrInvalidArgument, "parse", "bad value for range: %s and %s endpoints", kinds[0], kinds[1])
	}
}

func build[T any](p Parser, dom core.Domain[T], lo, hi T, l, h endpoint, exclusive bool) interval.Interval[T] {
	b := enumerable.Bounds[T]{
		Start:      lo,
		End:        hi,
		HasStart:   !l.absent,
		HasEnd:     !h.absent,
		ExcludeEnd: exclusive,
		Domain:     dom,
	}
	return interval.FromBounds(b, withLimit[T](p))
}

func withLimit[T any](p Parser) interval.Option[T] {
	return interval.WithEnumerator[T](enumerable.Lazy[T]{Limit: p.Limit, Logger: p.Logger})
}

// findOperator returns the index and width (2 or 3) of the first .. or ...
// outside quotes, or -1.
func findOperator(s string) (int, int) {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '.' && i+1 < len(s) && s[i+1] == '.':
			if i+2 < len(s) && s[i+2] == '.' {
				return i, 3
			}
			return i, 2
		}
	}
	return -1, 0
}

func parseEndpoint(raw string) (endpoint, error) {
	e := endpoint{raw: raw}
	if raw == "" || raw == "nil" {
		e.absent = true
		return e, nil
	}

	if raw[0] == '\'' || raw[0] == '"' {
		if len(raw) < 2 || raw[len(raw)-1] != raw[0] {
			return e, core.Errorf(core.ErrInvalidArgument, "parse", "unterminated string %s", raw)
		}
		e.kind = KindString
		if raw[0] == '"' {
			s, err := strconv.Unquote(raw)
			if err != nil {
				return e, core.Errorf(core.ErrInvalidArgument, "parse", "invalid string %s: %v", raw, err)
			}
			e.s = s
		} else {
			e.s = strings.ReplaceAll(raw[1:len(raw)-1], `\'`, `'`)
		}
		return e, nil
	}

	digits := strings.ReplaceAll(raw, "_", "")
	if i, err := strconv.ParseInt(digits, 10, 64); err == nil {
		e.kind, e.i, e.f = KindInt, i, float64(i)
		return e, nil
	}
	if f, err := strconv.ParseFloat(digits, 64); err == nil && !math.IsNaN(f) {
		e.kind, e.f = KindFloat, f
		return e, nil
	}
	return e, core.Errorf(core.ErrInvalidArgument, "parse", "bad range endpoint %q", raw)
}

func (e endpoint) asString() string {
	if e.kind == KindString {
		return e.s
	}
	return e.raw
}
