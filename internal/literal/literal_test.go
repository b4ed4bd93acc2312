package literal

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/leapstack-labs/leaprange/pkg/enumerable"
	"github.com/leapstack-labs/leaprange/pkg/interval"
)

func TestParse_Shapes(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		want string
	}{
		{"1..10", KindInt, "1..10"},
		{"1...10", KindInt, "1...10"},
		{"(10..20)", KindInt, "10..20"},
		{"((-3..-1))", KindInt, "-3..-1"},
		{"..5", KindInt, "..5"},
		{"...5", KindInt, "...5"},
		{"3..", KindInt, "3.."},
		{"..", KindInt, ".."},
		{"...", KindInt, "..."},
		{"nil..4", KindInt, "..4"},
		{"1_000..2_000", KindInt, "1000..2000"},
		{" 1 .. 3 ", KindInt, "1..3"},
		{"1.5..2.5", KindFloat, "1.5..2.5"},
		{"1..2.5", KindFloat, "1.0..2.5"},
		{"2e3..", KindFloat, "2000.0.."},
		{"'a'..'e'", KindString, "'a'..'e'"},
		{`"aa"..."az"`, KindString, "'aa'...'az'"},
		{"'a..b'..'c'", KindString, "'a..b'..'c'"},
		{"..'z'", KindString, "..'z'"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, v.Kind)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParse_Endpoints(t *testing.T) {
	v, err := Parse("-3...7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	start, ok := v.Int.Begin()
	if !ok || start != -3 {
		t.Errorf("expected start -3, got %d (present=%v)", start, ok)
	}
	end, ok := v.Int.End()
	if !ok || end != 7 {
		t.Errorf("expected end 7, got %d (present=%v)", end, ok)
	}
	if !v.Int.ExcludeEnd() {
		t.Error("expected exclusive end")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []string{
		"",
		"5",
		"abc",
		"1..x",
		"'a'..3",
		"1.5..'b'",
		"'abc..'d'",
		`"a\q".."b"`,
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("expected error for %q", in)
			}
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestIsScalar(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"7", true},
		{" -1.5 ", true},
		{"'a'", true},
		{`"a..b"`, true},
		{"1..5", false},
		{"..", false},
		{"", false},
		{"nil", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		if got := IsScalar(tt.in); got != tt.want {
			t.Errorf("IsScalar(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParser_ForcedKind(t *testing.T) {
	v, err := Parser{Kind: KindString}.Parse("1..10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindString {
		t.Fatalf("expected string kind, got %s", v.Kind)
	}
	if got := v.String(); got != "'1'..'10'" {
		t.Errorf("expected '1'..'10', got %s", got)
	}

	v, err = Parser{Kind: KindFloat}.Parse("1..3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindFloat || v.String() != "1.0..3.0" {
		t.Errorf("expected float 1.0..3.0, got %s %s", v.Kind, v)
	}

	if _, err := (Parser{Kind: KindInt}).Parse("1..2.5"); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected InvalidArgument for float endpoint in int range, got %v", err)
	}
	if _, err := (Parser{Kind: KindFloat}).Parse("'a'..'b'"); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("expected InvalidArgument for string endpoint in float range, got %v", err)
	}
}

func TestParser_LimitReachesEnumerator(t *testing.T) {
	v, err := Parser{Limit: 10}.Parse("1..")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err = v.Int.Max(func(a, b int64) int { return int(a - b) })
	if !errors.Is(err, enumerable.ErrLimitExceeded) {
		t.Errorf("expected limit error, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"", KindAuto, true},
		{"auto", KindAuto, true},
		{"INT", KindInt, true},
		{"integer", KindInt, true},
		{"float", KindFloat, true},
		{"str", KindString, true},
		{"string", KindString, true},
		{"decimal", KindAuto, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = %s, %v; want %s, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatElement(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{int64(-4), "-4"},
		{2.0, "2.0"},
		{2.5, "2.5"},
		{1e20, "1e+20"},
		{"az", "'az'"},
		{"it's", `'it\'s'`},
		{true, "true"},
	}

	for _, tt := range tests {
		if got := FormatElement(tt.in); got != tt.want {
			t.Errorf("FormatElement(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValue_AsFloat(t *testing.T) {
	v, err := Parse("1...4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := v.AsFloat()
	if !ok {
		t.Fatal("expected int value to convert")
	}
	if f.Kind != KindFloat || f.String() != "1.0...4.0" {
		t.Errorf("expected float 1.0...4.0, got %s %s", f.Kind, f)
	}
	if _, isFloat := f.Interval().(interval.Interval[float64]); !isFloat {
		t.Errorf("expected Interval() to hold a float64 interval, got %T", f.Interval())
	}

	s, err := Parse("'a'..'c'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.AsFloat(); ok {
		t.Error("expected string value not to convert")
	}
}
