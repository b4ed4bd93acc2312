package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/leaprange/pkg/core"
)

type stringsDomain struct{}

// Strings returns the generic domain of strings. Strings are ordered
// byte-wise and step through the alphanumeric successor: the rightmost
// letter or digit is incremented, carrying to the left ("az" -> "ba",
// "zz" -> "aaa", "a9" -> "b0"). A string with no letters or digits
// increments its final rune.
//
// Walking a string interval stops once the value grows longer than the
// upper bound, so "a".."zz" visits every one and two letter string.
func Strings() core.Domain[string] { return stringsDomain{} }

func (stringsDomain) Name() string                 { return "string" }
func (stringsDomain) Class() core.Class            { return core.ClassGeneric }
func (stringsDomain) Compare(a, b string) int      { return strings.Compare(a, b) }
func (stringsDomain) Pred(v string) (string, bool) { return v, false }
func (stringsDomain) Succ(v string) (string, bool) { return Successor(v), v != "" }
func (stringsDomain) Past(v, end string) bool      { return len(v) > len(end) }

// Successor returns the alphanumeric successor of s. The empty string has
// no successor and is returned unchanged.
func Successor(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)

	last := -1
	for i := len(b) - 1; i >= 0; i-- {
		if isAlnum(b[i]) {
			last = i
			break
		}
	}
	if last < 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		return s[:len(s)-size] + string(r+1)
	}

	i := last
	for {
		next, carry := stepAlnum(b[i])
		b[i] = next
		if !carry {
			return string(b)
		}
		j := i - 1
		for j >= 0 && !isAlnum(b[j]) {
			j--
		}
		if j < 0 {
			// overflowed the leftmost alnum: insert a new leading digit/letter
			var lead byte
			switch {
			case next == '0':
				lead = '1'
			case next == 'a':
				lead = 'a'
			default:
				lead = 'A'
			}
			out := make([]byte, 0, len(b)+1)
			out = append(out, b[:i]...)
			out = append(out, lead)
			out = append(out, b[i:]...)
			return string(out)
		}
		i = j
	}
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// stepAlnum increments one alphanumeric byte, reporting a carry on wrap.
func stepAlnum(c byte) (byte, bool) {
	switch c {
	case '9':
		return '0', true
	case 'z':
		return 'a', true
	case 'Z':
		return 'A', true
	default:
		return c + 1, false
	}
}
