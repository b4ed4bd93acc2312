package eval

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/leaprange/pkg/core"
)

// Call is one parsed expression line.
type Call struct {
	Range string
	Op    string
	Args  []string
	By    string
}

// EvalLine parses and evaluates one expression. Two forms are accepted:
//
//	1..10 last 3
//	1..10 max --by 'b - a'
//	(1..5).overlap?(4..6)
//	(10...20).last(3)
//	(1..10).max { b - a }
func (e *Evaluator) EvalLine(line string) (Result, error) {
	call, err := ParseLine(line)
	if err != nil {
		return Result{}, err
	}
	recv, err := e.Parser.Parse(call.Range)
	if err != nil {
		return Result{}, err
	}
	return e.Eval(call.Op, recv, call.Args, call.By)
}

// ParseLine splits an expression line into its parts without evaluating it.
func ParseLine(line string) (Call, error) {
	src := strings.TrimSpace(line)
	if src == "" {
		return Call{}, core.Errorf(core.ErrInvalidArgument, "eval", "empty expression")
	}
	if src[0] == '(' {
		if call, ok, err := parseMethod(src); ok || err != nil {
			return call, err
		}
	}
	return parseWords(src)
}

// parseMethod handles (range).op(args) { by }. It reports false when src is
// not in method form, e.g. "(1..3) first".
func parseMethod(src string) (Call, bool, error) {
	closeAt := matching(src, 0)
	if closeAt < 0 {
		return Call{}, false, core.Errorf(core.ErrInvalidArgument, "eval", "unbalanced parentheses in %q", src)
	}
	rest := src[closeAt+1:]
	if !strings.HasPrefix(rest, ".") {
		return Call{}, false, nil
	}
	call := Call{Range: src[1:closeAt]}

	rest = rest[1:]
	i := 0
	for i < len(rest) && (unicode.IsLetter(rune(rest[i])) || rest[i] == '_' || rest[i] == '?') {
		i++
	}
	call.Op, rest = rest[:i], strings.TrimSpace(rest[i:])
	if call.Op == "" {
		return Call{}, true, core.Errorf(core.ErrInvalidArgument, "eval", "missing method name in %q", src)
	}

	if strings.HasPrefix(rest, "(") {
		end := matching(rest, 0)
		if end < 0 {
			return Call{}, true, core.Errorf(core.ErrInvalidArgument, "eval", "unbalanced parentheses in %q", src)
		}
		call.Args = splitArgs(rest[1:end])
		rest = strings.TrimSpace(rest[end+1:])
	}

	if strings.HasPrefix(rest, "{") {
		if !strings.HasSuffix(rest, "}") {
			return Call{}, true, core.Errorf(core.ErrInvalidArgument, "eval", "unterminated block in %q", src)
		}
		call.By = strings.TrimSpace(rest[1 : len(rest)-1])
		rest = ""
	}
	if rest != "" {
		return Call{}, true, core.Errorf(core.ErrInvalidArgument, "eval", "unexpected %q after %s", rest, call.Op)
	}
	return call, true, nil
}

// parseWords handles "range op args... [--by expr]".
func parseWords(src string) (Call, error) {
	words := fields(src)
	if len(words) < 2 {
		return Call{}, core.Errorf(core.ErrInvalidArgument, "eval", "expected <range> <op> [args], got %q", src)
	}
	call := Call{Range: words[0], Op: words[1]}
	for i := 2; i < len(words); i++ {
		w := words[i]
		switch {
		case w == "--by":
			if i+1 >= len(words) {
				return Call{}, core.Errorf(core.ErrInvalidArgument, "eval", "--by needs an expression")
			}
			i++
			call.By = unquote(words[i])
		case strings.HasPrefix(w, "--by="):
			call.By = unquote(strings.TrimPrefix(w, "--by="))
		default:
			call.Args = append(call.Args, w)
		}
	}
	return call, nil
}

// matching returns the index of the parenthesis closing the one at open,
// skipping quoted text, or -1.
func matching(s string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
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
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitArgs splits on top-level commas.
func splitArgs(s string) []string {
	var (
		out   []string
		depth int
		quote byte
		start int
	)
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
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			out = append(out, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(out) > 0 {
		out = append(out, last)
	}
	return out
}

// fields splits on whitespace outside quotes. Quotes are kept.
func fields(s string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote byte
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				cur.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return out
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
