package commands

import (
	"strconv"

	"github.com/leapstack-labs/leaprange/internal/cli/output"
	"github.com/leapstack-labs/leaprange/internal/eval"
	"github.com/leapstack-labs/leaprange/internal/literal"
)

// lineResult is one evaluated expression of the eval command.
type lineResult struct {
	Expr        string `json:"expr" yaml:"expr"`
	eval.Result `yaml:",inline"`
}

func renderResult(r *output.Renderer, res eval.Result) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(res)
	case output.ModeYAML:
		return r.YAML(res)
	case output.ModeTable, output.ModeMarkdown:
		r.Header(2, res.Interval+" "+res.Op)
		if res.Kind == eval.KindList {
			r.Table([]string{"index", "value"}, listRows(res))
			return nil
		}
		r.Table([]string{"range", "op", "result"}, [][]string{{res.Interval, res.Op, res.Text()}})
		return nil
	default:
		r.Println(styledText(r, res))
		return nil
	}
}

func renderLines(r *output.Renderer, lines []lineResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(lines)
	case output.ModeYAML:
		return r.YAML(lines)
	case output.ModeTable, output.ModeMarkdown:
		rows := make([][]string, len(lines))
		for i, l := range lines {
			rows[i] = []string{l.Expr, string(l.Kind), l.Text()}
		}
		r.Table([]string{"expression", "kind", "result"}, rows)
		return nil
	default:
		if len(lines) == 1 {
			r.Println(styledText(r, lines[0].Result))
			return nil
		}
		for _, l := range lines {
			r.Printf("%s %s %s\n", l.Expr, r.Muted("=>"), styledText(r, l.Result))
		}
		return nil
	}
}

func listRows(res eval.Result) [][]string {
	rows := make([][]string, len(res.Values))
	for i, v := range res.Values {
		rows[i] = []string{strconv.Itoa(i), literal.FormatElement(v)}
	}
	return rows
}

// styledText colors a result for text mode. Styles are no-ops without a TTY.
func styledText(r *output.Renderer, res eval.Result) string {
	styles := r.Styles()
	switch res.Kind {
	case eval.KindAbsent:
		return styles.Muted.Render(res.Text())
	case eval.KindBool:
		if hit, _ := res.Values[0].(bool); hit {
			return styles.Success.Render(res.Text())
		}
		return styles.Warning.Render(res.Text())
	default:
		return styles.Value.Render(res.Text())
	}
}
