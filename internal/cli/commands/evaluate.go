package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>... | -",
		Short: "Evaluate range expressions non-interactively",
		Long: `Evaluate one expression per argument, in the same syntax the REPL accepts.

With - as the only argument, expressions are read from standard input, one per
line. Blank lines and lines starting with # are skipped.

Every expression is evaluated even when an earlier one fails; failures are
reported on stderr and the command exits non-zero.`,
		Example: `  leaprange eval '1..10 first 3' '(1..5).overlap?(4..6)'
  leaprange eval '(1..10).max { a % 3 - b % 3 }' -o json
  printf '1..3 max\n0...0 min\n' | leaprange eval -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if len(args) == 1 && args[0] == "-" {
				var err error
				if exprs, err = readExprs(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read expressions: %w", err)
				}
			}
			return runEval(cmd, exprs)
		},
	}
}

func readExprs(r io.Reader) ([]string, error) {
	var exprs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, sc.Err()
}

func runEval(cmd *cobra.Command, exprs []string) error {
	cc := NewCommandContext(cmd)

	var (
		lines []lineResult
		errs  []error
	)
	for _, expr := range exprs {
		res, err := cc.Evaluator.EvalLine(expr)
		if err != nil {
			cc.Renderer.Error(fmt.Sprintf("%s: %v", expr, err))
			errs = append(errs, err)
			continue
		}
		lines = append(lines, lineResult{Expr: expr, Result: res})
	}

	if len(lines) > 0 {
		if err := renderLines(cc.Renderer, lines); err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d expressions failed: %w", len(errs), len(exprs), errors.Join(errs...))
	}
	return nil
}
