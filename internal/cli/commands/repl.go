package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leaprange/internal/cli/output"
	"github.com/leapstack-labs/leaprange/internal/eval"
	"github.com/leapstack-labs/leaprange/internal/literal"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive range shell",
		Long: `Start an interactive shell that evaluates one range expression per line.

Both the word form and the method form are accepted:

  leaprange> 1..10 last 3
  [8, 9, 10]
  leaprange> (1..5).overlap?(4..6)
  true
  leaprange> (1..10).max { b - a }
  1

Type .help for the dot-commands.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	cmd.Flags().String("history", "", "History file (default: ~/.leaprange_history)")
	cmd.Flags().String("prompt", "", "Prompt string")
	return cmd
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	s := newSession(cc, cmd.OutOrStdout(), cmd.ErrOrStderr())

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cc.Cfg.REPL.Prompt,
		HistoryFile:     cc.Cfg.REPL.HistoryFile,
		AutoComplete:    newOpCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "leaprange REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if quit := s.handle(line); quit {
			break
		}
	}
	return nil
}

// session is the REPL state that outlives a single line.
type session struct {
	eval   *eval.Evaluator
	mode   output.OutputMode
	out    io.Writer
	errOut io.Writer
	r      *output.Renderer
}

func newSession(cc *CommandContext, out, errOut io.Writer) *session {
	return &session{
		eval:   cc.Evaluator,
		mode:   output.Mode(cc.Cfg.Output),
		out:    out,
		errOut: errOut,
		r:      cc.Renderer,
	}
}

// handle evaluates one line and reports whether the session should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}
	if strings.HasPrefix(line, ".") {
		return s.dotCommand(line)
	}

	res, err := s.eval.EvalLine(line)
	if err != nil {
		s.r.Error(err.Error())
		return false
	}
	if err := renderResult(s.r, res); err != nil {
		s.r.Error(err.Error())
	}
	return false
}

func (s *session) dotCommand(line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".domain":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "domain: %s\n", s.eval.Parser.Kind)
			break
		}
		kind, ok := literal.ParseKind(arg)
		if !ok {
			s.r.Error(fmt.Sprintf("unknown domain %q (auto|int|float|string)", arg))
			break
		}
		s.eval.Parser.Kind = kind

	case ".limit":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "limit: %d\n", s.eval.Parser.Limit)
			break
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			s.r.Error(fmt.Sprintf("limit must be a non-negative integer, got %q", arg))
			break
		}
		s.eval.Parser.Limit = n

	case ".output":
		if arg == "" {
			_, _ = fmt.Fprintf(s.out, "output: %s\n", s.mode)
			break
		}
		mode := output.Mode(arg)
		if mode == output.ModeAuto && !strings.EqualFold(arg, string(output.ModeAuto)) {
			s.r.Error(fmt.Sprintf("unknown output mode %q (%s)", arg, strings.Join(output.ModeNames(), "|")))
			break
		}
		s.mode = mode
		s.r = output.NewRendererWithTTY(s.out, s.errOut, s.r.IsTTY(), mode)

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help             Show this help message
  .domain [kind]    Show or set the literal domain (auto|int|float|string)
  .limit [n]        Show or set the enumeration limit (0 for none)
  .output [mode]    Show or set the output mode
  .quit / .exit     Exit the REPL

Expressions:
  <range> <op> [args] [--by expr]    e.g. 1..10 first 3
  (<range>).<op>(args) { expr }      e.g. (1..10).max { b - a }

Operations: ` + strings.Join(eval.Ops, ", ") + `
`
	_, _ = fmt.Fprintln(w, help)
}

// newOpCompleter completes dot-commands and the method form's operation names.
func newOpCompleter() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".domain", readline.PcItem("auto"), readline.PcItem("int"), readline.PcItem("float"), readline.PcItem("string")),
		readline.PcItem(".limit"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}
	modes := make([]readline.PrefixCompleterInterface, 0, len(output.Modes))
	for _, m := range output.ModeNames() {
		modes = append(modes, readline.PcItem(m))
	}
	items = append(items, readline.PcItem(".output", modes...))
	return readline.NewPrefixCompleter(items...)
}
