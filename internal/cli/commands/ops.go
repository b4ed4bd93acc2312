package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type opCommand struct {
	op      string
	use     string
	short   string
	long    string
	example string
	by      bool
}

var opCommands = []opCommand{
	{
		op:    "first",
		use:   "first <range> [n]",
		short: "Print the first element, or the first n elements",
		long: `Print the first element of a range, or an array of its first n elements.

first without n works on any range with a beginning. first n enumerates, so
the range must also be discrete (integers or strings).`,
		example: `  leaprange first 1..10
  leaprange first 1..10 3
  leaprange first "'a'..'e'" 2`,
	},
	{
		op:    "last",
		use:   "last <range> [n]",
		short: "Print the last element, or the last n elements",
		long: `Print the end of a range, or an array of its last n elements.

last without n returns the end value as written, even for exclusive ranges.
last n enumerates, so the range must be bounded and discrete.`,
		example: `  leaprange last 10...20
  leaprange last 10...20 3`,
	},
	{
		op:    "min",
		use:   "min <range>",
		short: "Print the smallest element",
		long: `Print the smallest element of a range, or nil when the range is empty.

--by takes a Starlark expression over a and b that orders two elements. An
integer result orders by its sign; a boolean result means a sorts before b.`,
		example: `  leaprange min 1...10
  leaprange min 1..10 --by 'b - a'`,
		by: true,
	},
	{
		op:    "max",
		use:   "max <range>",
		short: "Print the largest element",
		long: `Print the largest element of a range, or nil when the range is empty.

Integer ranges are answered arithmetically. --by, non-integer exclusive ends
and endless ranges that must be enumerated are the exceptions; see min for
the comparison expression.`,
		example: `  leaprange max 1...10
  leaprange max 1.5..3.5
  leaprange max 1..10 --by 'a % 3 - b % 3'`,
		by: true,
	},
	{
		op:    "overlap",
		use:   "overlap <range> <range>",
		short: "Report whether two ranges share an element",
		long: `Report whether two ranges overlap.

Both ranges must have the same element kind; an integer range compared with a
float range is widened to floats. Empty ranges never overlap.`,
		example: `  leaprange overlap 1..5 4..6
  leaprange overlap 1...5 5..6`,
	},
}

// NewOpCommands creates one command per range operation.
func NewOpCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(opCommands))
	for _, oc := range opCommands {
		cmds = append(cmds, newOpCommand(oc))
	}
	return cmds
}

func newOpCommand(oc opCommand) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:     oc.use,
		Short:   oc.short,
		Long:    oc.long + "\n\nRanges with a negative start need -- before them, e.g. leaprange max -- -3..3",
		Example: oc.example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, oc.op, args, by)
		},
	}
	if oc.by {
		cmd.Flags().StringVar(&by, "by", "", "Starlark comparison expression over a and b")
	}
	return cmd
}

// runOp leaves argument counting to the evaluator so that arity errors read
// the same in every front end.
func runOp(cmd *cobra.Command, op string, args []string, by string) error {
	cc := NewCommandContext(cmd)

	recv, err := cc.Evaluator.Parser.Parse(args[0])
	if err != nil {
		return err
	}
	res, err := cc.Evaluator.Eval(op, recv, args[1:], by)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return renderResult(cc.Renderer, res)
}
