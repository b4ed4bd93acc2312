package commands

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/leaprange/internal/check"
	"github.com/leapstack-labs/leaprange/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify range arithmetic against brute-force enumeration",
		Long: `Sweep every integer range with both endpoints in [-bound, bound], inclusive
and exclusive, and verify that:
- max and min agree with enumerating the range
- first n and last n return the head and tail of the enumeration
- overlap is symmetric, never true for empty ranges, and true exactly when
  the ranges share an element

Work is split by start value across --workers goroutines.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON/YAML: Machine-readable report`,
		Example: `  # Run the default sweep
  leaprange check

  # Larger sweep on four workers, as JSON
  leaprange check --bound 10 --workers 4 -o json`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().Int("bound", 0, "Largest endpoint magnitude to sweep (default 6)")
	cmd.Flags().Int("workers", 0, "Concurrent workers (default GOMAXPROCS)")

	return cmd
}

// CheckOutput is the structured output of the check command.
type CheckOutput struct {
	Bound      int             `json:"bound" yaml:"bound"`
	Cases      int             `json:"cases" yaml:"cases"`
	Checks     int             `json:"checks" yaml:"checks"`
	Properties []PropertyCheck `json:"properties" yaml:"properties"`
	Failures   []check.Failure `json:"failures" yaml:"failures"`
}

// PropertyCheck is the outcome of one property over the whole sweep.
type PropertyCheck struct {
	Name     string `json:"name" yaml:"name"`
	Group    string `json:"group" yaml:"group"`
	Status   string `json:"status" yaml:"status"` // "pass", "fail"
	Failures int    `json:"failures" yaml:"failures"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	r := cc.Renderer

	runner := check.Runner{
		MaxBound: cc.Cfg.Check.MaxBound,
		Workers:  cc.Cfg.Check.Workers,
		Logger:   cc.Logger,
	}
	report, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("property sweep aborted: %w", err)
	}

	out := buildCheckOutput(report)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(out)
	case output.ModeYAML:
		err = r.YAML(out)
	case output.ModeTable, output.ModeMarkdown:
		renderCheckTable(r, out)
	default:
		renderCheckText(r, out)
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%d of %d property checks failed", len(report.Failures), report.Checks)
	}
	return nil
}

func buildCheckOutput(report check.Report) *CheckOutput {
	counts := make(map[string]int)
	for _, f := range report.Failures {
		counts[f.Property]++
	}

	props := make([]PropertyCheck, 0, len(check.Properties))
	for _, name := range check.Properties {
		status := "pass"
		if counts[name] > 0 {
			status = "fail"
		}
		props = append(props, PropertyCheck{
			Name:     name,
			Group:    check.Group(name),
			Status:   status,
			Failures: counts[name],
		})
	}

	return &CheckOutput{
		Bound:      report.Bound,
		Cases:      report.Cases,
		Checks:     report.Checks,
		Properties: props,
		Failures:   report.Failures,
	}
}

func renderCheckText(r *output.Renderer, out *CheckOutput) {
	styles := r.Styles()

	r.Println(styles.Header1.Render("Range Property Sweep"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 40)))
	r.Printf("   Bound: %d | Ranges: %d | Checks: %d\n", out.Bound, out.Cases, out.Checks)
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, p := range out.Properties {
		if p.Group != currentGroup {
			currentGroup = p.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
		}

		icon := styles.StatusSuccess.String()
		if p.Status == "fail" {
			icon = styles.StatusFailed.String()
		}
		status := fmt.Sprintf("%s %s", icon, p.Name)
		if p.Failures > 0 {
			status += fmt.Sprintf(" (%d failures)", p.Failures)
		}
		r.Println("   " + status)
	}
	r.Println("")

	for i, f := range out.Failures {
		if i >= 10 {
			r.Println(styles.Muted.Render(fmt.Sprintf("   ... and %d more", len(out.Failures)-10)))
			break
		}
		r.Println(styles.Muted.Render(fmt.Sprintf("   - %s %s: %s", f.Interval, f.Property, f.Detail)))
	}

	if len(out.Failures) == 0 {
		r.Success(fmt.Sprintf("All %d checks passed", out.Checks))
	}
}

func renderCheckTable(r *output.Renderer, out *CheckOutput) {
	r.Header(1, "Range Property Sweep")
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatKeyValue("Bound", fmt.Sprint(out.Bound)))
		r.Println(output.FormatKeyValue("Ranges", fmt.Sprint(out.Cases)))
		r.Println(output.FormatKeyValue("Checks", fmt.Sprint(out.Checks)))
		r.Println("")
	}

	rows := make([][]string, len(out.Properties))
	for i, p := range out.Properties {
		rows[i] = []string{p.Group, p.Name, p.Status, fmt.Sprint(p.Failures)}
	}
	r.Table([]string{"group", "property", "status", "failures"}, rows)

	if len(out.Failures) > 0 {
		r.Println("")
		failures := make([][]string, len(out.Failures))
		for i, f := range out.Failures {
			failures[i] = []string{f.Interval, f.Property, f.Detail}
		}
		r.Table([]string{"range", "property", "detail"}, failures)
	}
}
