// Package output renders command results for terminals, pipes and tools.
//
// Output adapts to environment:
//   - Terminal: styled, colored text
//   - Piped/Scripted: the same text without escape codes
//
// table, markdown, json and yaml are selected explicitly with --output.
package output

import "strings"

// OutputMode selects how results are written.
type OutputMode string //nolint:revive // exported name stutters with the package

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeTable    OutputMode = "table"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists every mode in the order shown by completion.
var Modes = []OutputMode{ModeAuto, ModeText, ModeTable, ModeMarkdown, ModeJSON, ModeYAML}

// Mode converts a config or flag value to an OutputMode. Unknown values,
// including "", become ModeAuto.
func Mode(s string) OutputMode {
	switch m := OutputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeText, ModeTable, ModeMarkdown, ModeJSON, ModeYAML:
		return m
	case "md":
		return ModeMarkdown
	case "yml":
		return ModeYAML
	default:
		return ModeAuto
	}
}

// Structured reports whether the mode is meant for machines.
func (m OutputMode) Structured() bool {
	return m == ModeJSON || m == ModeYAML
}

// ModeNames returns Modes as strings.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return names
}
