// Package cli provides the command-line interface for leaprange.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/leaprange/internal/cli/commands"
	"github.com/leapstack-labs/leaprange/internal/cli/config"
	"github.com/leapstack-labs/leaprange/internal/cli/output"
	"github.com/leapstack-labs/leaprange/pkg/core"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "leaprange",
		Short: "leaprange - range operations from the command line",
		Long: `leaprange evaluates operations on ranges of integers, floats and strings.

A range is written A..B (inclusive) or A...B (end excluded); either endpoint
may be left out. Supported operations are first, last, min, max and overlap,
available as subcommands, through eval, or interactively in the repl.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = context.WithValue(ctx, config.LoggerKey(), logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
commit %s, built %s
`, GitCommit, BuildDate))

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./leaprange.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|table|markdown|json|yaml)")
	rootCmd.PersistentFlags().String("domain", "", "Literal domain (auto|int|float|string)")
	rootCmd.PersistentFlags().Int("limit", 0, fmt.Sprintf("Enumeration limit for endless ranges, 0 for none (default %d)", config.DefaultLimit))

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("domain", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "int", "float", "string"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewOpCommands()...)
	rootCmd.AddCommand(commands.NewEvalCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to a process exit code: 0 for
// nil, 2 for invalid arguments and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if core.KindOf(err) == core.ErrInvalidArgument {
		return 2
	}
	return 1
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for leaprange.

To load completions:

Bash:
  $ source <(leaprange completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ leaprange completion bash > /etc/bash_completion.d/leaprange
  # macOS:
  $ leaprange completion bash > $(brew --prefix)/etc/bash_completion.d/leaprange

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ leaprange completion zsh > "${fpath[1]}/_leaprange"

Fish:
  $ leaprange completion fish | source

  # To load completions for each session, execute once:
  $ leaprange completion fish > ~/.config/fish/completions/leaprange.fish

PowerShell:
  PS> leaprange completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
