package commands

import (
	"log/slog"

	"github.com/leapstack-labs/leaprange/internal/cli/config"
	"github.com/leapstack-labs/leaprange/internal/cli/output"
	"github.com/leapstack-labs/leaprange/internal/eval"
	"github.com/leapstack-labs/leaprange/internal/literal"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg       *config.Config
	Logger    *slog.Logger
	Renderer  *output.Renderer
	Evaluator *eval.Evaluator
}

// NewCommandContext creates a CommandContext from the config and logger
// stored in the command's context by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))

	return &CommandContext{
		Cfg:       cfg,
		Logger:    logger,
		Renderer:  r,
		Evaluator: newEvaluator(cfg, logger),
	}
}

func newEvaluator(cfg *config.Config, logger *slog.Logger) *eval.Evaluator {
	return eval.New(literal.Parser{
		Kind:   cfg.Kind(),
		Limit:  cfg.Limit,
		Logger: logger,
	}, logger)
}
