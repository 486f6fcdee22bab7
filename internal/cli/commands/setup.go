// Package commands implements the tutor subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/projeto-tutor/tutor/internal/cli/config"
	"github.com/projeto-tutor/tutor/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Styles *output.Styles
}

// NewCommandContext collects the loaded config and logger for cmd.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
		Styles: output.NewStyles(),
	}
}

// getConfig returns the current configuration, or defaults when the root
// command has not loaded one.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
