package cmd

import (
	"fmt"

	"github.com/josephlewis42/blsh/core"
	"github.com/josephlewis42/blsh/core/config"
	"github.com/josephlewis42/blsh/core/logger"
	"github.com/spf13/cobra"
)

// runShell runs the interactive shell over the command's standard streams
// and returns its exit code.
func runShell(cmd *cobra.Command, cfg *config.Configuration) (int, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 1, err
	}

	events := logger.NewNopRecorder()
	logFd, err := cfg.OpenEventLog()
	if err != nil {
		return 1, fmt.Errorf("opening event log: %w", err)
	}
	if logFd != nil {
		defer logFd.Close()
		events = logger.NewJSONLinesRecorder(logFd, level)
	}

	shell := core.NewShell(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), events)
	return shell.Run(), nil
}
