package cmd

import (
	"log"

	"github.com/josephlewis42/blsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration
var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Write the default configuration to DIR, or the current directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		path, err := config.Initialize(afero.NewOsFs(), dir)
		if err != nil {
			return err
		}
		logger.Printf("Wrote configuration to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
