package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/blsh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	// shellExitCode is set by the interactive shell when it stops.
	shellExitCode int
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blsh",
	Short: "BarkBuff's LittleShell",
	Long: `A minimal interactive command interpreter.

Each line is split on whitespace into a command and its arguments. The
builtins cd, help and exit run inside the shell, anything else is looked up
on PATH and run in the foreground.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		shellExitCode, err = runShell(cmd, cfg)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(shellExitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file or directory containing "+config.ConfigurationName)
}
