package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"aictl/internal/logger"
)

// debug indicates whether debug logging is enabled, toggled via --debug.
var debug bool

// configPath holds the path to the main configuration YAML file. When the
// file is absent the embedded defaults apply.
var configPath string

// rootCmd is the base command for the `aictl` CLI. Running it with no
// subcommand starts the interactive launcher.
var rootCmd = &cobra.Command{
	Use:   "aictl",
	Short: "Personal AI tooling: launcher, settings generator, dotfiles installer",

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: runLaunch, // bare `aictl` behaves like `aictl launch`
}

// Execute registers global flags and starts command execution. A returned
// error has already been reported by cobra; the exit code is what matters.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
