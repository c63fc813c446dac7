package cmd

import (
	"github.com/spf13/cobra"

	"aictl/internal/config"
	"aictl/internal/installer"
	"aictl/internal/state"
)

// statePath is the persistent state file tracking installed tool versions.
var statePath string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Manage the external AI CLI binaries",
}

var toolsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Install, upgrade or remove AI CLI binaries to match the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		path := config.ExpandHome(statePath)
		st := state.Load(path)
		installer.SyncTools(cfg.Tools, st)
		state.Save(path, st)
		return nil
	},
}

func init() {
	toolsCmd.PersistentFlags().StringVar(&statePath, "state", "~/.aictl-state.json", "Path to the tools state file")
	toolsCmd.AddCommand(toolsSyncCmd)
	rootCmd.AddCommand(toolsCmd)
}
