package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"aictl/internal/config"
	"aictl/internal/generator"
	"aictl/internal/launcher"
	"aictl/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tool availability, last selection, and environment readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cat, err := launcher.NewCatalog(cfg.Launcher)
		if err != nil {
			return err
		}

		fmt.Print(launcher.StatusText(cat, state.LastSelectionPath(), exec.LookPath))

		// Same variable sources as generation, .env file included, so
		// status never reports UNSET for a setup that generates fine.
		vars, err := generator.LoadEnv(cfg.Generator.EnvFile)
		if err != nil {
			return err
		}
		unset := make(map[string]bool)
		for _, name := range generator.UnsetVars(vars, cfg.Generator.RequiredVars) {
			unset[name] = true
		}

		fmt.Println("\nRequired variables:")
		for _, name := range cfg.Generator.RequiredVars {
			mark := "set"
			if unset[name] {
				mark = "UNSET"
			}
			fmt.Printf("  %-24s [%s]\n", name, mark)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
