package cmd

import (
	"github.com/spf13/cobra"

	"aictl/internal/config"
	"aictl/internal/generator"
)

// force continues generation even when required variables are unset.
var force bool

var generateCmd = &cobra.Command{
	Use:   "generate [profile]",
	Short: "Generate ~/.claude/settings.json from the base + profile templates",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		profile, err := generator.ResolveProfile(arg)
		if err != nil {
			return err
		}

		g := cfg.Generator
		return generator.Generate(generator.Options{
			Profile:      profile,
			BaseFile:     g.BaseFile,
			ProfilesDir:  g.ProfilesDir,
			OutputFile:   config.ExpandHome(g.OutputFile),
			EnvFile:      g.EnvFile,
			RequiredVars: g.RequiredVars,
			Force:        force,
		})
	},
}

func init() {
	generateCmd.Flags().BoolVar(&force, "force", false, "Continue even if required variables are unset")
	rootCmd.AddCommand(generateCmd)
}
