package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"aictl/internal/config"
	"aictl/internal/generator"
	"aictl/internal/installer"
	"aictl/internal/logger"
)

// repoRoot is the dotfiles repo being installed. Defaults to $REPO_ROOT,
// then the current directory.
var repoRoot string

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Symlink the dotfiles repo into ~/.claude and install dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		root := repoRoot
		if root == "" {
			root = os.Getenv("REPO_ROOT")
		}
		if root == "" {
			root, err = os.Getwd()
			if err != nil {
				return err
			}
		}

		backup, err := installer.InstallSymlinks(root, cfg.Install)
		if err != nil {
			return err
		}
		if backup != "" {
			logger.Info("[INFO] Previous config preserved at %s\n", backup)
		}

		installer.RunPackageInstalls(root, cfg.Install.Packages)

		// Freshly linked config needs a settings file to go with it.
		profile, err := generator.ResolveProfile("")
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
	installCmd.Flags().StringVar(&repoRoot, "repo", "", "Dotfiles repo root (default $REPO_ROOT or the current directory)")
	installCmd.Flags().BoolVar(&force, "force", false, "Continue even if required variables are unset")
	rootCmd.AddCommand(installCmd)
}
