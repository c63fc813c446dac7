package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"aictl/internal/logger"
	"aictl/internal/skills"
)

// skillsDir is the repo directory holding the skill documents.
var skillsDir string

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage the repo's skill documents",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skill documents and their descriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := skills.List(skillsDir)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Printf("no skills found in %s\n", skillsDir)
			return nil
		}
		for _, sk := range list {
			fmt.Printf("  %-32s %s\n", sk.Name, sk.Description)
		}
		return nil
	},
}

var skillsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render one skill document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sk, err := skills.Load(filepath.Join(skillsDir, args[0]+".md"))
		if err != nil {
			return err
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			// Unstyled fallback beats no output.
			fmt.Println(sk.Content)
			return nil
		}
		rendered, err := r.Render(sk.Content)
		if err != nil {
			fmt.Println(sk.Content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

var skillsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy skill documents into ~/.claude/skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := skills.TargetDir()
		if err != nil {
			return err
		}
		n, err := skills.Sync(skillsDir, target)
		if err != nil {
			return err
		}
		logger.Info("[INFO] Synced %d skills to %s\n", n, target)
		return nil
	},
}

func init() {
	skillsCmd.PersistentFlags().StringVar(&skillsDir, "dir", "skills", "Directory containing skill documents")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsSyncCmd)
	rootCmd.AddCommand(skillsCmd)
}
