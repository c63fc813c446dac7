package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"aictl/internal/config"
	"aictl/internal/launcher"
	"aictl/internal/logger"
	"aictl/internal/state"
)

// plain forces the line-oriented loop instead of the full-screen menu.
var plain bool

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Interactive menu that hands the terminal to an AI CLI",
	RunE:  runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cat, err := launcher.NewCatalog(cfg.Launcher)
	if err != nil {
		return err
	}

	d := launcher.NewDispatcher(cat, state.LastSelectionPath())

	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return launcher.RunPlain(os.Stdin, os.Stdout, d)
	}

	// The TUI quits before dispatching so the terminal is restored before
	// the process is replaced. A failed dispatch (missing binary) returns
	// to the menu rather than ending the launcher.
	for {
		model := launcher.NewModel(d)
		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		choice := final.(*launcher.Model).Choice()
		if choice == nil {
			return nil
		}

		if choice.Warn == "danger" {
			logger.Warn("[WARN] %s runs without permission prompts\n", choice.Name)
		}
		if err := d.Dispatch(*choice); err != nil {
			logger.Warn("[WARN] %v\n", err)
			continue
		}
		return nil // unreachable: Dispatch replaced the process
	}
}

func init() {
	launchCmd.Flags().BoolVar(&plain, "plain", false, "Use the line-oriented menu even on a TTY")
	rootCmd.AddCommand(launchCmd)
}
