package main

import (
	"aictl/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// aictl is a personal AI-tooling setup utility that:
//   - Presents an interactive launcher menu for AI coding CLIs (claude,
//     gemini, codex, droid, qwen, copilot, opencode) and hands the terminal
//     over to the chosen tool via process replacement
//   - Generates ~/.claude/settings.json from a base template plus a
//     platform profile (laptop/server) with environment substitution
//   - Installs the dotfiles repo into ~/.claude as symlinks so edits in
//     the repo are immediately live
//   - Syncs the external AI CLI binaries themselves (npm global installs
//     or GitHub release downloads), tracked in a JSON state file for
//     idempotent, incremental runs
//   - Manages the repo's skill documents (list, render, sync into
//     ~/.claude/skills)
//
// Error handling strategy:
//   - Recoverable problems (a missing binary, an unset variable) are
//     logged and the current operation continues or returns to the menu
//   - Fatal problems (missing template, malformed generated JSON) abort
//     the command with a non-zero exit so the user notices before a bad
//     config is used
func main() {
	cmd.Execute()
}
