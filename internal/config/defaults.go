package config

// DefaultConfig returns the built-in configuration used when no config.yaml
// is present. The launcher catalog mirrors the menu the dotfiles repo has
// always shipped: ten numbered slots covering the installed AI CLIs plus
// their permission-skipping variants.
func DefaultConfig() Config {
	return Config{
		Launcher: DefaultLauncherCatalog(),
		Tools: []Tool{
			{Name: "claude", Version: "latest", Source: "npm", Package: "@anthropic-ai/claude-code"},
			{Name: "gemini", Version: "latest", Source: "npm", Package: "@google/gemini-cli"},
			{Name: "codex", Version: "latest", Source: "npm", Package: "@openai/codex"},
			{Name: "qwen", Version: "latest", Source: "npm", Package: "@qwen-code/qwen-code"},
			{Name: "copilot", Version: "latest", Source: "npm", Package: "@github/copilot"},
			{Name: "opencode", Version: "latest", Source: "github", Repo: "sst/opencode"},
		},
		Generator: Generator{
			BaseFile:    "config/base/settings.json",
			ProfilesDir: "config/profiles",
			OutputFile:  "~/.claude/settings.json",
			EnvFile:     ".env",
			RequiredVars: []string{
				"GEMINI_API_KEY",
				"OPENAI_API_KEY",
				"ANTHROPIC_API_KEY",
				"BRAVE_API_KEY",
				"DATAFORSEO_USERNAME",
				"DATAFORSEO_PASSWORD",
			},
		},
		Install: Install{
			Target:   "~/.claude",
			LinkDirs: []string{"agents", "commands", "skills"},
			Packages: []PackageDir{
				{Dir: "mcp/search", Manager: "npm"},
				{Dir: "mcp/browser", Manager: "npm"},
				{Dir: "tools/scripts", Manager: "pip"},
			},
		},
	}
}

// DefaultLauncherCatalog is the static index -> (binary, args, warning)
// table behind the interactive menu. The mapping is stable across runs;
// slot 11 (exit) and slot 0 (repeat) are handled by the launcher itself
// and never appear here.
func DefaultLauncherCatalog() []LaunchEntry {
	return []LaunchEntry{
		{Index: 1, Name: "Claude (new session)", Binary: "claude", QuickKey: "n", Warn: "none"},
		{Index: 2, Name: "Claude (resume)", Binary: "claude", Args: []string{"--resume"}, QuickKey: "r", Warn: "none"},
		{Index: 3, Name: "Claude (skip permissions)", Binary: "claude", Args: []string{"--dangerously-skip-permissions"}, QuickKey: "y", Warn: "danger"},
		{Index: 4, Name: "Gemini", Binary: "gemini", QuickKey: "g", Warn: "none"},
		{Index: 5, Name: "Codex", Binary: "codex", QuickKey: "x", Warn: "none"},
		{Index: 6, Name: "Codex (full auto)", Binary: "codex", Args: []string{"--full-auto"}, QuickKey: "f", Warn: "caution"},
		{Index: 7, Name: "Droid", Binary: "droid", QuickKey: "d", Warn: "none"},
		{Index: 8, Name: "Qwen", Binary: "qwen", QuickKey: "w", Warn: "none"},
		{Index: 9, Name: "Copilot", Binary: "copilot", QuickKey: "p", Warn: "none"},
		{Index: 10, Name: "OpenCode", Binary: "opencode", QuickKey: "o", Warn: "none"},
	}
}
