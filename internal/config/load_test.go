package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Launcher, cfg.Launcher)
	assert.Equal(t, def.Tools, cfg.Tools)
	assert.Equal(t, def.Generator, cfg.Generator)
}

func TestLoadConfigFromFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	write("config.yaml", `
config:
  launcher_file: launcher.yaml
  tools_file: tools.yaml
  generator_file: generator.yaml
  install_file: install.yaml
`)
	write("launcher.yaml", `
launcher:
  - index: 1
    name: "Claude"
    binary: claude
    quick_key: n
  - index: 2
    name: "Gemini"
    binary: gemini
    args: ["--debug"]
    quick_key: g
`)
	write("tools.yaml", `
tools:
  - name: claude
    source: npm
    package: "@anthropic-ai/claude-code"
    version: latest
`)
	write("generator.yaml", `
generator:
  base_file: config/base/settings.json
  profiles_dir: config/profiles
  output_file: ~/.claude/settings.json
  required_vars: [ANTHROPIC_API_KEY]
`)
	write("install.yaml", `
install:
  target: ~/.claude
  link_dirs: [agents, commands, skills]
`)

	cfg, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	require.Len(t, cfg.Launcher, 2)
	assert.Equal(t, "gemini", cfg.Launcher[1].Binary)
	assert.Equal(t, []string{"--debug"}, cfg.Launcher[1].Args)
	assert.Equal(t, "g", cfg.Launcher[1].QuickKey)

	require.Len(t, cfg.Tools, 1)
	assert.Equal(t, "@anthropic-ai/claude-code", cfg.Tools[0].Package)

	assert.Equal(t, "~/.claude/settings.json", cfg.Generator.OutputFile)
	assert.Equal(t, []string{"ANTHROPIC_API_KEY"}, cfg.Generator.RequiredVars)
	assert.Equal(t, []string{"agents", "commands", "skills"}, cfg.Install.LinkDirs)
}

func TestLoadConfigEmptyLauncherFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("config: {}\n"), 0644))

	cfg, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Launcher, cfg.Launcher)
}

func TestLoadConfigBrokenSubFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("config:\n  launcher_file: launcher.yaml\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "launcher.yaml"),
		[]byte(": not yaml"), 0644))

	_, err := LoadConfig(filepath.Join(dir, "config.yaml"))
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, ".claude"), ExpandHome("~/.claude"))
	assert.Equal(t, "/etc/passwd", ExpandHome("/etc/passwd"))
	assert.Equal(t, "relative/path", ExpandHome("relative/path"))
}

func TestDefaultLauncherCatalogShape(t *testing.T) {
	entries := DefaultLauncherCatalog()
	require.Len(t, entries, 10)

	seen := map[int]bool{}
	for _, e := range entries {
		assert.NotEmpty(t, e.Binary, "slot %d", e.Index)
		assert.False(t, seen[e.Index], "duplicate index %d", e.Index)
		seen[e.Index] = true
	}
	for i := 1; i <= 10; i++ {
		assert.True(t, seen[i], "missing slot %d", i)
	}
}
