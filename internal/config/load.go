package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the main config.yaml and the referenced sub-configs:
// launcher.yaml, tools.yaml, generator.yaml and install.yaml. It returns a
// populated Config struct.
//
// If the main config file does not exist, the embedded defaults are returned
// so the tool works out of the box in a freshly cloned repo.
func LoadConfig(configFile string) (Config, error) {
	// mainConfig holds the paths to the launcher, tools, generator and
	// install config files
	mainConfig := struct {
		Config struct {
			LauncherFile  string `yaml:"launcher_file"`
			ToolsFile     string `yaml:"tools_file"`
			GeneratorFile string `yaml:"generator_file"`
			InstallFile   string `yaml:"install_file"`
		} `yaml:"config"`
	}{}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(raw, &mainConfig); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	// Sub-config paths are relative to the main config file.
	base := filepath.Dir(configFile)
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	// ----- Load launcher.yaml -----
	var launcherWrapper struct {
		Launcher []LaunchEntry `yaml:"launcher"`
	}
	if err := readYAML(rel(mainConfig.Config.LauncherFile), &launcherWrapper); err != nil {
		return Config{}, err
	}

	// ----- Load tools.yaml -----
	var toolsWrapper struct {
		Tools []Tool `yaml:"tools"`
	}
	if err := readYAML(rel(mainConfig.Config.ToolsFile), &toolsWrapper); err != nil {
		return Config{}, err
	}

	// ----- Load generator.yaml -----
	var generatorWrapper struct {
		Generator Generator `yaml:"generator"`
	}
	if err := readYAML(rel(mainConfig.Config.GeneratorFile), &generatorWrapper); err != nil {
		return Config{}, err
	}

	// ----- Load install.yaml -----
	var installWrapper struct {
		Install Install `yaml:"install"`
	}
	if err := readYAML(rel(mainConfig.Config.InstallFile), &installWrapper); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Launcher:  launcherWrapper.Launcher,
		Tools:     toolsWrapper.Tools,
		Generator: generatorWrapper.Generator,
		Install:   installWrapper.Install,
	}
	if len(cfg.Launcher) == 0 {
		cfg.Launcher = DefaultConfig().Launcher
	}
	return cfg, nil
}

// readYAML reads one sub-config file and unmarshals it into out.
// An empty path is allowed and leaves out untouched.
func readYAML(path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Paths like "~/.claude/settings.json" show up throughout the config files.
func ExpandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
