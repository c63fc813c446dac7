package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"aictl/internal/config"
	"aictl/internal/logger"
	"aictl/internal/state"
)

// BinDir is where GitHub-sourced binaries are installed.
func BinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bin"
	}
	return filepath.Join(home, ".local", "bin")
}

// runInstall is swapped out in tests so syncing does not shell out.
var runInstall = installTool

// SyncTools brings the installed AI CLI binaries in line with the tools
// catalog and the saved state: installs new tools, upgrades version
// mismatches, and uninstalls tools that were removed from the catalog.
// Installs run concurrently; state updates are mutex-protected.
func SyncTools(tools []config.Tool, st *state.State) {
	logger.Debug("[DEBUG] Starting SyncTools with %d tools, state has %d entries\n", len(tools), len(st.Tools))

	// Snapshot the current versions up front: install goroutines write
	// st.Tools under mu, so the scheduling loop must not keep reading it.
	current := make(map[string]state.ToolState, len(st.Tools))
	for name, ts := range st.Tools {
		current[name] = ts
	}

	existing := make(map[string]bool)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, tool := range tools {
		existing[tool.Name] = true

		cur, ok := current[tool.Name]
		if ok && cur.Version == tool.Version {
			logger.Info("[INFO] %s version %s is current. Skipping.\n", tool.Name, tool.Version)
			continue
		}

		wg.Add(1)
		go func(tool config.Tool, cur state.ToolState) {
			defer wg.Done()
			logger.Debug("[DEBUG] SyncTools: installing/upgrading %s (current: %s, target: %s)\n",
				tool.Name, cur.Version, tool.Version)

			installPath, err := runInstall(tool)
			if err != nil {
				logger.Error("[ERROR] Failed to install %s@%s: %v\n", tool.Name, tool.Version, err)
				return
			}
			logger.Info("[INFO] Installed %s@%s\n", tool.Name, tool.Version)

			mu.Lock()
			st.Tools[tool.Name] = state.ToolState{
				Version:          tool.Version,
				InstallPath:      installPath,
				Package:          tool.Package,
				InstalledByAictl: true,
			}
			mu.Unlock()
		}(tool, cur)
	}

	wg.Wait()

	// Sequential removal to avoid conflicting state modifications.
	for name, toolState := range st.Tools {
		if existing[name] {
			continue
		}
		logger.Warn("[WARN] %s removed from catalog. Uninstalling...\n", name)
		if uninstallTool(name, toolState) {
			delete(st.Tools, name)
		} else {
			logger.Warn("[WARN] Failed to uninstall %s completely. Manual cleanup may be required.\n", name)
		}
	}

	logger.Debug("[DEBUG] Finished SyncTools\n")
}

// installTool installs one tool according to its source and returns the
// install path.
func installTool(tool config.Tool) (string, error) {
	switch tool.Source {
	case "npm":
		return installFromNpm(tool)
	case "github":
		logger.Info("[INFO] Installing %s from GitHub releases...\n", tool.Name)
		return downloadFromGitHub(tool, BinDir())
	default:
		return "", fmt.Errorf("unknown tool source %q", tool.Source)
	}
}

// installFromNpm installs a tool as a global npm package.
func installFromNpm(tool config.Tool) (string, error) {
	pkg := tool.Package
	if pkg == "" {
		pkg = tool.Name
	}
	spec := pkg
	if tool.Version != "" {
		spec = pkg + "@" + tool.Version
	}

	cmd := exec.Command("npm", "install", "-g", spec)
	logger.Info("[INFO] Running %s...\n", strings.Join(cmd.Args, " "))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("npm install failed: %v\noutput: %s", err, output)
	}
	logger.Debug("[DEBUG] npm output:\n%s\n", output)

	// Resolve where npm put the binary so the state file records it.
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return "", fmt.Errorf("installed %s but binary not on PATH: %w", spec, err)
	}
	return path, nil
}

// uninstallTool removes a tool recorded in the state file: npm packages via
// npm uninstall, GitHub-sourced binaries by deleting the installed file.
// Tools we merely discovered (not installed by aictl) are left alone.
func uninstallTool(name string, toolState state.ToolState) bool {
	if !toolState.InstalledByAictl {
		logger.Warn("[WARN] %s was not installed by aictl. Leaving it in place.\n", name)
		return true
	}

	logger.Info("[INFO] Uninstalling %s...\n", name)

	// Binaries under our bin dir were GitHub installs: plain file removal.
	if strings.HasPrefix(toolState.InstallPath, BinDir()) {
		if err := os.Remove(toolState.InstallPath); err != nil && !os.IsNotExist(err) {
			logger.Error("[ERROR] Failed to remove %s: %v\n", toolState.InstallPath, err)
			return false
		}
		logger.Info("[INFO] Removed %s\n", toolState.InstallPath)
		return true
	}

	// Everything else was an npm global install.
	pkg := toolState.Package
	if pkg == "" {
		pkg = name
	}
	cmd := exec.Command("npm", "uninstall", "-g", pkg)
	output, err := cmd.CombinedOutput()
	logger.Debug("[DEBUG] npm uninstall output: %s\n", output)
	if err != nil {
		logger.Error("[ERROR] npm uninstall failed for %s: %v\n", name, err)
		return false
	}
	return true
}
