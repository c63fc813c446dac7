package installer

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"aictl/internal/config"
	"aictl/internal/logger"
)

// RunPackageInstalls shells out to the package managers for each configured
// repo subdirectory (npm install for MCP servers, pip install for script
// dependencies). A failing directory is logged and the rest still run —
// the goal is to apply as much of the configuration as possible in one go.
func RunPackageInstalls(repoRoot string, pkgs []config.PackageDir) {
	for _, p := range pkgs {
		dir := filepath.Join(repoRoot, p.Dir)
		if _, err := os.Stat(dir); err != nil {
			logger.Warn("[WARN] Package directory %s missing. Skipping.\n", dir)
			continue
		}

		var cmd *exec.Cmd
		switch p.Manager {
		case "npm":
			cmd = exec.Command("npm", "install")
		case "pip":
			cmd = exec.Command("pip", "install", "-r", "requirements.txt")
		default:
			logger.Warn("[WARN] Unknown package manager %q for %s. Skipping.\n", p.Manager, dir)
			continue
		}
		cmd.Dir = dir

		logger.Info("[INFO] Running %s in %s...\n", strings.Join(cmd.Args, " "), dir)
		output, err := cmd.CombinedOutput()
		if err != nil {
			logger.Error("[ERROR] %s failed in %s: %v\nOutput: %s\n", p.Manager, dir, err, output)
			continue
		}
		logger.Debug("[DEBUG] %s output:\n%s\n", p.Manager, output)
		logger.Info("[INFO] Installed dependencies in %s\n", dir)
	}
}
