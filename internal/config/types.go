package config

// LaunchEntry is one row of the launcher menu: a numbered slot mapping to an
// external AI CLI binary and the fixed arguments it is started with.
// - Index: menu slot, 1-10.
// - QuickKey: single-letter shortcut. Reserved keys (c, h, s, q, e and all
//   digits) are rejected at load time; `c` always means "clear last selection".
// - Warn: "none", "caution" or "danger". Danger marks permission-skipping
//   modes and gets a styled warning before dispatch.
type LaunchEntry struct {
	Index    int      `yaml:"index"`
	Name     string   `yaml:"name"`
	Binary   string   `yaml:"binary"`
	Args     []string `yaml:"args"`
	QuickKey string   `yaml:"quick_key"`
	Warn     string   `yaml:"warn"`
}

// Tool represents an external AI CLI binary managed by `aictl tools sync`.
// - Source: "npm" (global install of Package) or "github" (release asset
//   download, resolved via Repo/Tag).
type Tool struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Source  string `yaml:"source"`
	Package string `yaml:"package"`
	Repo    string `yaml:"repo"`
	Tag     string `yaml:"tag"`
}

// Generator describes the settings generation inputs: the base template, the
// directory of per-platform profile overrides, the .env file, and the list of
// environment variables the templates reference.
type Generator struct {
	BaseFile     string   `yaml:"base_file"`
	ProfilesDir  string   `yaml:"profiles_dir"`
	OutputFile   string   `yaml:"output_file"`
	EnvFile      string   `yaml:"env_file"`
	RequiredVars []string `yaml:"required_vars"`
}

// PackageDir is a repo subdirectory whose dependencies are installed after
// symlinking (npm install / pip install).
type PackageDir struct {
	Dir     string `yaml:"dir"`
	Manager string `yaml:"manager"`
}

// Install describes the symlink installation: which directories inside the
// target (~/.claude) become symlinks into the dotfiles repo, and which repo
// subdirectories get a package-manager install afterwards.
type Install struct {
	Target   string       `yaml:"target"`
	LinkDirs []string     `yaml:"link_dirs"`
	Packages []PackageDir `yaml:"packages"`
}

// Config is the top-level structure returned after loading all YAML
// configuration files.
type Config struct {
	Launcher  []LaunchEntry
	Tools     []Tool
	Generator Generator
	Install   Install
}
