package state

import (
	"encoding/json" // JSON encoding/decoding of the tools state file
	"os"

	"aictl/internal/logger"
)

// ToolState records the saved state of an installed AI CLI binary: the
// installed version, the full install path, and whether it was installed by
// aictl (as opposed to an external/manual install we merely discovered).
type ToolState struct {
	Version          string `json:"version"`
	InstallPath      string `json:"install_path"`
	Package          string `json:"package,omitempty"` // npm package name, when npm-sourced
	InstalledByAictl bool   `json:"installed_by_aictl"`
}

// State holds the entire saved state for tool syncing, keyed by tool name.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// Load reads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty
// State. The Tools map is always non-nil.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// Save writes the given State to a JSON file at the given path,
// pretty-printed for readability. Errors are logged but not propagated:
// a failed state write only costs idempotence on the next run.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
