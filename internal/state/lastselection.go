package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The last-selection record is a single ASCII integer in a dotfile,
// recording the most recently dispatched launcher slot. The format is kept
// byte-compatible with the shell launcher that preceded this tool: one
// number, newline-terminated, no header.

// LastSelectionFile is the dotfile name under $HOME.
const LastSelectionFile = ".ai-launcher-last"

// MaxSelection is the highest valid menu slot. It lives here rather than in
// the launcher package because the launcher depends on this package for
// persistence; launcher.MaxIndex aliases it.
const MaxSelection = 10

// LastSelectionPath returns the absolute path of the last-selection dotfile.
func LastSelectionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return LastSelectionFile
	}
	return filepath.Join(home, LastSelectionFile)
}

// LoadLastSelection reads the recorded menu index. It returns (0, false)
// when the file is absent, unreadable, or holds anything that is not an
// integer in [1, MaxSelection] — an invalid record is treated the same as no
// record.
func LoadLastSelection(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 1 || n > MaxSelection {
		return 0, false
	}
	return n, true
}

// SaveLastSelection overwrites the record with the given index.
// Best-effort, no locking: nothing else writes this file.
func SaveLastSelection(path string, index int) error {
	if index < 1 || index > MaxSelection {
		return fmt.Errorf("selection index %d out of range", index)
	}
	return os.WriteFile(path, []byte(strconv.Itoa(index)+"\n"), 0644)
}

// ClearLastSelection removes the record. A missing file is not an error.
func ClearLastSelection(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
