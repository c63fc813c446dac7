package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastSelectionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), LastSelectionFile)

	require.NoError(t, SaveLastSelection(path, 7))

	idx, found := LoadLastSelection(path)
	require.True(t, found)
	assert.Equal(t, 7, idx)

	// The on-disk format is a single ASCII integer plus newline.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(data))
}

func TestLastSelectionMissingFile(t *testing.T) {
	_, found := LoadLastSelection(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, found)
}

func TestLastSelectionInvalidContent(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"text":     "claude\n",
		"zero":     "0\n",
		"high":     "11\n",
		"negative": "-3\n",
		"empty":    "",
		"float":    "2.5\n",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		_, found := LoadLastSelection(path)
		assert.False(t, found, "content %q must read as no record", content)
	}
}

func TestLastSelectionTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), LastSelectionFile)
	require.NoError(t, os.WriteFile(path, []byte("  3 \n"), 0644))

	idx, found := LoadLastSelection(path)
	require.True(t, found)
	assert.Equal(t, 3, idx)
}

func TestSaveLastSelectionRejectsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), LastSelectionFile)
	assert.Error(t, SaveLastSelection(path, 0))
	assert.Error(t, SaveLastSelection(path, MaxSelection+1))
	assert.NoError(t, SaveLastSelection(path, MaxSelection))
}

func TestLastSelectionPathUnderHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, LastSelectionFile), LastSelectionPath())
}

func TestClearLastSelection(t *testing.T) {
	path := filepath.Join(t.TempDir(), LastSelectionFile)

	// Clearing a missing record is fine.
	require.NoError(t, ClearLastSelection(path))

	require.NoError(t, SaveLastSelection(path, 2))
	require.NoError(t, ClearLastSelection(path))

	_, found := LoadLastSelection(path)
	assert.False(t, found)
}

func TestToolsStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aictl-state.json")

	st := &State{Tools: map[string]ToolState{
		"claude": {
			Version:          "2.1.0",
			InstallPath:      "/usr/local/bin/claude",
			Package:          "@anthropic-ai/claude-code",
			InstalledByAictl: true,
		},
	}}
	Save(path, st)

	loaded := Load(path)
	assert.Equal(t, st.Tools, loaded.Tools)
}

func TestToolsStateMissingFile(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NotNil(t, st)
	assert.NotNil(t, st.Tools, "Tools map is always usable")
}

func TestToolsStateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	st := Load(path)
	require.NotNil(t, st)
	assert.NotNil(t, st.Tools)
}
