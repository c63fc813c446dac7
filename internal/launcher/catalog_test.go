package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aictl/internal/config"
)

func TestNewCatalogDefaults(t *testing.T) {
	cat, err := NewCatalog(config.DefaultLauncherCatalog())
	require.NoError(t, err)

	assert.Len(t, cat.Entries(), 10)

	// Every slot 1-10 resolves to exactly one entry.
	for i := 1; i <= MaxIndex; i++ {
		e, ok := cat.Entry(i)
		require.True(t, ok, "slot %d missing", i)
		assert.Equal(t, i, e.Index)
		assert.NotEmpty(t, e.Binary)
	}
}

func TestNewCatalogRejectsDuplicateIndex(t *testing.T) {
	_, err := NewCatalog([]config.LaunchEntry{
		{Index: 1, Name: "a", Binary: "a"},
		{Index: 1, Name: "b", Binary: "b"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate index")
}

func TestNewCatalogRejectsReservedQuickKey(t *testing.T) {
	for _, key := range []string{"c", "h", "s", "q", "e", "C"} {
		_, err := NewCatalog([]config.LaunchEntry{
			{Index: 1, Name: "a", Binary: "a", QuickKey: key},
		})
		require.Error(t, err, "key %q should be reserved", key)
		assert.Contains(t, err.Error(), "reserved")
	}
}

func TestNewCatalogRejectsOutOfRangeIndex(t *testing.T) {
	for _, idx := range []int{0, 11, -1} {
		_, err := NewCatalog([]config.LaunchEntry{
			{Index: idx, Name: "a", Binary: "a"},
		})
		require.Error(t, err, "index %d should be rejected", idx)
	}
}

func TestNewCatalogRejectsUnknownWarnLevel(t *testing.T) {
	_, err := NewCatalog([]config.LaunchEntry{
		{Index: 1, Name: "a", Binary: "a", Warn: "scary"},
	})
	require.Error(t, err)
}

func TestNewCatalogRejectsDuplicateQuickKey(t *testing.T) {
	_, err := NewCatalog([]config.LaunchEntry{
		{Index: 1, Name: "a", Binary: "a", QuickKey: "g"},
		{Index: 2, Name: "b", Binary: "b", QuickKey: "G"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate quick key")
}

func TestByQuickKeyCaseInsensitive(t *testing.T) {
	cat, err := NewCatalog([]config.LaunchEntry{
		{Index: 4, Name: "Gemini", Binary: "gemini", QuickKey: "g"},
	})
	require.NoError(t, err)

	lower, ok := cat.ByQuickKey("g")
	require.True(t, ok)
	upper, ok := cat.ByQuickKey("G")
	require.True(t, ok)
	assert.Equal(t, lower, upper)
}

func TestNewCatalogRejectsEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	require.Error(t, err)
}
