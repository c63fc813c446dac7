// Package launcher implements the interactive AI CLI launcher: a fixed menu
// of ten numbered slots, each mapping to an external binary and preset
// arguments, dispatched by replacing the current process.
package launcher

import (
	"fmt"
	"sort"
	"strings"

	"aictl/internal/config"
	"aictl/internal/state"
)

// MaxIndex is the highest numbered menu slot. Slot 0 is "repeat last" and
// slot 11 is "exit"; both are handled by input resolution, not the catalog.
// Aliased from the state package so the persisted-record bounds and the
// catalog bounds cannot drift apart.
const MaxIndex = state.MaxSelection

// reservedKeys are single-character inputs with a fixed meaning at the menu
// prompt. Catalog quick keys must not shadow them. In particular `c` is
// always "clear last selection" here, never a tool shortcut — the shell
// launcher this replaces left that binding ambiguous.
var reservedKeys = map[string]bool{
	"c": true, // clear last selection
	"h": true, // help screen
	"s": true, // status screen
	"q": true, // exit
	"e": true, // exit
}

// Catalog is a validated launcher menu: entries indexed by slot number and
// by quick key.
type Catalog struct {
	entries []config.LaunchEntry
	byIndex map[int]config.LaunchEntry
	byKey   map[string]config.LaunchEntry
}

// NewCatalog validates the configured entries and builds the lookup maps.
// Validation failures are configuration errors and abort the launcher before
// the menu is shown, so a broken catalog can never half-work.
func NewCatalog(entries []config.LaunchEntry) (Catalog, error) {
	cat := Catalog{
		byIndex: make(map[int]config.LaunchEntry),
		byKey:   make(map[string]config.LaunchEntry),
	}

	for _, e := range entries {
		if e.Index < 1 || e.Index > MaxIndex {
			return Catalog{}, fmt.Errorf("launcher entry %q: index %d out of range 1-%d", e.Name, e.Index, MaxIndex)
		}
		if _, dup := cat.byIndex[e.Index]; dup {
			return Catalog{}, fmt.Errorf("launcher entry %q: duplicate index %d", e.Name, e.Index)
		}
		if e.Binary == "" {
			return Catalog{}, fmt.Errorf("launcher entry %q: missing binary", e.Name)
		}
		switch e.Warn {
		case "", "none", "caution", "danger":
		default:
			return Catalog{}, fmt.Errorf("launcher entry %q: unknown warn level %q", e.Name, e.Warn)
		}

		if e.QuickKey != "" {
			key := strings.ToLower(e.QuickKey)
			if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
				return Catalog{}, fmt.Errorf("launcher entry %q: quick key must be a single letter, got %q", e.Name, e.QuickKey)
			}
			if reservedKeys[key] {
				return Catalog{}, fmt.Errorf("launcher entry %q: quick key %q is reserved", e.Name, key)
			}
			if _, dup := cat.byKey[key]; dup {
				return Catalog{}, fmt.Errorf("launcher entry %q: duplicate quick key %q", e.Name, key)
			}
			cat.byKey[key] = e
		}

		cat.byIndex[e.Index] = e
		cat.entries = append(cat.entries, e)
	}

	if len(cat.entries) == 0 {
		return Catalog{}, fmt.Errorf("launcher catalog is empty")
	}

	sort.Slice(cat.entries, func(i, j int) bool {
		return cat.entries[i].Index < cat.entries[j].Index
	})
	return cat, nil
}

// Entries returns all entries ordered by slot number.
func (c Catalog) Entries() []config.LaunchEntry {
	return c.entries
}

// Entry looks up a menu slot by number.
func (c Catalog) Entry(index int) (config.LaunchEntry, bool) {
	e, ok := c.byIndex[index]
	return e, ok
}

// ByQuickKey looks up a menu slot by its shortcut letter, case-insensitively.
func (c Catalog) ByQuickKey(key string) (config.LaunchEntry, bool) {
	e, ok := c.byKey[strings.ToLower(key)]
	return e, ok
}
