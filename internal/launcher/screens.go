package launcher

import (
	"fmt"
	"strings"

	"aictl/internal/state"
)

// helpText renders the help screen shared by the plain loop and the TUI.
func helpText(cat Catalog) string {
	var b strings.Builder
	b.WriteString("Launcher input:\n")
	b.WriteString("  1-10      dispatch the numbered tool\n")
	b.WriteString("  0         repeat the last selection\n")
	b.WriteString("  <letter>  quick key for a tool (shown in the menu)\n")
	b.WriteString("  h         this help screen\n")
	b.WriteString("  s         status: binaries found, last selection\n")
	b.WriteString("  c         clear the last selection\n")
	b.WriteString("  q / e / 11  exit\n\n")
	b.WriteString("Dispatching replaces this process with the chosen tool;\n")
	b.WriteString("your terminal belongs to it until it exits.\n\n")
	b.WriteString("Quick keys:\n")
	for _, e := range cat.Entries() {
		if e.QuickKey != "" {
			fmt.Fprintf(&b, "  %s  %s\n", e.QuickKey, e.Name)
		}
	}
	return b.String()
}

// StatusText reports binary availability per slot plus the recorded last
// selection. lookPath is injected so tests don't depend on the host $PATH.
func StatusText(cat Catalog, lastPath string, lookPath func(string) (string, error)) string {
	var b strings.Builder
	b.WriteString("Tool availability:\n")
	for _, e := range cat.Entries() {
		mark := "ok"
		if _, err := lookPath(e.Binary); err != nil {
			mark = "MISSING"
		}
		fmt.Fprintf(&b, "  %2d  %-28s %-10s [%s]\n", e.Index, e.Name, e.Binary, mark)
	}

	if idx, ok := state.LoadLastSelection(lastPath); ok {
		if e, found := cat.Entry(idx); found {
			fmt.Fprintf(&b, "\nLast selection: %d (%s)\n", idx, e.Name)
			return b.String()
		}
	}
	b.WriteString("\nLast selection: none\n")
	return b.String()
}

// menuText renders the numbered menu for the plain (non-TTY) loop.
func menuText(cat Catalog, lastPath string) string {
	var b strings.Builder
	b.WriteString("AI launcher\n\n")
	for _, e := range cat.Entries() {
		key := " "
		if e.QuickKey != "" {
			key = e.QuickKey
		}
		warn := ""
		if e.Warn == "danger" {
			warn = "  !! skips permission prompts"
		}
		fmt.Fprintf(&b, "  %2d (%s)  %s%s\n", e.Index, key, e.Name, warn)
	}
	if idx, ok := state.LoadLastSelection(lastPath); ok {
		if e, found := cat.Entry(idx); found {
			fmt.Fprintf(&b, "\n   0      repeat last: %s\n", e.Name)
		}
	}
	fmt.Fprintf(&b, "  %2d      exit   (h help, s status, c clear)\n", MaxIndex+1)
	return b.String()
}
