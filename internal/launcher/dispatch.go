package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"aictl/internal/config"
	"aictl/internal/logger"
	"aictl/internal/state"
)

// Action classifies what a line of menu input asks for.
type Action int

const (
	// ActionInvalid covers empty lines and anything unrecognized. Invalid
	// input never terminates the loop; the menu re-prompts.
	ActionInvalid Action = iota
	ActionDispatch
	ActionRepeat
	ActionHelp
	ActionStatus
	ActionClear
	ActionExit
)

// Command is the result of resolving one line of input. Entry is only
// meaningful for ActionDispatch.
type Command struct {
	Action Action
	Entry  config.LaunchEntry
}

// Resolve interprets a single line of input against the catalog: a numeric
// slot (0 repeats, 11 exits), a control key (h/s/c/q/e), or a quick key.
// Resolution is pure so the index -> (binary, args) mapping is trivially
// stable across runs.
func (c Catalog) Resolve(input string) Command {
	in := strings.TrimSpace(input)
	if in == "" {
		return Command{Action: ActionInvalid}
	}

	if n, err := strconv.Atoi(in); err == nil {
		switch {
		case n == 0:
			return Command{Action: ActionRepeat}
		case n == MaxIndex+1:
			return Command{Action: ActionExit}
		default:
			if e, ok := c.Entry(n); ok {
				return Command{Action: ActionDispatch, Entry: e}
			}
			return Command{Action: ActionInvalid}
		}
	}

	switch strings.ToLower(in) {
	case "h", "help":
		return Command{Action: ActionHelp}
	case "s", "status":
		return Command{Action: ActionStatus}
	case "c", "clear":
		return Command{Action: ActionClear}
	case "q", "e", "quit", "exit":
		return Command{Action: ActionExit}
	}

	if e, ok := c.ByQuickKey(in); ok {
		return Command{Action: ActionDispatch, Entry: e}
	}
	return Command{Action: ActionInvalid}
}

// Dispatcher persists the selection and hands the terminal over to the
// chosen tool. LookPath and Exec are injectable for tests; the defaults
// resolve via $PATH and replace the process with inherited stdio.
type Dispatcher struct {
	Catalog  Catalog
	LastPath string

	LookPath func(file string) (string, error)
	Exec     func(argv0 string, argv []string, envv []string) error
}

// NewDispatcher wires a dispatcher against the real exec syscall.
func NewDispatcher(cat Catalog, lastPath string) *Dispatcher {
	return &Dispatcher{
		Catalog:  cat,
		LastPath: lastPath,
		LookPath: exec.LookPath,
		Exec:     unix.Exec,
	}
}

// Repeat resolves slot 0: the entry recorded by the previous dispatch.
func (d *Dispatcher) Repeat() (config.LaunchEntry, error) {
	idx, ok := state.LoadLastSelection(d.LastPath)
	if !ok {
		return config.LaunchEntry{}, fmt.Errorf("no previous selection recorded")
	}
	e, ok := d.Catalog.Entry(idx)
	if !ok {
		// Stale record pointing at a slot that no longer exists.
		return config.LaunchEntry{}, fmt.Errorf("recorded selection %d is not in the current menu", idx)
	}
	return e, nil
}

// Dispatch verifies the target binary exists, records the selection, then
// replaces the current process with the tool. The existence check happens
// before exec so a missing binary is a recoverable warning rather than a
// dead process; on success this function never returns.
func (d *Dispatcher) Dispatch(e config.LaunchEntry) error {
	path, err := d.LookPath(e.Binary)
	if err != nil {
		return fmt.Errorf("command not found: %s (install it or run `aictl tools sync`)", e.Binary)
	}

	if err := state.SaveLastSelection(d.LastPath, e.Index); err != nil {
		// Best-effort persistence: losing the record only disables slot 0.
		logger.Warn("[WARN] Failed to record selection: %v\n", err)
	}

	argv := append([]string{e.Binary}, e.Args...)
	logger.Debug("[DEBUG] exec %s %s\n", path, strings.Join(e.Args, " "))
	return d.Exec(path, argv, os.Environ())
}
