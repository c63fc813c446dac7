package launcher

import (
	"bufio"
	"fmt"
	"io"

	"aictl/internal/state"
)

// RunPlain drives the launcher as a line-oriented loop on the given streams.
// It is used with --plain and whenever stdout is not a terminal, and it is
// the loop the tests exercise. The loop only ends on exit, EOF, or a
// successful dispatch (which replaces the process and never returns here).
func RunPlain(in io.Reader, out io.Writer, d *Dispatcher) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, menuText(d.Catalog, d.LastPath))
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		cmd := d.Catalog.Resolve(scanner.Text())
		switch cmd.Action {
		case ActionExit:
			return nil

		case ActionHelp:
			fmt.Fprintln(out, helpText(d.Catalog))

		case ActionStatus:
			fmt.Fprintln(out, StatusText(d.Catalog, d.LastPath, d.LookPath))

		case ActionClear:
			if err := state.ClearLastSelection(d.LastPath); err != nil {
				fmt.Fprintf(out, "could not clear last selection: %v\n", err)
			} else {
				fmt.Fprintln(out, "last selection cleared")
			}

		case ActionRepeat:
			entry, err := d.Repeat()
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			if err := d.Dispatch(entry); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}

		case ActionDispatch:
			if cmd.Entry.Warn == "danger" {
				fmt.Fprintf(out, "!! %s runs without permission prompts\n", cmd.Entry.Name)
			}
			if err := d.Dispatch(cmd.Entry); err != nil {
				fmt.Fprintf(out, "%v\n", err)
			}

		default:
			fmt.Fprintln(out, "unrecognized input, try h for help")
		}
	}
}
