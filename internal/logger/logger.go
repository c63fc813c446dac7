package logger

import (
	"github.com/fatih/color" // Colored console output for log levels
)

// Colorized printing functions for the different log levels.
// These are package-level variables holding functions that behave like
// fmt.Printf, but with text colored appropriately for the level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta so they stand out
// without being alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is assigned dynamically during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger, enabling or disabling debug logging.
// When disabled, Debug is a no-op that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Commands that never call Init still get a usable Debug.
	Init(false)
}
