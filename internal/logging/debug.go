package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// Output receives debug lines. Tests may swap it for a buffer.
var Output io.Writer = os.Stderr

var verbose atomic.Bool

// SetVerbose forces debug output on or off regardless of TODO_DEBUG
func SetVerbose(enabled bool) {
	verbose.Store(enabled)
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG or SetVerbose
func DebugEnabled() bool {
	return verbose.Load() || os.Getenv("TODO_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(Output, "[debug] "+format+"\n", args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(Output, append([]interface{}{"[debug]"}, args...)...)
	}
}
