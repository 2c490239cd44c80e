// Package debug is the process-wide assertion and debug-message
// facility. Assertions are compiled in with the "assertions" build tag
// and are a no-op otherwise; setting MODCHECK_ASSERT=1 forces them on
// in a release build. The facility checks invariants during
// development and is orthogonal to the toolkit's recoverable error
// paths.
package debug

import (
	"fmt"
	"log/slog"
	"os"
)

var enabled = buildAssertions || os.Getenv("MODCHECK_ASSERT") == "1"

// Enabled reports whether assertions are active in this process.
func Enabled() bool { return enabled }

// Assert panics with the formatted message when cond is false and
// assertions are active. No-op otherwise.
func Assert(cond bool, format string, args ...any) {
	if enabled && !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// Fail unconditionally trips an assertion when assertions are active.
func Fail(format string, args ...any) {
	if enabled {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// Printf emits a debug message through slog when assertions are
// active; silent otherwise.
func Printf(format string, args ...any) {
	if enabled {
		slog.Debug(fmt.Sprintf(format, args...))
	}
}
