//go:build !devlog_debug

package devlog

// No-op debug tier for builds without the devlog_debug tag. The bodies are
// empty and inline away, but Go still evaluates the arguments at the call
// site; only the formatting and I/O are removed.

// Debugf is a no-op when the debug tier is not compiled in.
func Debugf(format string, v ...any) {}

// DebugLoc is a no-op when the debug tier is not compiled in.
func DebugLoc(format string, v ...any) {}

// DebugFunc is a no-op when the debug tier is not compiled in.
func DebugFunc(format string, v ...any) {}

// DebugAt is a no-op when the debug tier is not compiled in.
func DebugAt(file string, line int, format string, v ...any) {}

// DebugAtFunc is a no-op when the debug tier is not compiled in.
func DebugAtFunc(file string, line int, fn string, format string, v ...any) {}
