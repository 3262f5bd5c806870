//go:build devlog_debug

package devlog

// Debug tier, compiled in only with the devlog_debug build tag. Every entry
// point checks the runtime switch before doing any formatting work, so a
// disabled call costs one atomic load.

// Debugf logs a debug message formatted with fmt.Sprintf, with no annotation.
// No-op while the debug tier is disabled. Thread-safe for concurrent use.
func Debugf(format string, v ...any) {
	if !debugOn.Load() {
		return
	}
	emit(debugOut, "", "", format, v...)
}

// DebugLoc logs a debug message annotated with the caller's file name and
// line. No-op while the debug tier is disabled.
func DebugLoc(format string, v ...any) {
	if !debugOn.Load() {
		return
	}
	emit(debugOut, "", callerLocation(2), format, v...)
}

// DebugFunc logs a debug message annotated with the caller's file name, line
// and function. No-op while the debug tier is disabled.
func DebugFunc(format string, v ...any) {
	if !debugOn.Load() {
		return
	}
	emit(debugOut, "", callerFunction(2), format, v...)
}

// DebugAt logs a debug message annotated with an explicit file name and line;
// file is emitted verbatim. No-op while the debug tier is disabled.
func DebugAt(file string, line int, format string, v ...any) {
	if !debugOn.Load() {
		return
	}
	emit(debugOut, "", locationTag(file, line), format, v...)
}

// DebugAtFunc logs a debug message annotated with an explicit file name, line
// and function name. No-op while the debug tier is disabled.
func DebugAtFunc(file string, line int, fn string, format string, v ...any) {
	if !debugOn.Load() {
		return
	}
	emit(debugOut, "", locationTag(file, line)+" "+fn, format, v...)
}
