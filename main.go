package main

import (
	"os"

	"github.com/go-devlog/devlog/devlog"
)

// Example demonstrating devlog usage.
// Build with -tags devlog_debug to see the debug tier output.
func main() {
	logFile := ""

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// Usage: ./devlog [logfile]
	// Example: ./devlog ./app.log
	if logFile != "" {
		if err := devlog.Init(devlog.Config{FilePath: logFile}); err != nil {
			devlog.Warnf("file logging unavailable: %v", err)
		} else {
			defer devlog.RestoreStderr() // closes the log file
			devlog.Logf("logging to file: %s", logFile)
		}
	} else {
		devlog.Logf("logging to stderr (provide a file path to redirect)")
	}

	// Normal tier: plain, file:line, file:line + function
	devlog.Logf("hello %s", "world")
	devlog.LogLoc("annotated with the call site")
	devlog.LogFunc("annotated with the call site and function")

	// Warning tier: every line carries the WARNING marker
	devlog.Warnf("plain warning")
	devlog.WarnLoc("warning with call site")
	devlog.WarnFunc("warning with call site and function")

	// Debug tier: compiled out without -tags devlog_debug, and gated by the
	// runtime switch (DEVLOG_DEBUG=1 or SetDebug) in debug builds.
	devlog.SetDebug(true)
	devlog.Debugf("debug is on")
	devlog.DebugLoc("debug with call site")
	devlog.DebugFunc("debug with call site and function")
	devlog.SetDebug(false)
	devlog.Debugf("this line is never emitted")
}
