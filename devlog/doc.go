// Package devlog provides enhanced console logging with source-location
// annotation, a compile-time removable debug tier, and stderr-to-file
// redirection.
//
// # Tiers
//
// Three tiers share the same format-and-emit shape:
//
//   - Debug: gated by a runtime switch and only compiled in with the
//     devlog_debug build tag
//   - Normal: always emitted
//   - Warning: always emitted, every line carries the literal WARNING marker
//
// Each tier offers a plain variant, a variant annotated with the calling
// file and line, and a variant that adds the calling function:
//
//	devlog.Logf("server started on port %d", 8080)
//	devlog.LogLoc("cache warmed")             // main.go:42 cache warmed
//	devlog.WarnFunc("disk usage at %d%%", 91) // WARNING main.go:57 main.check disk usage at 91%
//
// The ...At and ...AtFunc forms take the file, line and function explicitly,
// for wrappers that capture their own call sites.
//
// # Debug Tier
//
// Debug calls are compiled to empty no-ops unless the program is built with
// -tags devlog_debug. In a debug build they still check a runtime switch,
// enabled at startup by the DEVLOG_DEBUG environment variable (or the
// devlog_autoenable build tag) and toggled with SetDebug:
//
//	devlog.SetDebug(true)
//	devlog.Debugf("attempt %d failed: %v", n, err)
//
// A disabled debug call performs no formatting and no I/O. Note that in a
// stripped build Go still evaluates the call's arguments; only the body is
// removed.
//
// # Output Redirection
//
// All tiers write to stderr by default. RedirectToFile atomically switches
// the destination to an append-mode file and RestoreStderr switches back:
//
//	if err := devlog.RedirectToFile("/var/log/myapp.log"); err != nil {
//	    // previous destination still active
//	}
//	defer devlog.RestoreStderr()
//
// A failed redirect leaves the current destination untouched. Redirection is
// safe against concurrent logging: a swap never lands in the middle of a line.
//
// # Setup
//
// No initialization is required. Init optionally applies startup settings:
//
//	devlog.Init(devlog.Config{Color: devlog.ColorOff, FilePath: "app.log"})
//
// Lines carry the standard library log timestamp preamble. When running
// under systemd (JOURNAL_STREAM set), journald priority prefixes are added
// per tier.
package devlog
