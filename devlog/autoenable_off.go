//go:build !devlog_autoenable

package devlog

// Without the devlog_autoenable tag the startup default comes from the
// DEVLOG_DEBUG environment variable alone.
const debugAutoEnable = false
