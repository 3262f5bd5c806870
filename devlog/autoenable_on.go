//go:build devlog_autoenable

package devlog

// debugAutoEnable turns the debug tier on at startup without requiring
// DEVLOG_DEBUG in the environment.
const debugAutoEnable = true
