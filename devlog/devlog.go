package devlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// EnvDebug is the environment variable that enables the debug tier at
// startup when set to a truthy value (1, true, yes, on).
const EnvDebug = "DEVLOG_DEBUG"

// warningMarker is prepended to every warning-tier line.
const warningMarker = "WARNING"

// ColorMode controls whether the WARNING marker is colorized.
type ColorMode int

const (
	// ColorAuto enables color only when stderr is a terminal.
	ColorAuto ColorMode = iota
	// ColorOn always emits ANSI color codes.
	ColorOn
	// ColorOff never emits ANSI color codes.
	ColorOff
)

// Config defines options for Init.
// The zero value keeps all defaults: stderr output, auto color detection,
// debug tier controlled by the build tag and DEVLOG_DEBUG.
type Config struct {
	// Debug force-enables the debug tier regardless of DEVLOG_DEBUG.
	// Default: false (environment/build-tag default applies)
	Debug bool
	// Color selects colorization of the WARNING marker.
	// Default: ColorAuto
	Color ColorMode
	// FilePath redirects output to this file (created/appended); empty keeps stderr.
	// Default: "" (stderr)
	FilePath string
}

// global state
var (
	// debugOn gates the debug tier. Read by every debug call, written by
	// SetDebug, so it is atomic rather than mutex-guarded.
	debugOn atomic.Bool

	// useColor is resolved by Init from Config.Color.
	useColor atomic.Bool

	// sink is the single active destination shared by all tiers.
	sink = &swapWriter{}

	// log.Logger instances for the three tiers. They share the sink and the
	// stdlib timestamp preamble; only their journald priority prefix differs.
	debugOut  = log.New(sink, "", log.LstdFlags)
	normalOut = log.New(sink, "", log.LstdFlags)
	warnOut   = log.New(sink, "", log.LstdFlags)

	// redirectMu serializes RedirectToFile/RestoreStderr. When two callers
	// race with different paths the last one to take the lock wins.
	redirectMu sync.Mutex

	// logFile holds the open redirect target; nil while at stderr.
	logFile *os.File
)

// Dependency injection point for testing output.
var outStderr io.Writer = os.Stderr

func init() {
	if debugAutoEnable || truthy(os.Getenv(EnvDebug)) {
		debugOn.Store(true)
	}
	useColor.Store(stderrIsTerminal())
	if shouldUseSyslogPrefix() {
		applySyslogPrefixes()
	}
}

// applySyslogPrefixes installs journald priority prefixes so systemd maps
// each tier to the matching syslog severity.
func applySyslogPrefixes() {
	debugOut.SetPrefix("<7>")
	normalOut.SetPrefix("<6>")
	warnOut.SetPrefix("<4>")
}

// Init applies startup configuration. Calling it is optional; the package is
// usable with its defaults from the first import.
func Init(config Config) error {
	if config.Debug {
		debugOn.Store(true)
	}
	switch config.Color {
	case ColorOn:
		useColor.Store(true)
	case ColorOff:
		useColor.Store(false)
	default:
		useColor.Store(stderrIsTerminal())
	}
	if config.FilePath != "" {
		return RedirectToFile(config.FilePath)
	}
	return nil
}

// SetDebug enables or disables the debug tier at runtime. Idempotent.
// Normal and warning tiers are never affected.
func SetDebug(on bool) {
	debugOn.Store(on)
}

// DebugEnabled reports whether the debug tier is currently enabled.
func DebugEnabled() bool {
	return debugOn.Load()
}

// RedirectToFile switches all subsequent output from stderr (or a previous
// redirect target) to the file at path, opened in append mode. On error the
// active destination is left unchanged. A previously installed redirect file
// is closed once the new one is in place. Concurrent callers are serialized;
// the last one wins.
func RedirectToFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("devlog: redirect to %s: %w", path, err)
	}
	redirectMu.Lock()
	defer redirectMu.Unlock()
	old := logFile
	logFile = f
	sink.swap(f)
	if old != nil {
		old.Close()
	}
	return nil
}

// RestoreStderr closes the current redirect file and returns output to
// stderr. It is a no-op (nil) when no redirect is active, so calling it
// repeatedly is safe.
func RestoreStderr() error {
	redirectMu.Lock()
	defer redirectMu.Unlock()
	if logFile == nil {
		return nil
	}
	sink.swap(nil)
	err := logFile.Close()
	logFile = nil
	if err != nil {
		return fmt.Errorf("devlog: restore stderr: %w", err)
	}
	return nil
}

// swapWriter is the shared destination for all tiers. Write holds the mutex
// for the whole line, so a swap happens strictly before or after any line,
// never between its bytes. A nil target means the injectable stderr writer.
type swapWriter struct {
	mu         sync.Mutex
	w          io.Writer
	redirected atomic.Bool
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.w
	if w == nil {
		w = outStderr
	}
	return w.Write(p)
}

func (s *swapWriter) swap(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.redirected.Store(w != nil)
	s.mu.Unlock()
}

// --- Normal tier ---

// Logf logs a message formatted with fmt.Sprintf, with no annotation.
// Thread-safe for concurrent use.
func Logf(format string, v ...any) {
	emit(normalOut, "", "", format, v...)
}

// LogLoc logs a message annotated with the caller's file name and line.
// Thread-safe for concurrent use.
func LogLoc(format string, v ...any) {
	emit(normalOut, "", callerLocation(2), format, v...)
}

// LogFunc logs a message annotated with the caller's file name, line and
// function. Thread-safe for concurrent use.
func LogFunc(format string, v ...any) {
	emit(normalOut, "", callerFunction(2), format, v...)
}

// LogAt logs a message annotated with an explicit file name and line. It is
// intended for wrappers that capture their own call sites; file is emitted
// verbatim.
func LogAt(file string, line int, format string, v ...any) {
	emit(normalOut, "", locationTag(file, line), format, v...)
}

// LogAtFunc logs a message annotated with an explicit file name, line and
// function name.
func LogAtFunc(file string, line int, fn string, format string, v ...any) {
	emit(normalOut, "", locationTag(file, line)+" "+fn, format, v...)
}

// --- Warning tier ---

// Warnf logs a message prefixed with the WARNING marker, with no annotation.
// Warnings are never gated by the debug switch. Thread-safe for concurrent use.
func Warnf(format string, v ...any) {
	emit(warnOut, warningTag(), "", format, v...)
}

// WarnLoc logs a WARNING message annotated with the caller's file name and
// line. Thread-safe for concurrent use.
func WarnLoc(format string, v ...any) {
	emit(warnOut, warningTag(), callerLocation(2), format, v...)
}

// WarnFunc logs a WARNING message annotated with the caller's file name,
// line and function. Thread-safe for concurrent use.
func WarnFunc(format string, v ...any) {
	emit(warnOut, warningTag(), callerFunction(2), format, v...)
}

// WarnAt logs a WARNING message annotated with an explicit file name and line.
func WarnAt(file string, line int, format string, v ...any) {
	emit(warnOut, warningTag(), locationTag(file, line), format, v...)
}

// WarnAtFunc logs a WARNING message annotated with an explicit file name,
// line and function name.
func WarnAtFunc(file string, line int, fn string, format string, v ...any) {
	emit(warnOut, warningTag(), locationTag(file, line)+" "+fn, format, v...)
}

// --- Emission core ---

// emit renders "[marker ][annotation ]message" and writes it through the
// tier's logger, which supplies the timestamp preamble and trailing newline.
func emit(l *log.Logger, marker, annotation, format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	var b strings.Builder
	if marker != "" {
		b.WriteString(marker)
		b.WriteByte(' ')
	}
	if annotation != "" {
		b.WriteString(annotation)
		b.WriteByte(' ')
	}
	b.WriteString(msg)
	l.Println(b.String())
}

// warningTag returns the warning marker, colorized yellow on terminals. Color is
// suppressed while a file redirect is active.
func warningTag() string {
	if useColor.Load() && !sink.redirected.Load() {
		return "\033[33m" + warningMarker + "\033[0m"
	}
	return warningMarker
}

func locationTag(file string, line int) string {
	return fmt.Sprintf("%s:%d", file, line)
}

// callerLocation returns "file.go:line" for the caller at the given stack
// depth. The file is reduced to its base name.
func callerLocation(depth int) string {
	_, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown:0"
	}
	return locationTag(filepath.Base(file), line)
}

// callerFunction returns "file.go:line package.Function" for the caller at
// the given stack depth.
func callerFunction(depth int) string {
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown:0 unknown"
	}
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		name = fn.Name()
		// Strip package path, keep package.Function
		if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
			name = name[i+1:]
		}
	}
	return locationTag(filepath.Base(file), line) + " " + name
}

func stderrIsTerminal() bool {
	f, ok := outStderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
