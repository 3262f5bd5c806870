package devlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirect_LogsToFileNotStderr(t *testing.T) {
	buf := captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "redirect.log")

	require.NoError(t, RedirectToFile(logPath))
	Logf("into the file")
	Warnf("warned into the file")
	require.NoError(t, RestoreStderr())
	Logf("back on stderr")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(content)

	assert.Contains(t, log, "into the file")
	assert.Contains(t, log, "WARNING")
	assert.NotContains(t, log, "back on stderr")

	assert.NotContains(t, buf.String(), "into the file")
	assert.Contains(t, buf.String(), "back on stderr")
}

func TestRedirect_InvalidPathLeavesDestination(t *testing.T) {
	buf := captureOutput(t)

	err := RedirectToFile(filepath.Join(t.TempDir(), "missing", "sub", "dir.log"))
	require.Error(t, err)

	Logf("still on stderr")
	assert.Contains(t, buf.String(), "still on stderr")
}

func TestRedirect_FailedSecondRedirectKeepsFirstFile(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "first.log")

	require.NoError(t, RedirectToFile(logPath))
	require.Error(t, RedirectToFile(filepath.Join(t.TempDir(), "missing", "second.log")))

	Logf("after failed redirect")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "after failed redirect")
}

func TestRedirect_SecondRedirectSwitchesFiles(t *testing.T) {
	captureOutput(t)
	tmpDir := t.TempDir()
	pathA := filepath.Join(tmpDir, "a.log")
	pathB := filepath.Join(tmpDir, "b.log")

	require.NoError(t, RedirectToFile(pathA))
	Logf("line for a")
	require.NoError(t, RedirectToFile(pathB))
	Logf("line for b")

	contentA, err := os.ReadFile(pathA)
	require.NoError(t, err)
	contentB, err := os.ReadFile(pathB)
	require.NoError(t, err)

	assert.Contains(t, string(contentA), "line for a")
	assert.NotContains(t, string(contentA), "line for b")
	assert.Contains(t, string(contentB), "line for b")
}

func TestRedirect_Appends(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "append.log")

	require.NoError(t, RedirectToFile(logPath))
	Logf("first message")
	require.NoError(t, RestoreStderr())

	require.NoError(t, RedirectToFile(logPath))
	Logf("second message")
	require.NoError(t, RestoreStderr())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(content)

	assert.Contains(t, log, "first message")
	assert.Contains(t, log, "second message")
}

func TestRestoreStderr_IdempotentAtDefault(t *testing.T) {
	captureOutput(t)

	require.NoError(t, RestoreStderr())
	require.NoError(t, RestoreStderr())
}

func TestRedirect_FileTimestamped(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "stamped.log")

	require.NoError(t, RedirectToFile(logPath))
	Logf("stamped line")
	require.NoError(t, RestoreStderr())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.NotEmpty(t, lines)
	assert.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `, lines[0])
}

func TestRedirect_SuppressesColor(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "color.log")

	require.NoError(t, Init(Config{Color: ColorOn, FilePath: logPath}))
	Warnf("colored console, plain file")
	require.NoError(t, RestoreStderr())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(content)

	assert.Contains(t, log, "WARNING")
	assert.NotContains(t, log, "\033[", "file output must not carry ANSI codes")
}

func TestInit_FilePathRedirects(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "init.log")

	require.NoError(t, Init(Config{FilePath: logPath}))
	Logf("via init")
	require.NoError(t, RestoreStderr())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "via init")
}

func TestInit_BadFilePathReturnsError(t *testing.T) {
	buf := captureOutput(t)

	err := Init(Config{FilePath: filepath.Join(t.TempDir(), "missing", "init.log")})
	require.Error(t, err)

	Logf("destination unchanged")
	assert.Contains(t, buf.String(), "destination unchanged")
}
