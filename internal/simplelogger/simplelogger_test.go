package simplelogger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func TestLog_WritesAndAppends(t *testing.T) {
	fixClock(t)
	t.Setenv(EnvLogFile, filepath.Join(t.TempDir(), "textdiff.log"))

	Log("hello %s", "world")
	Log("%d\n", 123)

	b, err := os.ReadFile(os.Getenv(EnvLogFile))
	require.NoError(t, err)
	require.Equal(t, "2024-03-01T12:30:00Z hello world\n2024-03-01T12:30:00Z 123\n", string(b))
	require.True(t, Enabled())
}

func TestLog_NoOpWhenUnset(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	Log("should not %s", "panic")
	require.False(t, Enabled())
}

func TestLog_NoOpWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvLogFile, dir)

	Log("ignored %d", 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
