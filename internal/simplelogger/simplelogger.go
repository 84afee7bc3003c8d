// Package simplelogger appends printf-style debug lines to the file named by TEXTDIFF_LOG_FILE.
package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// EnvLogFile names the environment variable holding the log file path.
const EnvLogFile = "TEXTDIFF_LOG_FILE"

var (
	mu  sync.Mutex
	now = time.Now
)

// Log is a minimal printf-style logger. It appends one line, prefixed with an RFC 3339 timestamp, to the file specified by TEXTDIFF_LOG_FILE.
//
// If TEXTDIFF_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	b.WriteString(now().UTC().Format(time.RFC3339))
	b.WriteByte(' ')
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}

// Enabled reports whether Log writes anywhere. Use it to skip building expensive arguments.
func Enabled() bool {
	return os.Getenv(EnvLogFile) != ""
}
