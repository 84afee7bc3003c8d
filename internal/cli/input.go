package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/codalotl/textdiff/internal/config"
	"github.com/codalotl/textdiff/internal/diff"
	"github.com/codalotl/textdiff/internal/simplelogger"
)

const stdinPath = "-"

// normalizeStdinArgs restores "-" in path arguments. kingpin parses a bare "-" as an empty string.
func (r *runner) normalizeStdinArgs() {
	for _, p := range []*string{&r.diff.old, &r.diff.new, &r.words.old, &r.words.new, &r.report.old, &r.report.new} {
		*p = stdinArg(*p)
	}
	for i, p := range r.stat.paths {
		r.stat.paths[i] = stdinArg(p)
	}
}

func stdinArg(path string) string {
	if path == "" {
		return stdinPath
	}
	return path
}

// readPair reads the old and new inputs. At most one of them may be stdin.
func (r *runner) readPair(oldPath, newPath string) (string, string, error) {
	if oldPath == stdinPath && newPath == stdinPath {
		return "", "", usageErrorf("only one input may be read from stdin")
	}
	oldText, err := r.readInput(oldPath)
	if err != nil {
		return "", "", err
	}
	newText, err := r.readInput(newPath)
	if err != nil {
		return "", "", err
	}
	if simplelogger.Enabled() {
		simplelogger.Log("read %s (%d bytes, %d lines) and %s (%d bytes, %d lines)", oldPath, len(oldText), strings.Count(oldText, "\n")+1, newPath, len(newText), strings.Count(newText, "\n")+1)
	}
	return oldText, newText, nil
}

func (r *runner) readInput(path string) (string, error) {
	if path == stdinPath {
		b, err := io.ReadAll(r.in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(r.resolve(path))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// resolve makes a relative path relative to the working directory.
func (r *runner) resolve(path string) string {
	if filepath.IsAbs(path) || r.workDir == "" {
		return path
	}
	return filepath.Join(r.workDir, path)
}

func (r *runner) checkLimits(oldText, newText string) error {
	if err := r.cfg.Limits().Check(oldText, newText); err != nil {
		simplelogger.Log("rejected input: %v", err)
		return err
	}
	return nil
}

// labels picks the header labels for a pair of paths: flag, then config, then the path itself. Stdin gets the library default.
func (r *runner) labels(oldPath, newPath, oldFlag, newFlag string) (string, string) {
	pick := func(flag, configured, path, fallback string) string {
		switch {
		case flag != "":
			return flag
		case configured != "":
			return configured
		case path != stdinPath:
			return path
		default:
			return fallback
		}
	}
	return pick(oldFlag, r.cfg.OldLabel, oldPath, "original"), pick(newFlag, r.cfg.NewLabel, newPath, "modified")
}

func (r *runner) useColor() bool {
	return colorEnabled(r.color, r.out, r.getenv)
}

// colorEnabled resolves a color mode. In auto mode color requires w to be a terminal and NO_COLOR to be unset or empty.
func colorEnabled(mode string, w io.Writer, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *runner) markup(name string) diff.Markup {
	switch name {
	case markupHTML:
		return diff.HTMLMarkup
	case markupANSI:
		return diff.ANSIMarkup
	case markupWord:
		return diff.WordMarkup
	}
	if r.useColor() {
		return diff.ANSIMarkup
	}
	return diff.WordMarkup
}
