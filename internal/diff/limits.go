package diff

import (
	"errors"
	"fmt"
)

// ErrInputTooLarge is matched (errors.Is) by every *LimitError.
var ErrInputTooLarge = errors.New("input too large")

// Limits bounds the inputs a caller is willing to diff. Alignment is O(m·n), so interactive callers should Check before computing. A zero field means no limit.
//
// Limits never changes a diff: inputs within the limits are diffed exactly, and inputs beyond them are rejected, not truncated.
type Limits struct {
	MaxLines      int // Max lines per side.
	MaxLineLength int // Max runes per line.
}

// LimitError describes which limit an input exceeded.
type LimitError struct {
	Side  string // "old" or "new".
	Line  int    // 1-based line that is too long; 0 for a line-count violation.
	Got   int
	Limit int
}

func (e *LimitError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s input has %d lines, limit is %d", e.Side, e.Got, e.Limit)
	}
	return fmt.Sprintf("%s input line %d has %d characters, limit is %d", e.Side, e.Line, e.Got, e.Limit)
}

// Is reports whether target is ErrInputTooLarge.
func (e *LimitError) Is(target error) bool {
	return target == ErrInputTooLarge
}

// Check returns a *LimitError for the first limit that oldText or newText (split as by ComputeDiff) exceeds, or nil.
func (l Limits) Check(oldText, newText string) error {
	if err := l.checkSide("old", SplitLines(oldText)); err != nil {
		return err
	}
	return l.checkSide("new", SplitLines(newText))
}

// CheckLine is Check for a single line pair, as passed to HighlightInline. Only MaxLineLength applies, and each argument is measured whole: a "\n" inside it
// counts as one character, not as a line break.
func (l Limits) CheckLine(oldLine, newLine string) error {
	if err := l.checkLength("old", 1, oldLine); err != nil {
		return err
	}
	return l.checkLength("new", 1, newLine)
}

func (l Limits) checkSide(side string, lines []string) error {
	if l.MaxLines > 0 && len(lines) > l.MaxLines {
		return &LimitError{Side: side, Got: len(lines), Limit: l.MaxLines}
	}
	for i, line := range lines {
		if err := l.checkLength(side, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func (l Limits) checkLength(side string, lineNum int, line string) error {
	if l.MaxLineLength <= 0 {
		return nil
	}
	if n := runeLen(line); n > l.MaxLineLength {
		return &LimitError{Side: side, Line: lineNum, Got: n, Limit: l.MaxLineLength}
	}
	return nil
}
