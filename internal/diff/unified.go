package diff

import (
	"strings"

	"github.com/fatih/color"
)

// GenerateUnifiedDiff diffs oldText and newText by line and returns a unified report (see Unified). Options read: WithModifyCoalescing, WithLabels, WithContext,
// WithColor.
func GenerateUnifiedDiff(oldText, newText string, opts ...Option) string {
	return Unified(ComputeDiff(oldText, newText, opts...), opts...)
}

// Unified renders entries as a unified-diff-style report:
//
//	--- original
//	+++ modified
//	@@ -2,3 +2,4 @@
//	-old line
//	+new line
//
// The two header lines are always present, followed by one "@@" header and body per hunk (see Hunks). Body lines are " " + text for equal entries, "-" + old text
// for deletes, "+" + new text for inserts, and a "-" line then a "+" line for modifies. Lines are joined with "\n" and there is no trailing newline.
//
// Options read: WithLabels, WithContext, WithColor. With color, file headers are bold cyan, hunk headers magenta, deletions red and insertions green.
func Unified(entries []Entry, opts ...Option) string {
	o := newOptions(opts)
	p := palette{enabled: o.color}

	out := []string{
		p.paint("--- "+o.oldLabel, color.Bold, color.FgCyan),
		p.paint("+++ "+o.newLabel, color.Bold, color.FgCyan),
	}
	for _, h := range Hunks(entries, opts...) {
		out = append(out, p.paint(h.Header(), color.FgMagenta))
		for _, e := range h.Entries {
			switch e.Op {
			case OpEqual:
				out = append(out, " "+e.OldText)
			case OpDelete:
				out = append(out, p.paint("-"+e.OldText, color.FgRed))
			case OpInsert:
				out = append(out, p.paint("+"+e.NewText, color.FgGreen))
			case OpModify:
				out = append(out, p.paint("-"+e.OldText, color.FgRed), p.paint("+"+e.NewText, color.FgGreen))
			}
		}
	}
	return strings.Join(out, defaultEOL)
}

// palette colors report lines. Colors are forced on when enabled, regardless of whether stdout is a terminal; callers decide that.
type palette struct {
	enabled bool
}

func (p palette) paint(s string, attrs ...color.Attribute) string {
	if !p.enabled {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
