package diff

import (
	"fmt"
	"strings"
)

// Colors (ANSI) for pretty output.
const (
	reset     = "\x1b[0m"
	blackFG   = "\x1b[30m"
	pinkLine  = "\x1b[48;5;224m" // light pink for deleted lines
	pinkSpan  = "\x1b[48;5;217m" // slightly darker pink for deleted spans
	greenLine = "\x1b[48;5;194m" // light green for added lines
	greenSpan = "\x1b[48;5;114m" // slightly darker green for added spans
	cyanBold  = "\x1b[1;36m"
)

// prettyMarkup highlights spans inside a line that already has a base background, so closing a span restores the base.
func prettyMarkup(escape func(string) string) Markup {
	return Markup{
		DeleteOpen:  reset + blackFG + pinkSpan,
		DeleteClose: reset + blackFG + pinkLine,
		InsertOpen:  reset + blackFG + greenSpan,
		InsertClose: reset + blackFG + greenLine,
		Escape:      escape,
	}
}

// RenderPretty returns a human-oriented, colorized rendering of entries without hunk headers. Each line is prefixed like a unified diff: " " for context, "-" for
// deletions, and "+" for insertions. In each changed region, the k-th deleted line and the k-th inserted line are compared character by character and their changed
// runs highlighted; lines without a partner are highlighted whole. All deleted lines of a region precede its inserted lines.
//
// Options read: WithLabels, WithContext, WithTabWidth. If both labels are empty, no header is printed. Otherwise a single cyan header line is emitted in one of these forms:
//   - "add <new>:" when only the new label is set
//   - "delete <old>:" when only the old label is set
//   - "<name>:" when both are equal
//   - "<old> -> <new>:" otherwise
//
// The returned string uses "\n" as the line separator. Text is sanitized for the terminal. The output is not a machine-readable diff; use Unified for that.
func RenderPretty(entries []Entry, opts ...Option) string {
	o := newOptions(opts)
	escape := terminalEscaper(o.tabWidth)
	m := prettyMarkup(escape)

	var out []string
	if header := prettyHeader(o.oldLabel, o.newLabel); header != "" {
		out = append(out, cyanBold+header+reset)
	}

	for _, h := range Hunks(entries, opts...) {
		for i := 0; i < len(h.Entries); {
			if h.Entries[i].Op == OpEqual {
				out = append(out, blackFG+" "+escape(h.Entries[i].OldText)+reset)
				i++
				continue
			}

			var dels, ins []string
			for ; i < len(h.Entries) && h.Entries[i].Op != OpEqual; i++ {
				e := h.Entries[i]
				if e.hasOld() {
					dels = append(dels, e.OldText)
				}
				if e.hasNew() {
					ins = append(ins, e.NewText)
				}
			}
			out = append(out, renderRegion(dels, ins, m)...)
		}
	}

	return strings.Join(out, defaultEOL)
}

// renderRegion renders one changed region: deleted lines, then inserted lines.
func renderRegion(dels, ins []string, m Markup) []string {
	oldContent := make([]string, len(dels))
	newContent := make([]string, len(ins))
	for k, n := 0, max(len(dels), len(ins)); k < n; k++ {
		switch {
		case k < len(dels) && k < len(ins):
			oldContent[k], newContent[k] = highlightPair(dels[k], ins[k], m)
		case k < len(dels):
			w := markupWriter{m: m}
			w.write(OpDelete, dels[k])
			oldContent[k] = w.String()
		default:
			w := markupWriter{m: m}
			w.write(OpInsert, ins[k])
			newContent[k] = w.String()
		}
	}

	lines := make([]string, 0, len(dels)+len(ins))
	for _, c := range oldContent {
		lines = append(lines, blackFG+pinkLine+"-"+c+reset)
	}
	for _, c := range newContent {
		lines = append(lines, blackFG+greenLine+"+"+c+reset)
	}
	return lines
}

func prettyHeader(oldLabel, newLabel string) string {
	switch {
	case oldLabel == "" && newLabel == "":
		return ""
	case oldLabel == "":
		return fmt.Sprintf("add %s:", newLabel)
	case newLabel == "":
		return fmt.Sprintf("delete %s:", oldLabel)
	case oldLabel == newLabel:
		return fmt.Sprintf("%s:", oldLabel)
	default:
		return fmt.Sprintf("%s -> %s:", oldLabel, newLabel)
	}
}
