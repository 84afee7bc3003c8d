package diff

import (
	"strings"

	"github.com/codalotl/textdiff/internal/lcs"
	"github.com/codalotl/textdiff/internal/q/termformat"
	"github.com/codalotl/textdiff/internal/q/uni"
)

// Markup wraps changed runs of text. Each maximal run of deleted (inserted) text is written as DeleteOpen + text + DeleteClose (InsertOpen + text + InsertClose).
// If Escape is non-nil, every piece of text (changed or not) passes through it before wrapping; the markers themselves are never escaped.
type Markup struct {
	DeleteOpen  string
	DeleteClose string
	InsertOpen  string
	InsertClose string
	Escape      func(string) string
}

var (
	// HTMLMarkup wraps runs in <del>/<ins> and escapes text with EscapeHTML.
	HTMLMarkup = Markup{DeleteOpen: "<del>", DeleteClose: "</del>", InsertOpen: "<ins>", InsertClose: "</ins>", Escape: EscapeHTML}

	// ANSIMarkup highlights runs with terminal background colors (black on pink for deletions, black on green for insertions). Text is sanitized so that it cannot
	// emit its own escape sequences or line breaks.
	ANSIMarkup = Markup{
		DeleteOpen:  "\x1b[30;48;5;217m",
		DeleteClose: "\x1b[0m",
		InsertOpen:  "\x1b[30;48;5;114m",
		InsertClose: "\x1b[0m",
		Escape:      sanitizeTerminal,
	}

	// WordMarkup uses the git --word-diff=plain markers [-...-] and {+...+}. Text is not escaped.
	WordMarkup = Markup{DeleteOpen: "[-", DeleteClose: "-]", InsertOpen: "{+", InsertClose: "+}"}
)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five markup metacharacters & < > " ' with entities. It is a pure mapping; everything else is unchanged.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

func sanitizeTerminal(s string) string {
	return termformat.Sanitize(s, termformat.Options{})
}

// terminalEscaper is sanitizeTerminal with tabs expanded to tabWidth spaces when tabWidth > 0.
func terminalEscaper(tabWidth int) func(string) string {
	if tabWidth <= 0 {
		return sanitizeTerminal
	}
	return func(s string) string {
		return termformat.Sanitize(s, termformat.Options{TabWidth: tabWidth})
	}
}

// HighlightInline compares oldLine and newLine grapheme by grapheme and returns both lines with their changed runs marked. Options read: WithMarkup.
//
// The old rendering holds the equal and deleted characters, with deleted runs wrapped in the delete markers. The new rendering holds the equal and inserted characters,
// with inserted runs wrapped in the insert markers. Characters that exist only on the other side contribute nothing and do not split a run.
//
// Characters are grapheme clusters, so a combining mark is part of the character it follows: changing only the accent of "é" marks the whole "é" as deleted
// and inserted.
//
// It is meant for single lines; a "\n" is compared like any other character.
func HighlightInline(oldLine, newLine string, opts ...Option) (string, string) {
	o := newOptions(opts)
	return highlightPair(oldLine, newLine, o.markup)
}

func highlightPair(oldLine, newLine string, m Markup) (string, string) {
	a := uni.Graphemes(oldLine)
	b := uni.Graphemes(newLine)

	oldW := markupWriter{m: m}
	newW := markupWriter{m: m}
	for _, ed := range lcs.Diff(a, b) {
		switch ed.Op {
		case lcs.Equal:
			oldW.write(OpEqual, a[ed.A-1])
			newW.write(OpEqual, b[ed.B-1])
		case lcs.Delete:
			oldW.write(OpDelete, a[ed.A-1])
		case lcs.Insert:
			newW.write(OpInsert, b[ed.B-1])
		}
	}
	return oldW.String(), newW.String()
}

// FormatWordDiff renders the entries of a word diff (see ComputeWordDiff) as one text, with deleted and inserted runs wrapped by m. A modify entry is written as its
// deleted text followed by its inserted text.
func FormatWordDiff(entries []Entry, m Markup) string {
	w := markupWriter{m: m}
	for _, e := range entries {
		switch e.Op {
		case OpEqual:
			w.write(OpEqual, e.OldText)
		case OpDelete:
			w.write(OpDelete, e.OldText)
		case OpInsert:
			w.write(OpInsert, e.NewText)
		case OpModify:
			w.write(OpDelete, e.OldText)
			w.write(OpInsert, e.NewText)
		}
	}
	return w.String()
}

// markupWriter accumulates text, keeping at most one delete or insert run open at a time.
type markupWriter struct {
	m    Markup
	b    strings.Builder
	open Op // OpEqual when no run is open.
}

func (w *markupWriter) write(op Op, s string) {
	if op != w.open {
		w.closeRun()
		switch op {
		case OpDelete:
			w.b.WriteString(w.m.DeleteOpen)
		case OpInsert:
			w.b.WriteString(w.m.InsertOpen)
		}
		w.open = op
	}
	if w.m.Escape != nil {
		s = w.m.Escape(s)
	}
	w.b.WriteString(s)
}

func (w *markupWriter) closeRun() {
	switch w.open {
	case OpDelete:
		w.b.WriteString(w.m.DeleteClose)
	case OpInsert:
		w.b.WriteString(w.m.InsertClose)
	}
	w.open = OpEqual
}

func (w *markupWriter) String() string {
	w.closeRun()
	return w.b.String()
}
