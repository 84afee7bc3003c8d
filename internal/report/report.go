// Package report renders a diff as a standalone HTML page: a stats table, the unified diff, and each changed line pair highlighted character by character.
//
// The page is built as GitHub-flavored Markdown (see Markdown) and converted with goldmark, so the Markdown form can also be saved or posted on its own.
package report

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/codalotl/textdiff/internal/diff"
)

// Input is the pair of texts to report on.
type Input struct {
	OldLabel string
	NewLabel string
	OldText  string
	NewText  string
}

// Markdown returns the report for in as Markdown. opts are passed to diff.ComputeDiff and diff.Unified (labels are taken from in).
func Markdown(in Input, opts ...diff.Option) string {
	opts = append(slices.Clip(opts), diff.WithLabels(in.OldLabel, in.NewLabel))
	entries := diff.ComputeDiff(in.OldText, in.NewText, opts...)
	stats := diff.ComputeStats(entries)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeInline(title(in)))

	b.WriteString("| | Lines |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Additions | %d |\n", stats.Additions)
	fmt.Fprintf(&b, "| Deletions | %d |\n", stats.Deletions)
	fmt.Fprintf(&b, "| Modifications | %d |\n", stats.Modifications)
	fmt.Fprintf(&b, "| Total | %d |\n\n", stats.TotalLines)

	if !stats.Changed() {
		b.WriteString("No differences.\n")
		return b.String()
	}

	unified := diff.Unified(entries, opts...)
	fence := codeFence(unified)
	fmt.Fprintf(&b, "## Unified diff\n\n%sdiff\n%s\n%s\n\n", fence, unified, fence)

	b.WriteString("## Changed lines\n\n")
	for _, pair := range changedPairs(entries) {
		oldMarked, newMarked := diff.HighlightInline(pair[0], pair[1], diff.WithMarkup(diff.HTMLMarkup))
		fmt.Fprintf(&b, "<pre class=\"textdiff-old\">%s</pre>\n<pre class=\"textdiff-new\">%s</pre>\n\n", oldMarked, newMarked)
	}
	return b.String()
}

// WriteHTML writes the report for in as a complete HTML document to w.
func WriteHTML(w io.Writer, in Input, opts ...diff.Option) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(in, opts...)), &body); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err := fmt.Fprintf(w, pageTemplate, diff.EscapeHTML(title(in)), body.String())
	return err
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em; }
pre { font-family: monospace; margin: 0; padding: 0.2em 0.5em; white-space: pre-wrap; }
pre.textdiff-old { background: #ffecec; }
pre.textdiff-new { background: #eaffea; margin-bottom: 1em; }
del { background: #f8b4b4; text-decoration: none; }
ins { background: #9be49b; text-decoration: none; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.2em 0.6em; }
</style>
</head>
<body>
%s</body>
</html>
`

func title(in Input) string {
	return fmt.Sprintf("%s -> %s", in.OldLabel, in.NewLabel)
}

// changedPairs pairs the k-th old line of each changed region with its k-th new line. Lines without a partner are paired with "".
func changedPairs(entries []diff.Entry) [][2]string {
	var pairs [][2]string
	for _, h := range diff.Hunks(entries) {
		var olds, news []string
		for _, e := range h.Entries {
			switch e.Op {
			case diff.OpDelete:
				olds = append(olds, e.OldText)
			case diff.OpInsert:
				news = append(news, e.NewText)
			case diff.OpModify:
				olds = append(olds, e.OldText)
				news = append(news, e.NewText)
			}
		}
		for k, n := 0, max(len(olds), len(news)); k < n; k++ {
			var p [2]string
			if k < len(olds) {
				p[0] = olds[k]
			}
			if k < len(news) {
				p[1] = news[k]
			}
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

// escapeInline backslash-escapes ASCII punctuation so s renders literally in Markdown inline content.
func escapeInline(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 && strings.ContainsRune("\\`*_{}[]()<>#+-.!|&~\"'", r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
