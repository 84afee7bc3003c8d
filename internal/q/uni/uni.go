// Package uni splits text into user-perceived characters and measures it for monospace terminals.
package uni

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Options control width calculation. A nil *Options means a non-East Asian locale.
type Options struct {
	EastAsianWidth bool // treat ambiguous East Asian code points as 2 wide. Use if the locale is one of CJK.
}

// Graphemes splits s into extended grapheme clusters (UAX #29). Concatenating the result yields s. An empty s yields nil.
//
// A base letter followed by combining marks, or an emoji ZWJ sequence, is a single element.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	iter := graphemes.FromString(s)
	out := make([]string, 0, len(s))
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// TextWidth returns the number of terminal cells s occupies.
func TextWidth(s string, opts *Options) int {
	return condition(opts).StringWidth(s)
}

// PadRight pads s with spaces to width cells. Strings already at least width wide are returned unchanged.
func PadRight(s string, width int, opts *Options) string {
	w := TextWidth(s, opts)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// PadLeft is PadRight, with the padding placed before s.
func PadLeft(s string, width int, opts *Options) string {
	w := TextWidth(s, opts)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

func condition(opts *Options) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	return cond
}
