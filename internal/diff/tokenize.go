package diff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultEOL is the line separator. It is not part of line tokens.
const defaultEOL = "\n"

// SplitLines splits text into lines on "\n". An empty text has no lines. A trailing "\n" produces a final empty line, so strings.Join(SplitLines(s), "\n") == s.
// "\r" is kept as part of the line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, defaultEOL)
}

// SplitWords splits text into maximal runs of whitespace and of non-whitespace (unicode.IsSpace). Concatenating the tokens reproduces text.
func SplitWords(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	start := 0
	inSpace := false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = space
		}
	}
	return append(tokens, text[start:])
}

// runeLen is the length of s in runes. Invalid bytes count as one rune each.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
