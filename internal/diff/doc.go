// Package diff computes and renders text diffs between an "old" and a "new" string.
//
// Representation: a diff is an ordered []Entry. Each Entry has an Op:
//   - OpEqual: a token present on both sides (OldText == NewText, both positions set)
//   - OpInsert: a token present only in the new side (OldText == "", OldPos == 0)
//   - OpDelete: a token present only in the old side (NewText == "", NewPos == 0)
//   - OpModify: an old token replaced by a new one (both positions set). Only produced when WithModifyCoalescing is given.
//
// Positions are 1-based indexes into the token sequences; 0 means absent.
//
// Invariants:
//   - Joining OldText of every entry whose Op != OpInsert reproduces the old token sequence.
//   - Joining NewText of every entry whose Op != OpDelete reproduces the new token sequence.
//   - Old positions of those entries count up 1, 2, 3, ... without gaps (likewise new positions).
//
// Tokens: ComputeDiff splits on "\n" (the separator is not part of the token; "" has no lines, and a trailing "\n" produces a final empty line). ComputeWordDiff splits into
// maximal runs of whitespace and non-whitespace, so concatenating tokens reproduces the text. HighlightInline compares grapheme clusters.
//
// Algorithm: all granularities use the same longest-common-subsequence alignment (see package lcs). Among equally long alignments, the backward walk prefers insertions,
// so within a changed region deletions come first. The result is fully determined by the inputs; there is no heuristic, timeout, or approximation.
//
// Getting a diff:
//
//	entries := diff.ComputeDiff(oldText, newText)
//	fmt.Println(diff.Unified(entries, diff.WithLabels("a.txt", "b.txt")))
//
// Rendering:
//   - Unified / GenerateUnifiedDiff emit a unified-diff-style report. By default hunks carry no context lines; WithContext(n) adds canonical context windows.
//   - HighlightInline marks the changed characters of one line pair. FormatWordDiff renders a word diff inline. Both take a Markup (HTML by default).
//   - RenderPretty emits a colorized terminal view where each changed line pair is highlighted at character granularity.
//
// Cost: alignment is O(m·n) in time and memory. Use Limits to reject inputs that are too large before diffing.
package diff
