package diff

import (
	"fmt"

	"github.com/codalotl/textdiff/internal/lcs"
)

// ComputeDiff diffs oldText and newText line by line (see SplitLines). Options read: WithModifyCoalescing.
//
// The result is never nil. It is empty when both texts are empty, all OpInsert when only oldText is empty, and all OpDelete when only newText is empty. Lines are
// compared exactly; normalize (case, whitespace, line endings) before calling if needed.
func ComputeDiff(oldText, newText string, opts ...Option) []Entry {
	return computeTokens(SplitLines(oldText), SplitLines(newText), newOptions(opts))
}

// ComputeWordDiff is ComputeDiff over word and whitespace tokens (see SplitWords). Entry positions index tokens, not lines.
func ComputeWordDiff(oldText, newText string, opts ...Option) []Entry {
	return computeTokens(SplitWords(oldText), SplitWords(newText), newOptions(opts))
}

func computeTokens(oldTokens, newTokens []string, o options) []Entry {
	entries := entriesFromEdits(oldTokens, newTokens, lcs.Diff(oldTokens, newTokens))
	if o.coalesce {
		entries = coalesce(entries)
	}

	// Any violation here is a bug in this package, not a property of the input.
	if err := validate(entries, oldTokens, newTokens); err != nil {
		panic(fmt.Errorf("diff: invalid result: %w", err))
	}
	return entries
}

func entriesFromEdits(oldTokens, newTokens []string, edits []lcs.Edit) []Entry {
	entries := make([]Entry, 0, len(edits))
	for _, ed := range edits {
		switch ed.Op {
		case lcs.Equal:
			entries = append(entries, Entry{Op: OpEqual, OldPos: ed.A, NewPos: ed.B, OldText: oldTokens[ed.A-1], NewText: newTokens[ed.B-1]})
		case lcs.Insert:
			entries = append(entries, Entry{Op: OpInsert, NewPos: ed.B, NewText: newTokens[ed.B-1]})
		case lcs.Delete:
			entries = append(entries, Entry{Op: OpDelete, OldPos: ed.A, OldText: oldTokens[ed.A-1]})
		}
	}
	return entries
}

// coalesce rewrites each maximal run of non-equal entries as: Modify pairs (k-th delete with k-th insert), then the remaining deletes, then the remaining inserts.
// Relative order among deletes and among inserts is unchanged, so both sides still reconstruct.
func coalesce(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for i := 0; i < len(entries); {
		if entries[i].Op == OpEqual {
			out = append(out, entries[i])
			i++
			continue
		}

		var dels, ins []Entry
		for ; i < len(entries) && entries[i].Op != OpEqual; i++ {
			switch entries[i].Op {
			case OpDelete:
				dels = append(dels, entries[i])
			case OpInsert:
				ins = append(ins, entries[i])
			}
		}

		paired := min(len(dels), len(ins))
		for k := 0; k < paired; k++ {
			out = append(out, Entry{Op: OpModify, OldPos: dels[k].OldPos, NewPos: ins[k].NewPos, OldText: dels[k].OldText, NewText: ins[k].NewText})
		}
		out = append(out, dels[paired:]...)
		out = append(out, ins[paired:]...)
	}
	return out
}

// runs returns the [start, end) index ranges of the maximal non-equal runs of entries.
func runs(entries []Entry) [][2]int {
	var out [][2]int
	for i := 0; i < len(entries); {
		if entries[i].Op == OpEqual {
			i++
			continue
		}
		start := i
		for i < len(entries) && entries[i].Op != OpEqual {
			i++
		}
		out = append(out, [2]int{start, i})
	}
	return out
}
