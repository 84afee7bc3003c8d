package diff

import "fmt"

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpModify
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "Equal"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	case OpModify:
		return "Modify"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Entry is one classified token of a diff.
//
// Operations:
//   - OpEqual: OldPos > 0, NewPos > 0, OldText == NewText
//   - OpInsert: OldPos == 0, OldText == ""
//   - OpDelete: NewPos == 0, NewText == ""
//   - OpModify: OldPos > 0, NewPos > 0
type Entry struct {
	Op      Op     // Operation for this entry.
	OldPos  int    // 1-based position in the old sequence; 0 for inserts.
	NewPos  int    // 1-based position in the new sequence; 0 for deletes.
	OldText string // Old token; empty for inserts.
	NewText string // New token; empty for deletes.
}

// hasOld reports whether e consumes a token of the old sequence.
func (e Entry) hasOld() bool {
	return e.Op != OpInsert
}

// hasNew reports whether e consumes a token of the new sequence.
func (e Entry) hasNew() bool {
	return e.Op != OpDelete
}

// Hunk is a contiguous group of entries of a diff, located within both sequences.
//
// Without context, a hunk holds exactly one maximal run of non-equal entries. With context (see WithContext), it also holds up to n equal entries on each side, and
// nearby runs are merged into one hunk along with the equal entries between them.
//
// OldCount is the number of entries that consume an old token (Equal, Delete, Modify); NewCount is the number that consume a new token (Equal, Insert, Modify).
type Hunk struct {
	OldStart int // 1-based line where the hunk starts in the old sequence.
	OldCount int
	NewStart int // 1-based line where the hunk starts in the new sequence.
	NewCount int
	Entries  []Entry
}

// Header returns the "@@ -a,b +c,d @@" line for h.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// Stats tallies the entries of a diff.
//
// TotalLines is the number of entries, not the line count of either input: an unchanged line counts once, a changed line counts once per side.
type Stats struct {
	Additions     int // Number of OpInsert entries.
	Deletions     int // Number of OpDelete entries.
	Modifications int // Number of OpModify entries.
	TotalLines    int // len(entries).
}

// ComputeStats tallies entries.
func ComputeStats(entries []Entry) Stats {
	s := Stats{TotalLines: len(entries)}
	for _, e := range entries {
		switch e.Op {
		case OpInsert:
			s.Additions++
		case OpDelete:
			s.Deletions++
		case OpModify:
			s.Modifications++
		}
	}
	return s
}

// Changed reports whether s has any non-equal entries.
func (s Stats) Changed() bool {
	return s.Additions+s.Deletions+s.Modifications > 0
}
