// Package lcs builds longest-common-subsequence tables over two sequences and walks them into edit scripts.
//
// The table is the classic dynamic-programming one: for sequences a (length m) and b (length n), cell (i, j) holds the LCS length of a[:i] and b[:j]. Building it is
// O(m·n) in time and space; there is no early exit and no heuristic, so the edit script produced by Walk is fully determined by the inputs and the tie-break rule documented
// on Walk.
package lcs

import (
	"fmt"
	"slices"
)

// Table is an (m+1)x(n+1) LCS length table stored row-major in a single slice.
type Table struct {
	rows  int   // m+1
	cols  int   // n+1
	cells []int // cells[i*cols+j] == LCS length of a[:i] and b[:j]
}

// Build returns the LCS table of a and b.
func Build[T comparable](a, b []T) *Table {
	t := &Table{rows: len(a) + 1, cols: len(b) + 1}
	t.cells = make([]int, t.rows*t.cols)

	for i := 1; i < t.rows; i++ {
		row := i * t.cols
		prev := row - t.cols
		for j := 1; j < t.cols; j++ {
			if a[i-1] == b[j-1] {
				t.cells[row+j] = t.cells[prev+j-1] + 1
			} else {
				t.cells[row+j] = max(t.cells[prev+j], t.cells[row+j-1])
			}
		}
	}
	return t
}

// At returns the LCS length of a[:i] and b[:j].
func (t *Table) At(i, j int) int {
	return t.cells[i*t.cols+j]
}

// Dims returns the lengths (m, n) of the sequences the table was built from.
func (t *Table) Dims() (int, int) {
	return t.rows - 1, t.cols - 1
}

// Len returns the LCS length of the full sequences.
func (t *Table) Len() int {
	return t.cells[len(t.cells)-1]
}

// Op is the kind of an Edit.
type Op int

// Edit kinds.
const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Edit is one step of an edit script. A and B are 1-based positions in a and b; 0 means absent. Equal edits carry both, Insert only B, Delete only A.
type Edit struct {
	Op Op
	A  int
	B  int
}

// Walk converts t (which must have been built from a and b) into a forward-ordered edit script.
//
// The walk starts at (m, n) and steps back to (0, 0):
//   - a[i-1] == b[j-1]: Equal, step diagonally.
//   - else if j > 0 and (i == 0 or L[i][j-1] >= L[i-1][j]): Insert b[j-1].
//   - else: Delete a[i-1].
//
// Ties between an insertion and a deletion therefore favor Insert during the backward walk, which puts deletions first within a changed region once the script is in
// forward order. Callers depend on this exact rule; it must not change.
func Walk[T comparable](a, b []T, t *Table) []Edit {
	if m, n := t.Dims(); m != len(a) || n != len(b) {
		panic(fmt.Sprintf("lcs: table is %dx%d, sequences are %dx%d", m, n, len(a), len(b)))
	}

	i, j := len(a), len(b)
	edits := make([]Edit, 0, max(i, j))
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			edits = append(edits, Edit{Op: Equal, A: i, B: j})
			i--
			j--
		case j > 0 && (i == 0 || t.At(i, j-1) >= t.At(i-1, j)):
			edits = append(edits, Edit{Op: Insert, B: j})
			j--
		default:
			edits = append(edits, Edit{Op: Delete, A: i})
			i--
		}
	}
	slices.Reverse(edits)
	return edits
}

// Diff builds the table for a and b and walks it.
func Diff[T comparable](a, b []T) []Edit {
	return Walk(a, b, Build(a, b))
}
