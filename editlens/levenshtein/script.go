package levenshtein

import (
	"fmt"
	"slices"
)

// Op describes an edit operation.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match      Op = iota // Elements are equal, no operation needed. Never emitted.
	Substitute           // Replace an element of x with one from y.
	Delete               // Remove an element from x.
	Insert               // Insert an element from y.
)

// Edit describes a single edit operation. Positions are 1-based:
//
//   - For Substitute and Delete, Pos indexes the original x sequence and
//     From holds the affected element (To holds the replacement for
//     Substitute).
//   - For Insert, Pos is one past the prefix of the original x consumed
//     when the insertion happens, i.e. the position the new element To
//     would take counted against the original sequence.
//
// This is the convention used by human-readable diff explanations: a run
// of deletions keeps reporting positions of the original sequence rather
// than of the progressively shortened one.
type Edit[T comparable] struct {
	Op       Op
	Pos      int
	From, To T
}

// String returns a human readable description of the edit, e.g.
// "substitute position 5's 'e' with 'i'".
func (e Edit[T]) String() string {
	switch e.Op {
	case Substitute:
		return fmt.Sprintf("substitute position %d's %s with %s", e.Pos, quote(e.From), quote(e.To))
	case Delete:
		return fmt.Sprintf("delete position %d's %s", e.Pos, quote(e.From))
	case Insert:
		return fmt.Sprintf("insert %s at position %d", quote(e.To), e.Pos)
	}
	return e.Op.String()
}

func quote[T comparable](v T) string {
	switch v := any(v).(type) {
	case rune:
		return "'" + string(v) + "'"
	case byte:
		return "'" + string(rune(v)) + "'"
	case string:
		return "'" + v + "'"
	}
	return fmt.Sprintf("'%v'", v)
}

// Script walks the table backwards from the bottom-right cell and returns
// the operations that transform x into y, in application order. At each
// step the first applicable transition wins: match, substitute, delete,
// insert. This order determines which of several equally minimal scripts
// is produced; changing it would change the output for inputs like
// ("cat", "cart"), so it is fixed.
func (m *Matrix[T]) Script() []Edit[T] {
	var edits []Edit[T]
	i, j := len(m.x), len(m.y)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && m.x[i-1] == m.y[j-1]:
			i--
			j--
		case i > 0 && j > 0 && m.cells[i][j] == m.cells[i-1][j-1]+1:
			edits = append(edits, Edit[T]{Op: Substitute, Pos: i, From: m.x[i-1], To: m.y[j-1]})
			i--
			j--
		case i > 0 && m.cells[i][j] == m.cells[i-1][j]+1:
			edits = append(edits, Edit[T]{Op: Delete, Pos: i, From: m.x[i-1]})
			i--
		default:
			// j > 0 holds here for any well-formed table: column 0 is
			// strictly increasing, so the delete case always applies
			// when j == 0.
			edits = append(edits, Edit[T]{Op: Insert, Pos: i + 1, To: m.y[j-1]})
			j--
		}
	}
	slices.Reverse(edits)
	return edits
}

// Apply replays edits against x and returns the resulting sequence. The
// edits must be in application order as returned by Script.
func Apply[T comparable](x []T, edits []Edit[T]) []T {
	out := make([]T, 0, len(x))
	i := 0 // number of elements of x consumed
	for _, e := range edits {
		switch e.Op {
		case Substitute:
			out = append(out, x[i:e.Pos-1]...)
			out = append(out, e.To)
			i = e.Pos
		case Delete:
			out = append(out, x[i:e.Pos-1]...)
			i = e.Pos
		case Insert:
			// Insert positions are one past the consumed prefix of the
			// original x, so sync on input consumed rather than output
			// produced; the two differ once a deletion happened earlier.
			for i < e.Pos-1 {
				out = append(out, x[i])
				i++
			}
			out = append(out, e.To)
		}
	}
	return append(out, x[i:]...)
}
