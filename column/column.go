// SPDX-License-Identifier: MIT

package column

// Mode advises a Column's implementation which physical layout best
// suits the column's current use pattern. It is a hint: layouts that
// have only one representation (Vec, BitSet) may ignore it entirely.
type Mode int

const (
	// ModeWorking marks a column about to be mutated regularly, e.g.
	// through repeated AddCol calls inside a reduction loop.
	ModeWorking Mode = iota
	// ModeStorage marks a column that will be read more than mutated.
	ModeStorage
)

// Kind identifies a concrete Column layout, used by New to pick a
// factory without every caller importing every concrete type.
type Kind int

const (
	KindVec Kind = iota
	KindBitSet
	KindHybrid
)

// Column is a sparse vector over F2, indexed by non-negative row
// numbers. Implementations must satisfy:
//
//   - entries form a set (no duplicates; AddEntry toggles);
//   - Pivot returns the maximum entry, or ok=false when empty.
type Column interface {
	// Pivot returns the highest row index present, or ok=false if the
	// column is empty (a cycle).
	Pivot() (row int, ok bool)
	// IsCycle reports whether the column has no entries.
	IsCycle() bool
	// IsBoundary reports whether the column has at least one entry.
	IsBoundary() bool
	// AddCol sets self to self XOR other.
	AddCol(other Column)
	// AddEntry toggles row i.
	AddEntry(row int)
	// AddEntries toggles each row in rows, in order.
	AddEntries(rows ...int)
	// Entries returns the set rows in unspecified order.
	Entries() []int
	// Dimension returns the column's dimension tag.
	Dimension() int
	// SetDimension overwrites the dimension tag.
	SetDimension(dimension int)
	// SetMode hints that the column's representation should be chosen
	// for working (mutation-heavy) or storage (read-heavy) use.
	SetMode(mode Mode)
	// ClearEntries removes every entry, leaving the column a cycle.
	ClearEntries()
	// Clone returns an independent deep copy.
	Clone() Column
}

// New constructs an empty column of the given kind and dimension.
func New(kind Kind, dimension int) Column {
	switch kind {
	case KindVec:
		return NewVec(dimension)
	case KindBitSet:
		return NewBitSet(dimension)
	case KindHybrid:
		return NewHybrid(dimension)
	default:
		panic("column: unknown kind")
	}
}

// addEntriesFold is the default "fold AddEntry" fallback used by AddCol
// implementations when other is not the same concrete type as self.
func addEntriesFold(self Column, other Column) {
	for _, row := range other.Entries() {
		self.AddEntry(row)
	}
}
