// SPDX-License-Identifier: MIT

package column

import "github.com/bits-and-blooms/bitset"

// BitSet represents a column as a dense bit vector of its non-zero row
// indices, backed by bits-and-blooms/bitset. AddCol is a word-parallel
// symmetric difference; Pivot walks the set bits to find the highest
// one, which bitset's word-skipping iterator makes cheap for sparse
// columns even at large row counts.
type BitSet struct {
	bits      *bitset.BitSet
	dimension int
}

// NewBitSet returns an empty BitSet column of the given dimension.
func NewBitSet(dimension int) *BitSet {
	return &BitSet{bits: bitset.New(0), dimension: dimension}
}

// BitSetFromRows builds a BitSet column from an arbitrary (not
// necessarily sorted) slice of row indices.
func BitSetFromRows(dimension int, rows []int) *BitSet {
	c := NewBitSet(dimension)
	c.AddEntries(rows...)
	return c
}

func (c *BitSet) Pivot() (int, bool) {
	max := -1
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		max = int(i)
	}
	if max < 0 {
		return 0, false
	}
	return max, true
}

func (c *BitSet) IsCycle() bool    { return c.bits.None() }
func (c *BitSet) IsBoundary() bool { return c.bits.Any() }

func (c *BitSet) AddCol(other Column) {
	o, ok := other.(*BitSet)
	if !ok {
		addEntriesFold(c, other)
		return
	}
	c.bits.InPlaceSymmetricDifference(o.bits)
}

func (c *BitSet) AddEntry(row int) {
	r := uint(row)
	if c.bits.Test(r) {
		c.bits.Clear(r)
	} else {
		c.bits.Set(r)
	}
}

func (c *BitSet) AddEntries(rows ...int) {
	for _, row := range rows {
		c.AddEntry(row)
	}
}

func (c *BitSet) Entries() []int {
	out := make([]int, 0, c.bits.Count())
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

func (c *BitSet) Dimension() int { return c.dimension }

func (c *BitSet) SetDimension(dimension int) { c.dimension = dimension }

// SetMode is a no-op: a BitSet column has only one representation.
func (c *BitSet) SetMode(Mode) {}

func (c *BitSet) ClearEntries() { c.bits.ClearAll() }

func (c *BitSet) Clone() Column {
	return &BitSet{bits: c.bits.Clone(), dimension: c.dimension}
}
