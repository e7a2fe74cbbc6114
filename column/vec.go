// SPDX-License-Identifier: MIT

package column

import "sort"

// Vec represents a column as a strictly increasing slice of its
// non-zero row indices. Pivot is simply the last element; AddCol is a
// linear merge of two sorted slices.
type Vec struct {
	boundary  []int
	dimension int
}

// NewVec returns an empty Vec column of the given dimension.
func NewVec(dimension int) *Vec {
	return &Vec{dimension: dimension}
}

// VecFromBoundary builds a Vec column from an already strictly
// increasing slice of row indices. The caller keeps ownership of rows;
// Vec copies it.
func VecFromBoundary(dimension int, rows []int) *Vec {
	boundary := make([]int, len(rows))
	copy(boundary, rows)
	return &Vec{boundary: boundary, dimension: dimension}
}

func (c *Vec) Pivot() (int, bool) {
	if len(c.boundary) == 0 {
		return 0, false
	}
	return c.boundary[len(c.boundary)-1], true
}

func (c *Vec) IsCycle() bool    { return len(c.boundary) == 0 }
func (c *Vec) IsBoundary() bool { return len(c.boundary) != 0 }

// AddCol merges other into self by symmetric difference, in O(|self| +
// |other|) when other is also a *Vec; otherwise it falls back to
// toggling each of other's entries.
func (c *Vec) AddCol(other Column) {
	o, ok := other.(*Vec)
	if !ok {
		addEntriesFold(c, other)
		return
	}
	merged := make([]int, 0, len(c.boundary)+len(o.boundary))
	i, j := 0, 0
	for i < len(c.boundary) && j < len(o.boundary) {
		switch {
		case c.boundary[i] < o.boundary[j]:
			merged = append(merged, c.boundary[i])
			i++
		case c.boundary[i] > o.boundary[j]:
			merged = append(merged, o.boundary[j])
			j++
		default: // equal entries cancel under XOR
			i++
			j++
		}
	}
	merged = append(merged, c.boundary[i:]...)
	merged = append(merged, o.boundary[j:]...)
	c.boundary = merged
}

// AddEntry toggles row, keeping boundary strictly increasing.
func (c *Vec) AddEntry(row int) {
	idx := sort.SearchInts(c.boundary, row)
	if idx < len(c.boundary) && c.boundary[idx] == row {
		c.boundary = append(c.boundary[:idx], c.boundary[idx+1:]...)
		return
	}
	c.boundary = append(c.boundary, 0)
	copy(c.boundary[idx+1:], c.boundary[idx:])
	c.boundary[idx] = row
}

func (c *Vec) AddEntries(rows ...int) {
	for _, row := range rows {
		c.AddEntry(row)
	}
}

func (c *Vec) Entries() []int {
	out := make([]int, len(c.boundary))
	copy(out, c.boundary)
	return out
}

func (c *Vec) Dimension() int { return c.dimension }

func (c *Vec) SetDimension(dimension int) { c.dimension = dimension }

// SetMode is a no-op: a Vec column has only one representation.
func (c *Vec) SetMode(Mode) {}

func (c *Vec) ClearEntries() { c.boundary = c.boundary[:0] }

func (c *Vec) Clone() Column {
	return VecFromBoundary(c.dimension, c.boundary)
}
