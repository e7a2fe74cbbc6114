// SPDX-License-Identifier: MIT

package column

// Hybrid stores its entries as a *Vec while in ModeStorage and as a
// *BitSet while in ModeWorking, rebuilding the representation on every
// SetMode transition. It amortizes the rebuild cost over the many
// AddCol calls a reduction loop performs between mode switches.
type Hybrid struct {
	mode      Mode
	dimension int
	asVec     *Vec
	asBitSet  *BitSet
}

// NewHybrid returns an empty Hybrid column of the given dimension,
// starting in ModeStorage (vector) representation.
func NewHybrid(dimension int) *Hybrid {
	return &Hybrid{mode: ModeStorage, dimension: dimension, asVec: NewVec(dimension)}
}

// HybridFromBoundary builds a Hybrid column, starting in ModeStorage,
// from a strictly increasing slice of row indices.
func HybridFromBoundary(dimension int, rows []int) *Hybrid {
	return &Hybrid{mode: ModeStorage, dimension: dimension, asVec: VecFromBoundary(dimension, rows)}
}

func (c *Hybrid) active() Column {
	if c.mode == ModeWorking {
		return c.asBitSet
	}
	return c.asVec
}

func (c *Hybrid) Pivot() (int, bool) { return c.active().Pivot() }
func (c *Hybrid) IsCycle() bool      { return c.active().IsCycle() }
func (c *Hybrid) IsBoundary() bool   { return c.active().IsBoundary() }

// AddCol always folds over other's entries one at a time, mirroring
// the reference hybrid column: it assumes other may be a different
// concrete layout (typically a Vec read out of storage) being added
// into this column's current (typically bit-set) working layout.
func (c *Hybrid) AddCol(other Column) {
	for _, row := range other.Entries() {
		c.AddEntry(row)
	}
}

func (c *Hybrid) AddEntry(row int) { c.active().AddEntry(row) }

func (c *Hybrid) AddEntries(rows ...int) {
	for _, row := range rows {
		c.AddEntry(row)
	}
}

func (c *Hybrid) Entries() []int { return c.active().Entries() }

func (c *Hybrid) Dimension() int { return c.dimension }

func (c *Hybrid) SetDimension(dimension int) {
	c.dimension = dimension
	c.active().SetDimension(dimension)
}

// SetMode rebuilds the underlying representation when it actually
// changes: ModeStorage -> ModeWorking builds a BitSet from the current
// Vec; ModeWorking -> ModeStorage builds a Vec from the current
// BitSet. Repeating the same mode is a no-op.
func (c *Hybrid) SetMode(mode Mode) {
	if mode == c.mode {
		return
	}
	switch mode {
	case ModeWorking:
		bs := NewBitSet(c.dimension)
		bs.AddEntries(c.asVec.Entries()...)
		c.asBitSet = bs
		c.asVec = nil
	case ModeStorage:
		v := NewVec(c.dimension)
		v.AddEntries(c.asBitSet.Entries()...)
		c.asVec = v
		c.asBitSet = nil
	}
	c.mode = mode
}

func (c *Hybrid) ClearEntries() { c.active().ClearEntries() }

func (c *Hybrid) Clone() Column {
	clone := &Hybrid{mode: c.mode, dimension: c.dimension}
	if c.asVec != nil {
		clone.asVec = c.asVec.Clone().(*Vec)
	}
	if c.asBitSet != nil {
		clone.asBitSet = c.asBitSet.Clone().(*BitSet)
	}
	return clone
}
