// SPDX-License-Identifier: MIT

package cell

import uatomic "go.uber.org/atomic"

// PublishCell is the lock-free column cell: an atomic pointer swap to
// an immutable *Pair. A published Pair is never mutated in place —
// Publish always installs a brand-new one — so a concurrent Read can
// safely dereference whatever it observes without additional locking.
type PublishCell struct {
	slot uatomic.Pointer[Pair]
}

// NewPublishCell returns a cell initially holding initial.
func NewPublishCell(initial Pair) *PublishCell {
	c := &PublishCell{}
	c.slot.Store(&initial)
	return c
}

// Read returns an owned, independently mutable snapshot of the
// currently published Pair.
func (c *PublishCell) Read() Pair {
	return c.slot.Load().clone()
}

// PeekDimension reads the dimension of the currently published R
// column without cloning it. Safe because a published Pair is never
// mutated in place; only ever replaced wholesale by Publish.
func (c *PublishCell) PeekDimension() int {
	return c.slot.Load().R.Dimension()
}

// PeekIsBoundary reads whether the currently published R column is a
// boundary (non-empty) without cloning it.
func (c *PublishCell) PeekIsBoundary() bool {
	return c.slot.Load().R.IsBoundary()
}

// Publish installs p as the cell's new contents. The store is
// sequentially consistent: any goroutine whose subsequent
// compare-and-swap on the pivot table observes this publish's effects
// is guaranteed to see p (or a later publish), never a torn value.
func (c *PublishCell) Publish(p Pair) {
	c.slot.Store(&p)
}
