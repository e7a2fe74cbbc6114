// SPDX-License-Identifier: MIT

package cell

import "sync"

// RWCell is the locking column cell: a sync.RWMutex guarding a Pair in
// place. Read acquires the read lock only long enough to clone the
// guarded Pair; Publish acquires the write lock only long enough to
// overwrite it.
type RWCell struct {
	mu   sync.RWMutex
	pair Pair
}

// NewRWCell returns a cell initially holding initial.
func NewRWCell(initial Pair) *RWCell {
	return &RWCell{pair: initial}
}

// Read returns an owned, independently mutable snapshot of the
// currently published Pair.
func (c *RWCell) Read() Pair {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pair.clone()
}

// PeekDimension reads the dimension of the currently published R
// column under a brief read lock, without cloning it.
func (c *RWCell) PeekDimension() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pair.R.Dimension()
}

// PeekIsBoundary reads whether the currently published R column is a
// boundary (non-empty) under a brief read lock, without cloning it.
func (c *RWCell) PeekIsBoundary() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pair.R.IsBoundary()
}

// Publish overwrites the cell's contents with p.
func (c *RWCell) Publish(p Pair) {
	c.mu.Lock()
	c.pair = p
	c.mu.Unlock()
}
