// SPDX-License-Identifier: MIT

package engine

import "github.com/lophat-go/lophat/column"

// Config carries the decompose-time options every reducer needs. It is
// built by the functional-options surface in the root lophat package
// and passed down read-only; engine itself exposes no options API of
// its own.
type Config struct {
	// MaintainV, if true, materializes and keeps V queryable.
	MaintainV bool
	// NumThreads is the desired worker count for the parallel
	// reducers' local dispatcher; 0 means "use GOMAXPROCS".
	NumThreads int
	// ColumnHeight, if non-nil, fixes the pivot table's size; if nil,
	// it defaults to the number of columns at Decompose time.
	ColumnHeight *int
	// MinChunkLen is the minimum number of columns assigned to a
	// single dispatched unit of work.
	MinChunkLen int
	// Clearing enables the descending-dimension clearing optimization.
	// Only valid when the input represents a chain-complex boundary
	// (D^2 = 0); the caller is responsible for that guarantee.
	Clearing bool
	// Kind selects the concrete Column layout new V columns (identity
	// singletons) are built with.
	Kind column.Kind
}

// ResolvedHeight returns the pivot table size to use for a matrix of
// the given length: ColumnHeight if set, else numCols.
func (c Config) ResolvedHeight(numCols int) int {
	if c.ColumnHeight != nil {
		return *c.ColumnHeight
	}
	return numCols
}
