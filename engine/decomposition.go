// SPDX-License-Identifier: MIT

package engine

import "github.com/lophat-go/lophat/column"

// Decomposition is the read-only view produced by Decompose: accessors
// over the reduced R matrix and, when maintained, V.
type Decomposition interface {
	// RCol returns a reference to the i'th column of R.
	RCol(i int) column.Column
	// VCol returns a reference to the i'th column of V, or
	// ErrNoVMatrix if V was not maintained.
	VCol(i int) (column.Column, error)
	// NCols returns the number of columns in the decomposition.
	NCols() int
	// HasV reports whether V was maintained.
	HasV() bool
}
