// SPDX-License-Identifier: MIT

package codec

import "github.com/lophat-go/lophat/engine"

// SortedVecColumn is the on-wire representation of a single column:
// its dimension and its strictly increasing row indices.
type SortedVecColumn struct {
	Dimension int
	Boundary  []int
}

// Record is the on-wire representation of a full decomposition. V is
// nil when the decomposition did not maintain it.
type Record struct {
	R []SortedVecColumn
	V []SortedVecColumn
}

// FromDecomposition flattens a decomposition's R (and, if present, V)
// matrix into a Record ready to encode.
func FromDecomposition(d engine.Decomposition) Record {
	rec := Record{R: make([]SortedVecColumn, d.NCols())}
	for i := 0; i < d.NCols(); i++ {
		c := d.RCol(i)
		rec.R[i] = SortedVecColumn{Dimension: c.Dimension(), Boundary: c.Entries()}
	}
	if !d.HasV() {
		return rec
	}
	rec.V = make([]SortedVecColumn, d.NCols())
	for i := 0; i < d.NCols(); i++ {
		v, err := d.VCol(i)
		if err != nil {
			// HasV() already guaranteed this query succeeds.
			panic(err)
		}
		rec.V[i] = SortedVecColumn{Dimension: v.Dimension(), Boundary: v.Entries()}
	}
	return rec
}

// HasV reports whether the record carries a V matrix.
func (r Record) HasV() bool { return r.V != nil }
