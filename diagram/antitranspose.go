// SPDX-License-Identifier: MIT

package diagram

import "github.com/lophat-go/lophat/column"

// AntiTranspose reflects a square boundary matrix through its
// anti-diagonal: column j's entry at row i becomes column (w-1-i)'s
// entry at row (w-1-j), and its dimension becomes (maxDim - dim). The
// transformed matrix computes cohomology when reduced the same way
// the original computes homology.
func AntiTranspose(kind column.Kind, cols []column.Column) []column.Column {
	w := len(cols)
	if w == 0 {
		return nil
	}
	maxDim := 0
	for _, c := range cols {
		if c.Dimension() > maxDim {
			maxDim = c.Dimension()
		}
	}

	out := make([]column.Column, w)
	for j, c := range cols {
		out[w-1-j] = column.New(kind, maxDim-c.Dimension())
	}
	for j, c := range cols {
		for _, i := range c.Entries() {
			out[w-1-i].AddEntry(w - 1 - j)
		}
	}
	return out
}

// AntiTransposeDiagram reflects a diagram computed from an anti-
// transposed matrix of the given size back into the original
// indexing: pair (b, d) becomes (w-1-d, w-1-b), and unpaired u becomes
// w-1-u.
func AntiTransposeDiagram(diag Diagram, matrixSize int) Diagram {
	var out Diagram
	for _, p := range diag.Paired {
		out.Paired = append(out.Paired, Pair{
			Birth: matrixSize - 1 - p.Death,
			Death: matrixSize - 1 - p.Birth,
		})
	}
	for _, u := range diag.Unpaired {
		out.Unpaired = append(out.Unpaired, matrixSize-1-u)
	}
	return out
}
