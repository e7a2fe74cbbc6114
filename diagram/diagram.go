// SPDX-License-Identifier: MIT

package diagram

import "github.com/lophat-go/lophat/engine"

// Pair is a (birth, death) index pair: column birth was killed by the
// pivot that column death's boundary resolved to.
type Pair struct {
	Birth int
	Death int
}

// Diagram is the read-off of a reduced decomposition: every index in
// [0, N) is either part of exactly one Pair or appears once in
// Unpaired.
type Diagram struct {
	Paired   []Pair
	Unpaired []int
}

// ReadOff scans every column's pivot to build the diagram: index i's
// pivot row, if defined, pairs that row's birth with i's death.
func ReadOff(d engine.Decomposition) Diagram {
	n := d.NCols()
	var diag Diagram
	killed := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		piv, ok := d.RCol(i).Pivot()
		if !ok {
			continue
		}
		diag.Paired = append(diag.Paired, Pair{Birth: piv, Death: i})
		killed[piv] = true
		killed[i] = true
	}
	for i := 0; i < n; i++ {
		if !killed[i] {
			diag.Unpaired = append(diag.Unpaired, i)
		}
	}
	return diag
}
