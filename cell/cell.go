// SPDX-License-Identifier: MIT

package cell

import "github.com/lophat-go/lophat/column"

// Pair bundles a column's R entry with its optional V entry. HasV
// distinguishes "V is the zero column" from "V is not being
// maintained at all" — the latter is the only case get_v_col surfaces
// as ErrNoVMatrix further up the stack.
type Pair struct {
	R    column.Column
	V    column.Column
	HasV bool
}

// clone returns a Pair whose columns are independent deep copies of
// p's, safe to hand to a single goroutine as a mutable working copy.
func (p Pair) clone() Pair {
	out := Pair{HasV: p.HasV}
	if p.R != nil {
		out.R = p.R.Clone()
	}
	if p.HasV && p.V != nil {
		out.V = p.V.Clone()
	}
	return out
}

// SetMode applies mode to both columns of the pair, in place.
func (p Pair) SetMode(mode column.Mode) {
	if p.R != nil {
		p.R.SetMode(mode)
	}
	if p.HasV && p.V != nil {
		p.V.SetMode(mode)
	}
}
