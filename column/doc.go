// Package column defines the sparse-vector-over-F2 abstraction shared by
// every reduction algorithm in lophat, along with the three concrete
// layouts that implement it.
//
// A Column is a set of non-negative row indices (XOR semantics: adding
// an entry twice cancels it), tagged with a dimension and a Mode hint
// that advises the underlying representation whether it is about to be
// mutated heavily (ModeWorking) or mostly read (ModeStorage).
//
// Three layouts are provided:
//
//   - Vec    — a strictly increasing []int. Compact, linear-merge AddCol.
//   - BitSet — a github.com/bits-and-blooms/bitset.BitSet. O(words) AddCol,
//     larger footprint.
//   - Hybrid — stores as Vec in ModeStorage and as BitSet in ModeWorking,
//     rebuilding its representation on every SetMode transition.
//
// All three are safe to use concurrently only in the sense that distinct
// Column values never alias shared state; the concurrent reducers in
// package engine are responsible for cloning a column before handing a
// mutable reference to a single goroutine.
package column
