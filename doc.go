// Package lophat computes persistent homology by reducing a boundary
// matrix over F₂ to column-echelon form: R = D·V, where D is the
// input boundary matrix, R is reduced (no two columns share a pivot),
// and V records which input columns were summed to reach each reduced
// column.
//
// 🚀 What is lophat?
//
//	A concurrent reduction engine offering three interchangeable
//	algorithms over the same boundary matrix:
//
//	  • Serial    — classic left-to-right column reduction, used as an
//	                oracle the parallel reducers are checked against.
//	  • LockFree  — the Morozov–Nigmetov algorithm: workers race to
//	                claim pivots via compare-and-swap, re-driving onto
//	                whichever column they preempt.
//	  • Locking   — the same protocol with per-column read-write locks
//	                in place of the atomic publish cell.
//
// All three reducers agree on the resulting diagram for the same
// input, regardless of num_threads or column representation.
//
// ✨ Why choose lophat?
//
//   - Column-representation agnostic — sorted-vector, bit-set, or a
//     hybrid that switches representation between passes
//   - Clearing — descending-dimension sweep that zeroes out columns
//     already known to die, skipping their reduction entirely
//   - Anti-transpose — reflect a boundary matrix (and its diagram) to
//     compute cohomology with the same reducers
//   - Self-describing serialization of a finished decomposition
//
// Under the hood, everything is organized under focused subpackages:
//
//	column/   — the Column abstraction and its three representations
//	pivot/    — the atomic compare-and-swap pivot table
//	cell/     — the owned-snapshot cell contract (lock-free and locking)
//	engine/   — the three reducers and the shared descending driver
//	diagram/  — diagram read-off and anti-transpose
//	codec/    — on-disk serialization of a finished decomposition
//
//	go get github.com/lophat-go/lophat
package lophat
