// Package pivot implements the shared, atomically updated pivot table:
// a fixed-size array mapping a row index to the column index currently
// claiming that row as its lowest-one. Every mutation goes through
// compare-and-swap; readers always re-validate the claim they observe
// by re-reading the referenced column (see package cell and engine),
// since a stale read here is only ever a performance cost, never a
// correctness one.
package pivot
