// Package engine implements the three reduction algorithms that turn a
// boundary matrix D into its column-reduced form R (optionally
// alongside the change-of-basis matrix V): a deterministic serial
// reducer used as the correctness oracle, a lock-free parallel reducer
// implementing the Morozov-Nigmetov algorithm, and a locking variant of
// the same protocol built on per-column read-write locks.
//
// Both parallel reducers share a single descending-dimension driver
// (clearing.go) that walks dimensions from highest to lowest, reducing
// each dimension's columns in parallel and, when clearing is enabled,
// zeroing out positive columns before descending — the Chen-Kerber /
// Bauer optimization.
//
// Exported reducer types are the three reducers (Serial, LockFree,
// Locking); each produces a
// Decomposition exposing read-only column accessors once Decompose
// has run.
package engine
