// SPDX-License-Identifier: MIT

// Package diagram reads a persistence diagram off a reduced R matrix
// and provides the anti-transpose helpers used by the cohomology
// path: transposing a boundary matrix before reduction, and
// reflecting the resulting diagram back into the original indexing.
package diagram
