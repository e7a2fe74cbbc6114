// SPDX-License-Identifier: MIT

package lophat

import (
	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/engine"
)

// Algorithm selects which reduction protocol a Reducer runs.
type Algorithm int

const (
	// Serial is the classic single-threaded left-to-right reduction.
	Serial Algorithm = iota
	// LockFree is the Morozov–Nigmetov lock-free parallel reduction.
	LockFree
	// Locking is the same protocol as LockFree, using per-column
	// read-write locks instead of an atomic publish cell.
	Locking
)

// builder is the four-step construction surface shared by every
// engine reducer: new, add_cols, add_entries, decompose.
type builder interface {
	AddCols(cols []column.Column)
	AddEntries(entries [][2]int)
	Decompose() engine.Decomposition
}

// Reducer accumulates a boundary matrix and reduces it once, via
// whichever Algorithm it was constructed with. The builder is
// single-shot: AddCols and AddEntries may be interleaved freely, but
// Decompose is terminal.
type Reducer struct {
	impl builder
}

// New returns an empty Reducer running algo, configured by opts.
func New(algo Algorithm, opts ...Option) *Reducer {
	var cfg engine.Config
	for _, opt := range opts {
		opt(&cfg)
	}

	var impl builder
	switch algo {
	case Serial:
		impl = engine.NewSerial(cfg)
	case LockFree:
		WarnIfPivotTableNotLockFree()
		impl = engine.NewLockFree(cfg)
	case Locking:
		WarnIfPivotTableNotLockFree()
		impl = engine.NewLocking(cfg)
	default:
		panic("lophat: New: unknown algorithm")
	}
	log.Debug().Int("algorithm", int(algo)).Bool("maintain_v", cfg.MaintainV).Msg("lophat: reducer constructed")
	return &Reducer{impl: impl}
}

// AddCols appends columns to the matrix. When WithMaintainV was set,
// each new column's V entry starts as the identity singleton of the
// same dimension.
func (r *Reducer) AddCols(cols []column.Column) {
	r.impl.AddCols(cols)
}

// AddEntries toggles individual (row, col) entries into columns
// already appended via AddCols. An unknown column index panics.
func (r *Reducer) AddEntries(entries [][2]int) {
	r.impl.AddEntries(entries)
}

// Decompose runs the reduction to completion and returns the
// resulting read-only Decomposition. Calling it more than once on the
// same Reducer is not supported.
func (r *Reducer) Decompose() *Decomposition {
	return &Decomposition{inner: r.impl.Decompose()}
}
