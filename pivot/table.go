// SPDX-License-Identifier: MIT

package pivot

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	uatomic "go.uber.org/atomic"
)

// Unclaimed is the sentinel stored for a row that no column has yet
// claimed as its pivot.
const Unclaimed = -1

var warnOnce sync.Once

// Table is a fixed-size array of atomic cells, one per row, each
// holding either Unclaimed or the index of the column that currently
// claims that row as its pivot.
type Table struct {
	cells []uatomic.Int64
}

// NewTable allocates a table of the given height, every row starting
// Unclaimed. height is fixed for the table's lifetime, resolved once
// by the caller at Decompose time.
func NewTable(height int) *Table {
	t := &Table{cells: make([]uatomic.Int64, height)}
	for i := range t.cells {
		t.cells[i].Store(Unclaimed)
	}
	return t
}

// Height returns the number of rows the table was sized for.
func (t *Table) Height() int { return len(t.cells) }

// Load returns the column index currently claiming row, or Unclaimed.
func (t *Table) Load(row int) int {
	return int(t.cells[row].Load())
}

// CompareAndSwap attempts to replace row's claimant, currently
// expected, with next. It reports whether the swap succeeded.
func (t *Table) CompareAndSwap(row, expected, next int) bool {
	return t.cells[row].CompareAndSwap(int64(expected), int64(next))
}

// lockFreeArches lists GOARCH values with a native 64-bit compare-and-
// swap instruction. Other 32-bit targets route 64-bit atomics through
// a runtime-internal lock, which changes performance but not semantics.
var lockFreeArches = map[string]bool{
	"amd64": true, "arm64": true, "ppc64": true, "ppc64le": true,
	"mips64": true, "mips64le": true, "riscv64": true, "s390x": true,
	"wasm": true,
}

// WarnIfNotLockFree logs a one-time warning if the running platform's
// 64-bit atomics are not known to be lock-free. The pivot table's
// correctness does not depend on this; it only affects contention
// behavior under heavy CAS traffic.
func WarnIfNotLockFree() {
	if lockFreeArches[runtime.GOARCH] {
		return
	}
	warnOnce.Do(func() {
		log.Warn().Str("arch", runtime.GOARCH).
			Msg("pivot: platform atomic primitive may not be lock-free; falling back without altering semantics")
	})
}
