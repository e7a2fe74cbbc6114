// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/lophat-go/lophat/cell"
	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/pivot"
)

// Locking implements the same protocol as LockFree, but stores each
// column behind a read-write mutex (cell.RWCell) instead of an atomic
// publish slot. The pivot table, the CAS-claim discipline, and the
// termination argument are identical to LockFree; only the column's
// mutual-exclusion mechanism differs.
type Locking struct {
	cfg    Config
	matrix []*cell.RWCell
	pivots *pivot.Table
	maxDim int
}

// NewLocking returns an empty locking reducer.
func NewLocking(cfg Config) *Locking {
	return &Locking{cfg: cfg}
}

// AddCols appends cols to the matrix. When V is maintained, each new
// column's V entry starts as the identity singleton {i}.
func (lk *Locking) AddCols(cols []column.Column) {
	first := len(lk.matrix)
	for i, c := range cols {
		if c.Dimension() > lk.maxDim {
			lk.maxDim = c.Dimension()
		}
		pair := cell.Pair{R: c, HasV: lk.cfg.MaintainV}
		if lk.cfg.MaintainV {
			v := column.New(lk.cfg.Kind, c.Dimension())
			v.AddEntry(first + i)
			pair.V = v
		}
		lk.matrix = append(lk.matrix, cell.NewRWCell(pair))
	}
}

// AddEntries toggles individual entries into already-appended columns.
func (lk *Locking) AddEntries(entries [][2]int) {
	for _, e := range entries {
		row, col := e[0], e[1]
		if col < 0 || col >= len(lk.matrix) {
			panicOutOfRange("column", col, len(lk.matrix))
		}
		c := lk.matrix[col]
		pair := c.Read()
		pair.R.AddEntry(row)
		c.Publish(pair)
	}
}

// Decompose allocates the pivot table and runs the descending-
// dimension driver (with clearing, if enabled), returning the
// resulting read-only view.
func (lk *Locking) Decompose() Decomposition {
	height := lk.cfg.ResolvedHeight(len(lk.matrix))
	lk.pivots = pivot.NewTable(height)
	runDescending(lk, lk.maxDim, lk.cfg)
	return (*lockingDecomposition)(lk)
}

func (lk *Locking) numCols() int          { return len(lk.matrix) }
func (lk *Locking) dimensionOf(j int) int { return lk.matrix[j].PeekDimension() }
func (lk *Locking) isBoundary(j int) bool { return lk.matrix[j].PeekIsBoundary() }

// resolvePivot returns the column currently claiming pivot row l, if
// any, re-reading until the claim it observes is consistent (the
// claimant's own pivot still equals l).
func (lk *Locking) resolvePivot(l int) (k int, peer cell.Pair, found bool) {
	for {
		k = lk.pivots.Load(l)
		if k == pivot.Unclaimed {
			return 0, cell.Pair{}, false
		}
		peer = lk.matrix[k].Read()
		if piv, ok := peer.R.Pivot(); !ok || piv != l {
			continue
		}
		return k, peer, true
	}
}

// reduceColumn reduces the j'th column as far as possible, switching
// to reduce a higher-indexed column if it preempts that column's
// pivot claim along the way. Safe to call on many j concurrently.
func (lk *Locking) reduceColumn(j int) {
	workingJ := j
outer:
	for {
		snap := lk.matrix[workingJ].Read()
		snap.SetMode(column.ModeWorking)
		for {
			l, ok := snap.R.Pivot()
			if !ok {
				break
			}
			k, peer, found := lk.resolvePivot(l)
			if !found {
				snap.SetMode(column.ModeStorage)
				lk.matrix[workingJ].Publish(snap)
				if lk.pivots.CompareAndSwap(l, pivot.Unclaimed, workingJ) {
					return
				}
				continue outer
			}
			switch {
			case k < workingJ:
				snap.R.AddCol(peer.R)
				if lk.cfg.MaintainV {
					snap.V.AddCol(peer.V)
				}
				continue
			case k > workingJ:
				snap.SetMode(column.ModeStorage)
				lk.matrix[workingJ].Publish(snap)
				if lk.pivots.CompareAndSwap(l, k, workingJ) {
					workingJ = k
				}
				continue outer
			default:
				panicImpossiblePivotEquality(workingJ)
			}
		}
		if snap.R.IsCycle() {
			snap.SetMode(column.ModeStorage)
			lk.matrix[workingJ].Publish(snap)
			return
		}
	}
}

// clearWithColumn uses the boundary built up in column j to zero out
// the column corresponding to its pivot.
func (lk *Locking) clearWithColumn(j int) {
	boundary := lk.matrix[j].Read()
	p, ok := boundary.R.Pivot()
	if !ok {
		panicCycleClear(j)
	}
	clearDim := lk.matrix[p].PeekDimension()
	cleared := cell.Pair{R: column.New(lk.cfg.Kind, clearDim), HasV: lk.cfg.MaintainV}
	if lk.cfg.MaintainV {
		v := boundary.R.Clone()
		v.SetDimension(clearDim)
		cleared.V = v
	}
	lk.matrix[p].Publish(cleared)
}

type lockingDecomposition Locking

func (d *lockingDecomposition) RCol(i int) column.Column {
	if i < 0 || i >= len(d.matrix) {
		panicOutOfRange("column", i, len(d.matrix))
	}
	return d.matrix[i].Read().R
}

func (d *lockingDecomposition) VCol(i int) (column.Column, error) {
	if !d.cfg.MaintainV {
		return nil, ErrNoVMatrix
	}
	if i < 0 || i >= len(d.matrix) {
		panicOutOfRange("column", i, len(d.matrix))
	}
	return d.matrix[i].Read().V, nil
}

func (d *lockingDecomposition) NCols() int { return len(d.matrix) }
func (d *lockingDecomposition) HasV() bool { return d.cfg.MaintainV }
