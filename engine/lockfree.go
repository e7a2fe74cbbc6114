// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/lophat-go/lophat/cell"
	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/pivot"
)

// LockFree implements the lock-free parallel reduction algorithm of
// Morozov and Nigmetov: each column is reduced by a worker that adds
// in lower-indexed claimants of pivots it meets, and re-drives onto a
// higher-indexed claimant it preempts, until it either claims an
// unclaimed pivot or reduces to a cycle.
type LockFree struct {
	cfg    Config
	matrix []*cell.PublishCell
	pivots *pivot.Table
	maxDim int
}

// NewLockFree returns an empty lock-free reducer.
func NewLockFree(cfg Config) *LockFree {
	return &LockFree{cfg: cfg}
}

// AddCols appends cols to the matrix. When V is maintained, each new
// column's V entry starts as the identity singleton {i}.
func (lf *LockFree) AddCols(cols []column.Column) {
	first := len(lf.matrix)
	for i, c := range cols {
		if c.Dimension() > lf.maxDim {
			lf.maxDim = c.Dimension()
		}
		pair := cell.Pair{R: c, HasV: lf.cfg.MaintainV}
		if lf.cfg.MaintainV {
			v := column.New(lf.cfg.Kind, c.Dimension())
			v.AddEntry(first + i)
			pair.V = v
		}
		lf.matrix = append(lf.matrix, cell.NewPublishCell(pair))
	}
}

// AddEntries toggles individual entries into already-appended columns.
func (lf *LockFree) AddEntries(entries [][2]int) {
	for _, e := range entries {
		row, col := e[0], e[1]
		if col < 0 || col >= len(lf.matrix) {
			panicOutOfRange("column", col, len(lf.matrix))
		}
		c := lf.matrix[col]
		pair := c.Read()
		pair.R.AddEntry(row)
		c.Publish(pair)
	}
}

// Decompose allocates the pivot table and runs the descending-
// dimension driver (with clearing, if enabled), returning the
// resulting read-only view.
func (lf *LockFree) Decompose() Decomposition {
	height := lf.cfg.ResolvedHeight(len(lf.matrix))
	lf.pivots = pivot.NewTable(height)
	runDescending(lf, lf.maxDim, lf.cfg)
	return (*lockFreeDecomposition)(lf)
}

func (lf *LockFree) numCols() int          { return len(lf.matrix) }
func (lf *LockFree) dimensionOf(j int) int { return lf.matrix[j].PeekDimension() }
func (lf *LockFree) isBoundary(j int) bool { return lf.matrix[j].PeekIsBoundary() }

// resolvePivot returns the column currently claiming pivot row l, if
// any, re-reading until the claim it observes is consistent (the
// claimant's own pivot still equals l).
func (lf *LockFree) resolvePivot(l int) (k int, peer cell.Pair, found bool) {
	for {
		k = lf.pivots.Load(l)
		if k == pivot.Unclaimed {
			return 0, cell.Pair{}, false
		}
		peer = lf.matrix[k].Read()
		if piv, ok := peer.R.Pivot(); !ok || piv != l {
			continue
		}
		return k, peer, true
	}
}

// reduceColumn reduces the j'th column as far as possible, switching
// to reduce a higher-indexed column if it preempts that column's
// pivot claim along the way. Safe to call on many j concurrently.
func (lf *LockFree) reduceColumn(j int) {
	workingJ := j
outer:
	for {
		snap := lf.matrix[workingJ].Read()
		snap.SetMode(column.ModeWorking)
		for {
			l, ok := snap.R.Pivot()
			if !ok {
				break
			}
			k, peer, found := lf.resolvePivot(l)
			if !found {
				snap.SetMode(column.ModeStorage)
				lf.matrix[workingJ].Publish(snap)
				if lf.pivots.CompareAndSwap(l, pivot.Unclaimed, workingJ) {
					return
				}
				continue outer
			}
			switch {
			case k < workingJ:
				snap.R.AddCol(peer.R)
				if lf.cfg.MaintainV {
					snap.V.AddCol(peer.V)
				}
				continue
			case k > workingJ:
				snap.SetMode(column.ModeStorage)
				lf.matrix[workingJ].Publish(snap)
				if lf.pivots.CompareAndSwap(l, k, workingJ) {
					workingJ = k
				}
				continue outer
			default:
				panicImpossiblePivotEquality(workingJ)
			}
		}
		if snap.R.IsCycle() {
			snap.SetMode(column.ModeStorage)
			lf.matrix[workingJ].Publish(snap)
			return
		}
	}
}

// clearWithColumn uses the boundary built up in column j to zero out
// the column corresponding to its pivot.
func (lf *LockFree) clearWithColumn(j int) {
	boundary := lf.matrix[j].Read()
	p, ok := boundary.R.Pivot()
	if !ok {
		panicCycleClear(j)
	}
	clearDim := lf.matrix[p].PeekDimension()
	cleared := cell.Pair{R: column.New(lf.cfg.Kind, clearDim), HasV: lf.cfg.MaintainV}
	if lf.cfg.MaintainV {
		v := boundary.R.Clone()
		v.SetDimension(clearDim)
		cleared.V = v
	}
	lf.matrix[p].Publish(cleared)
}

type lockFreeDecomposition LockFree

func (d *lockFreeDecomposition) RCol(i int) column.Column {
	if i < 0 || i >= len(d.matrix) {
		panicOutOfRange("column", i, len(d.matrix))
	}
	return d.matrix[i].Read().R
}

func (d *lockFreeDecomposition) VCol(i int) (column.Column, error) {
	if !d.cfg.MaintainV {
		return nil, ErrNoVMatrix
	}
	if i < 0 || i >= len(d.matrix) {
		panicOutOfRange("column", i, len(d.matrix))
	}
	return d.matrix[i].Read().V, nil
}

func (d *lockFreeDecomposition) NCols() int { return len(d.matrix) }
func (d *lockFreeDecomposition) HasV() bool { return d.cfg.MaintainV }
