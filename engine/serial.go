// SPDX-License-Identifier: MIT

package engine

import "github.com/lophat-go/lophat/column"

// Serial implements the standard left-to-right column-addition
// reduction of Edelsbrunner et al. It is the deterministic oracle the
// parallel reducers are tested against. Like the parallel reducers, it
// follows the shared four-step builder: columns (and sparse entries)
// accumulate unreduced until Decompose runs the algorithm once, in
// insertion order.
type Serial struct {
	cfg Config
	r   []column.Column
	v   []column.Column
}

// NewSerial returns an empty Serial reducer.
func NewSerial(cfg Config) *Serial {
	return &Serial{cfg: cfg}
}

// AddCols appends cols to the (not yet reduced) matrix. When V is
// maintained, each new column's V entry starts as the identity
// singleton {i}.
func (s *Serial) AddCols(cols []column.Column) {
	first := len(s.r)
	for i, c := range cols {
		s.r = append(s.r, c)
		if s.cfg.MaintainV {
			vCol := column.New(s.cfg.Kind, c.Dimension())
			vCol.AddEntry(first + i)
			s.v = append(s.v, vCol)
		}
	}
}

// AddEntries toggles individual entries into already-appended columns.
func (s *Serial) AddEntries(entries [][2]int) {
	for _, e := range entries {
		row, col := e[0], e[1]
		if col < 0 || col >= len(s.r) {
			panicOutOfRange("column", col, len(s.r))
		}
		s.r[col].AddEntry(row)
	}
}

// Decompose runs the left-to-right reduction once, in insertion order,
// and returns the resulting read-only view.
func (s *Serial) Decompose() Decomposition {
	height := s.cfg.ResolvedHeight(len(s.r))
	lowInverse := make(map[int]int, len(s.r))
	for j := range s.r {
		c := s.r[j]
		if top, ok := c.Pivot(); ok && top >= height {
			panicOutOfRange("row", top, height)
		}
		c.SetMode(column.ModeWorking)
		var vCol column.Column
		if s.cfg.MaintainV {
			vCol = s.v[j]
			vCol.SetMode(column.ModeWorking)
		}
		for {
			pivot, ok := c.Pivot()
			if !ok {
				break
			}
			owner, found := lowInverse[pivot]
			if !found {
				break
			}
			c.AddCol(s.r[owner])
			if s.cfg.MaintainV {
				vCol.AddCol(s.v[owner])
			}
		}
		if pivot, ok := c.Pivot(); ok {
			lowInverse[pivot] = j
		}
		c.SetMode(column.ModeStorage)
		if s.cfg.MaintainV {
			vCol.SetMode(column.ModeStorage)
		}
	}
	return (*serialDecomposition)(s)
}

type serialDecomposition Serial

func (d *serialDecomposition) RCol(i int) column.Column {
	if i < 0 || i >= len(d.r) {
		panicOutOfRange("column", i, len(d.r))
	}
	return d.r[i]
}

func (d *serialDecomposition) VCol(i int) (column.Column, error) {
	if !d.cfg.MaintainV {
		return nil, ErrNoVMatrix
	}
	if i < 0 || i >= len(d.v) {
		panicOutOfRange("column", i, len(d.v))
	}
	return d.v[i], nil
}

func (d *serialDecomposition) NCols() int { return len(d.r) }
func (d *serialDecomposition) HasV() bool { return d.cfg.MaintainV }
