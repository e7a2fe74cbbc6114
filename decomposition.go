// SPDX-License-Identifier: MIT

package lophat

import (
	"io"

	"github.com/lophat-go/lophat/codec"
	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/diagram"
	"github.com/lophat-go/lophat/engine"
)

// Decomposition is the read-only result of a finished Reducer: the
// reduced R matrix and, if maintained, V.
type Decomposition struct {
	inner engine.Decomposition
}

// RCol returns the i'th column of R. Panics if i is out of range.
func (d *Decomposition) RCol(i int) column.Column { return d.inner.RCol(i) }

// VCol returns the i'th column of V. Returns ErrNoVMatrix if V was not
// maintained; panics if i is out of range.
func (d *Decomposition) VCol(i int) (column.Column, error) { return d.inner.VCol(i) }

// NCols returns the number of columns in the matrix.
func (d *Decomposition) NCols() int { return d.inner.NCols() }

// HasV reports whether V was maintained.
func (d *Decomposition) HasV() bool { return d.inner.HasV() }

// Diagram reads the persistence diagram off the reduced matrix.
func (d *Decomposition) Diagram() diagram.Diagram {
	return diagram.ReadOff(d.inner)
}

// Save writes the decomposition to w in the self-describing on-disk
// format; Load reverses it.
func (d *Decomposition) Save(w io.Writer) error {
	return codec.Save(w, codec.FromDecomposition(d.inner))
}

// savedDecomposition adapts a codec.Record to the engine.Decomposition
// interface, so a Reducer's output can round-trip through Save/Load
// without losing access to RCol/VCol/Diagram.
type savedDecomposition struct {
	kind column.Kind
	rec  codec.Record
}

func (s *savedDecomposition) RCol(i int) column.Column {
	return buildColumn(s.kind, s.rec.R[i])
}

func buildColumn(kind column.Kind, c codec.SortedVecColumn) column.Column {
	col := column.New(kind, c.Dimension)
	col.AddEntries(c.Boundary...)
	return col
}

func (s *savedDecomposition) VCol(i int) (column.Column, error) {
	if !s.rec.HasV() {
		return nil, ErrNoVMatrix
	}
	return buildColumn(s.kind, s.rec.V[i]), nil
}

func (s *savedDecomposition) NCols() int { return len(s.rec.R) }
func (s *savedDecomposition) HasV() bool { return s.rec.HasV() }

// Load reads a decomposition previously written by Save, rebuilding
// its columns using kind as the in-memory representation.
func Load(r io.Reader, kind column.Kind) (*Decomposition, error) {
	rec, err := codec.Load(r)
	if err != nil {
		return nil, err
	}
	return &Decomposition{inner: &savedDecomposition{kind: kind, rec: rec}}, nil
}
