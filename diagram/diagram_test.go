// SPDX-License-Identifier: MIT

package diagram_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/diagram"
	"github.com/lophat-go/lophat/engine"
)

type boundaryCol struct {
	dimension int
	entries   []int
}

func buildCols(kind column.Kind, rows []boundaryCol) []column.Column {
	cols := make([]column.Column, len(rows))
	for i, r := range rows {
		cols[i] = column.New(kind, r.dimension)
		cols[i].AddEntries(r.entries...)
	}
	return cols
}

func sphereBoundary() []boundaryCol {
	return []boundaryCol{
		{0, nil}, {0, nil}, {0, nil}, {0, nil},
		{1, []int{0, 1}}, {1, []int{0, 2}}, {1, []int{1, 2}},
		{1, []int{0, 3}}, {1, []int{1, 3}}, {1, []int{2, 3}},
		{2, []int{4, 7, 8}}, {2, []int{5, 7, 9}}, {2, []int{6, 8, 9}}, {2, []int{4, 5, 6}},
	}
}

func sphereBoundaryAntiTransposed() []boundaryCol {
	return []boundaryCol{
		{0, nil}, {0, nil}, {0, nil}, {0, nil},
		{1, []int{1, 2}}, {1, []int{1, 3}}, {1, []int{2, 3}},
		{1, []int{0, 1}}, {1, []int{0, 2}}, {1, []int{0, 3}},
		{2, []int{4, 5, 6}}, {2, []int{4, 7, 8}}, {2, []int{5, 7, 9}}, {2, []int{6, 8, 9}},
	}
}

func reduce(kind column.Kind, rows []boundaryCol) engine.Decomposition {
	r := engine.NewSerial(engine.Config{Kind: kind})
	r.AddCols(buildCols(kind, rows))
	return r.Decompose()
}

func TestReadOffTriangle(t *testing.T) {
	rows := []boundaryCol{
		{0, nil}, {0, nil}, {0, nil},
		{1, []int{0, 1}}, {1, []int{0, 2}}, {1, []int{1, 2}},
	}
	diag := diagram.ReadOff(reduce(column.KindVec, rows))
	require.ElementsMatch(t, []diagram.Pair{{Birth: 1, Death: 3}, {Birth: 2, Death: 4}}, diag.Paired)
	require.ElementsMatch(t, []int{0, 5}, diag.Unpaired)
}

func TestAntiTransposeMatchesReferenceLayout(t *testing.T) {
	at := diagram.AntiTranspose(column.KindVec, buildCols(column.KindVec, sphereBoundary()))
	want := buildCols(column.KindVec, sphereBoundaryAntiTransposed())
	require.Len(t, at, len(want))
	for i := range at {
		require.Equal(t, want[i].Dimension(), at[i].Dimension(), "column %d dimension", i)
		require.Equal(t, want[i].Entries(), at[i].Entries(), "column %d entries", i)
	}
}

func TestAntiTransposeTwiceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := randomStrictUpperTriangular(rng, 40)
	original := buildCols(column.KindVec, rows)

	once := diagram.AntiTranspose(column.KindVec, original)
	twice := diagram.AntiTranspose(column.KindVec, once)

	require.Len(t, twice, len(original))
	for i := range original {
		require.Equal(t, original[i].Dimension(), twice[i].Dimension())
		require.Equal(t, original[i].Entries(), twice[i].Entries())
	}
}

func TestAntiTransposeThenReflectMatchesDirectReduction(t *testing.T) {
	rows := sphereBoundary()
	direct := diagram.ReadOff(reduce(column.KindVec, rows))

	atCols := diagram.AntiTranspose(column.KindVec, buildCols(column.KindVec, rows))
	r := engine.NewSerial(engine.Config{})
	r.AddCols(atCols)
	viaAntiTranspose := diagram.AntiTransposeDiagram(diagram.ReadOff(r.Decompose()), len(rows))

	require.ElementsMatch(t, direct.Paired, viaAntiTranspose.Paired)
	require.ElementsMatch(t, direct.Unpaired, viaAntiTranspose.Unpaired)
}

func randomStrictUpperTriangular(rng *rand.Rand, n int) []boundaryCol {
	rows := make([]boundaryCol, n)
	for j := 0; j < n; j++ {
		var entries []int
		for i := 0; i < j; i++ {
			if rng.Intn(3) == 0 {
				entries = append(entries, i)
			}
		}
		rows[j] = boundaryCol{dimension: 0, entries: entries}
	}
	return rows
}
