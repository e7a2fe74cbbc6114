// SPDX-License-Identifier: MIT

package column_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophat-go/lophat/column"
)

func factories() map[string]func(dimension int, rows []int) column.Column {
	return map[string]func(int, []int) column.Column{
		"vec":    func(d int, rows []int) column.Column { return column.VecFromBoundary(d, rows) },
		"bitset": func(d int, rows []int) column.Column { return column.BitSetFromRows(d, rows) },
		"hybrid": func(d int, rows []int) column.Column { return column.HybridFromBoundary(d, rows) },
	}
}

func TestPivotAndEmptiness(t *testing.T) {
	for name, make_ := range factories() {
		t.Run(name, func(t *testing.T) {
			empty := make_(0, nil)
			_, ok := empty.Pivot()
			require.False(t, ok)
			require.True(t, empty.IsCycle())
			require.False(t, empty.IsBoundary())

			nonEmpty := make_(1, []int{2, 3, 5})
			piv, ok := nonEmpty.Pivot()
			require.True(t, ok)
			require.Equal(t, 5, piv)
			require.True(t, nonEmpty.IsBoundary())
		})
	}
}

func TestAddEntryToggles(t *testing.T) {
	for name, make_ := range factories() {
		t.Run(name, func(t *testing.T) {
			c := make_(0, nil)
			c.AddEntry(3)
			require.ElementsMatch(t, []int{3}, c.Entries())
			c.AddEntry(3) // toggling twice cancels
			require.Empty(t, c.Entries())
		})
	}
}

func TestAddColIsSymmetricDifference(t *testing.T) {
	for name, make_ := range factories() {
		t.Run(name, func(t *testing.T) {
			a := make_(0, []int{1, 2, 3})
			b := make_(0, []int{2, 3, 4})
			a.AddCol(b)
			require.ElementsMatch(t, []int{1, 4}, a.Entries())
		})
	}
}

func TestClearEntries(t *testing.T) {
	for name, make_ := range factories() {
		t.Run(name, func(t *testing.T) {
			c := make_(0, []int{1, 2, 3})
			c.ClearEntries()
			require.True(t, c.IsCycle())
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	for name, make_ := range factories() {
		t.Run(name, func(t *testing.T) {
			c := make_(0, []int{1, 2})
			clone := c.Clone()
			clone.AddEntry(9)
			require.NotContains(t, c.Entries(), 9)
			require.Contains(t, clone.Entries(), 9)
		})
	}
}

func TestHybridSetModeRoundTrips(t *testing.T) {
	h := column.HybridFromBoundary(2, []int{1, 4, 7})
	h.SetMode(column.ModeWorking)
	require.ElementsMatch(t, []int{1, 4, 7}, h.Entries())
	h.AddEntry(4) // toggled off while in bit-set representation
	h.SetMode(column.ModeStorage)
	require.ElementsMatch(t, []int{1, 7}, h.Entries())
}

func TestAddColAcrossRepresentations(t *testing.T) {
	v := column.VecFromBoundary(0, []int{1, 2, 3})
	bs := column.BitSetFromRows(0, []int{2, 3, 4})
	v.AddCol(bs)
	require.ElementsMatch(t, []int{1, 4}, v.Entries())
}
