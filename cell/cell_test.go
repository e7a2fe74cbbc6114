// SPDX-License-Identifier: MIT

package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophat-go/lophat/cell"
	"github.com/lophat-go/lophat/column"
)

type publisher interface {
	Read() cell.Pair
	Publish(cell.Pair)
}

func cells() map[string]publisher {
	r := column.VecFromBoundary(0, []int{1, 2})
	v := column.VecFromBoundary(0, []int{0})
	initial := cell.Pair{R: r, V: v, HasV: true}
	return map[string]publisher{
		"publish": cell.NewPublishCell(initial),
		"rwlock":  cell.NewRWCell(initial),
	}
}

func TestReadReturnsIndependentSnapshot(t *testing.T) {
	for name, c := range cells() {
		t.Run(name, func(t *testing.T) {
			snap := c.Read()
			snap.R.AddEntry(99)

			again := c.Read()
			require.NotContains(t, again.R.Entries(), 99)
		})
	}
}

func TestPublishIsVisibleToSubsequentRead(t *testing.T) {
	for name, c := range cells() {
		t.Run(name, func(t *testing.T) {
			next := cell.Pair{R: column.VecFromBoundary(1, []int{5}), HasV: false}
			c.Publish(next)

			got := c.Read()
			require.Equal(t, 1, got.R.Dimension())
			require.ElementsMatch(t, []int{5}, got.R.Entries())
			require.False(t, got.HasV)
		})
	}
}
