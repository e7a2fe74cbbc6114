// SPDX-License-Identifier: MIT

package pivot_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lophat-go/lophat/pivot"
)

func TestNewTableStartsUnclaimed(t *testing.T) {
	table := pivot.NewTable(4)
	require.Equal(t, 4, table.Height())
	for row := 0; row < 4; row++ {
		require.Equal(t, pivot.Unclaimed, table.Load(row))
	}
}

func TestCompareAndSwapClaimsOnce(t *testing.T) {
	table := pivot.NewTable(1)
	require.True(t, table.CompareAndSwap(0, pivot.Unclaimed, 7))
	require.Equal(t, 7, table.Load(0))
	// A second claim against the stale "unclaimed" expectation must fail.
	require.False(t, table.CompareAndSwap(0, pivot.Unclaimed, 8))
	require.Equal(t, 7, table.Load(0))
}

func TestCompareAndSwapPreemption(t *testing.T) {
	table := pivot.NewTable(1)
	require.True(t, table.CompareAndSwap(0, pivot.Unclaimed, 5))
	require.True(t, table.CompareAndSwap(0, 5, 2))
	require.Equal(t, 2, table.Load(0))
}

func TestConcurrentClaimsExactlyOneWinner(t *testing.T) {
	table := pivot.NewTable(1)
	const contenders = 64
	var wins sync.WaitGroup
	wins.Add(contenders)
	winners := make(chan int, contenders)
	for i := 0; i < contenders; i++ {
		go func(id int) {
			defer wins.Done()
			if table.CompareAndSwap(0, pivot.Unclaimed, id) {
				winners <- id
			}
		}(i)
	}
	wins.Wait()
	close(winners)
	count := 0
	for range winners {
		count++
	}
	require.Equal(t, 1, count)
}
