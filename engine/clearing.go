// SPDX-License-Identifier: MIT

package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// dimensionedReducer is implemented by both parallel reducers (LockFree
// and Locking) so the descending-dimension driver and clearing pass
// can be written once and shared between them.
type dimensionedReducer interface {
	numCols() int
	dimensionOf(j int) int
	isBoundary(j int) bool
	reduceColumn(j int)
	clearWithColumn(j int)
}

// runDescending walks dimensions from maxDim down to 0, reducing each
// dimension's columns in parallel and, when cfg.Clearing is set,
// clearing the dimension just reduced before descending further. The
// driver imposes a strict happens-before from one dimension's
// reduction to its clearing pass to the next dimension's reduction.
func runDescending(d dimensionedReducer, maxDim int, cfg Config) {
	for dim := maxDim; dim >= 0; dim-- {
		reduceDimension(d, dim, cfg)
		if cfg.Clearing && dim > 0 {
			clearDimension(d, dim, cfg)
		}
	}
}

func reduceDimension(d dimensionedReducer, dim int, cfg Config) {
	dispatch(d.numCols(), cfg, func(j int) bool {
		return d.dimensionOf(j) == dim
	}, d.reduceColumn)
}

func clearDimension(d dimensionedReducer, dim int, cfg Config) {
	dispatch(d.numCols(), cfg, func(j int) bool {
		return d.dimensionOf(j) == dim && d.isBoundary(j)
	}, d.clearWithColumn)
}

// dispatch partitions the indices in [0, n) passing filter into
// contiguous batches of at least cfg.MinChunkLen (a single batch when
// fewer indices pass), and runs work over each batch on a pool bounded
// by cfg.NumThreads (0 meaning GOMAXPROCS).
func dispatch(n int, cfg Config, filter func(int) bool, work func(int)) {
	indices := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if filter(j) {
			indices = append(indices, j)
		}
	}
	if len(indices) == 0 {
		return
	}

	limit := cfg.NumThreads
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	chunk := cfg.MinChunkLen
	if chunk <= 0 {
		chunk = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for start := 0; start < len(indices); {
		end := start + chunk
		if end > len(indices) || len(indices)-end < chunk {
			// Fold a short remainder into this batch.
			end = len(indices)
		}
		batch := indices[start:end]
		start = end
		g.Go(func() error {
			for _, j := range batch {
				work(j)
			}
			return nil
		})
	}
	_ = g.Wait() // work funcs never return an error
}
