// SPDX-License-Identifier: MIT

package lophat

import (
	"fmt"

	"github.com/lophat-go/lophat/column"
	"github.com/lophat-go/lophat/engine"
)

// Option configures a Reducer before construction.
type Option func(*engine.Config)

// WithMaintainV materializes V alongside R, so VCol queries on the
// resulting decomposition succeed.
func WithMaintainV() Option {
	return func(c *engine.Config) { c.MaintainV = true }
}

// WithNumThreads bounds the worker count used by LockFree and Locking.
// 0 (the default) means "use GOMAXPROCS". Passing a negative count is
// a programmer error.
func WithNumThreads(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("lophat: WithNumThreads: negative count %d", n))
	}
	return func(c *engine.Config) { c.NumThreads = n }
}

// WithColumnHeight fixes the pivot table's size at decompose time.
// Every row index added via AddEntries must then satisfy row < height.
// Passing a non-positive height is a programmer error.
func WithColumnHeight(height int) Option {
	if height <= 0 {
		panic(fmt.Sprintf("lophat: WithColumnHeight: non-positive height %d", height))
	}
	return func(c *engine.Config) { c.ColumnHeight = &height }
}

// WithMinChunkLen sets the minimum number of columns assigned to any
// worker in a single dispatch batch. Passing a non-positive length is
// a programmer error.
func WithMinChunkLen(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("lophat: WithMinChunkLen: non-positive length %d", n))
	}
	return func(c *engine.Config) { c.MinChunkLen = n }
}

// WithClearing enables the descending-dimension clearing optimization.
// Only sound when the input represents a chain complex (D² = 0); the
// caller is responsible for that guarantee.
func WithClearing() Option {
	return func(c *engine.Config) { c.Clearing = true }
}

// WithKind selects the column representation used internally:
// column.KindVec, column.KindBitSet, or column.KindHybrid.
func WithKind(kind column.Kind) Option {
	return func(c *engine.Config) { c.Kind = kind }
}
