// Package cell implements the per-column publish/snapshot slot used by
// both concurrent reducers to share a column's current (R, V) pair
// across goroutines.
//
// Two realizations of the same contract are provided:
//
//   - PublishCell — a lock-free slot built on an atomic pointer swap to
//     an immutable Pair. Read is wait-free; Publish is a single store.
//   - RWCell — a sync.RWMutex guarding a Pair in place. Read clones
//     under a read lock; Publish replaces under a write lock held only
//     for the duration of the store.
//
// Read always returns an owned snapshot: the columns inside the
// returned Pair are independent clones, safe for the caller to mutate
// without racing a concurrent reader of the same cell.
package cell
