// SPDX-License-Identifier: MIT

package lophat

import "github.com/lophat-go/lophat/engine"

// ErrNoVMatrix is returned by Decomposition.VCol when the Reducer was
// constructed without WithMaintainV. It is the only recoverable error
// this package's public surface returns; an out-of-range column or
// row index is always a programmer-contract violation and panics.
var ErrNoVMatrix = engine.ErrNoVMatrix
