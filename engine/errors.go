// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
)

// ErrNoVMatrix is returned by a Decomposition's V accessor when the
// reducer was not configured to maintain V. It is the one recoverable
// error that crosses the engine boundary; every other failure named
// here is a programmer-contract violation and panics instead.
var ErrNoVMatrix = errors.New("engine: V matrix was not maintained")

func panicOutOfRange(what string, index, length int) {
	panic(fmt.Sprintf("engine: %s index %d out of range [0, %d)", what, index, length))
}

func panicImpossiblePivotEquality(j int) {
	panic(fmt.Sprintf("engine: column %d resolved a pivot claimant equal to itself", j))
}

func panicCycleClear(j int) {
	panic(fmt.Sprintf("engine: clear_with_column called on cycle column %d", j))
}
