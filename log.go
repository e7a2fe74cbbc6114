// SPDX-License-Identifier: MIT

package lophat

import (
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/lophat-go/lophat/pivot"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// log is this package's structured logger: a console-friendly writer
// on stderr with caller info attached.
var log = zlog.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

// WarnIfPivotTableNotLockFree emits a one-time warning if the
// platform's atomic primitive backing the pivot table may not be
// lock-free. It does not alter reduction semantics either way.
func WarnIfPivotTableNotLockFree() {
	pivot.WarnIfNotLockFree()
}
