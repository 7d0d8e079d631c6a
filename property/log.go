// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package property

import (
	"log/slog"
	"sync/atomic"

	"github.com/z5labs/cfgkit/otelslog"
)

var diagnostics atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used to report failed transformations.
// Passing nil restores the default, which wraps slog.Default.
func SetLogger(l *slog.Logger) {
	diagnostics.Store(l)
}

func logger() *slog.Logger {
	if l := diagnostics.Load(); l != nil {
		return l
	}
	// slog.Default may be replaced at any time so it is resolved
	// on each failure instead of being captured once.
	return otelslog.New(slog.Default().Handler())
}
