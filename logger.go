package ember

import (
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger inherited by engines created afterwards without
// WithLogger. Ember is silent until this is called; nil silences it again.
//
// An engine logs its pool being sized and each style it applies at debug
// level, as well as stopping on its own when Duration runs out. Capacities
// above MaxCapacity are logged as warnings before Init or SetStyle returns
// ErrCapacity.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	pkgLogger.Store(l)
}

// Logger returns the logger new engines inherit.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}
