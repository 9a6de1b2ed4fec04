package fbtpng

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs another one.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the package's diagnostics to l. A nil l turns logging
// back off. It may be called while a batch is running.
//
// Messages by level:
//   - [slog.LevelDebug]: computed block geometry, labels the font cannot show
//   - [slog.LevelInfo]: the font in use, each written PNG, batch totals
//   - [slog.LevelWarn]: text disabled for lack of a font, files that failed
//
// The command-line tool installs a text or JSON handler:
//
//	fbtpng.SetLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a logger that discards
// everything.
func Logger() *slog.Logger {
	return current.Load()
}
