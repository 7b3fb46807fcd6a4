package isologo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a viewer goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for isologo and all its sub-packages.
// By default, isologo produces no log output. Call SetLogger to enable logging.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by isologo:
//   - [slog.LevelDebug]: per-frame diagnostics (animator idle, frame cancelled)
//   - [slog.LevelInfo]: lifecycle events (viewer started, frames exported)
//   - [slog.LevelWarn]: non-fatal issues (config reload rejected)
//
// Example:
//
//	isologo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by isologo.
// Sub-packages (animate, render, logo) call this to share one configuration
// without introducing import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
