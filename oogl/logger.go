// SPDX-License-Identifier: Unlicense OR MIT

package oogl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger. By default oogl produces no
// log output. Pass nil to restore the silent default.
//
// Log levels used by oogl:
//   - [slog.LevelDebug]: driver notifications
//   - [slog.LevelInfo]: the capability probe of new contexts, low
//     severity driver messages
//   - [slog.LevelWarn]: shader compiler and linker warnings, medium
//     severity driver messages
//   - [slog.LevelError]: high severity driver messages
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
