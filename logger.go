// SPDX-License-Identifier: MIT

package glmath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so callers never format
// the message.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

func silent() *slog.Logger { return slog.New(discard{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent())
}

// SetLogger installs l as the logger for glmath and its sub-packages.
// Passing nil restores the default, which discards everything.
//
// Levels in use:
//   - [slog.LevelDebug]: a transform.Builder was created (bound convention)
//   - [slog.LevelError]: a contract violation is about to panic
//     (non-positive aspect, fov, viewport size or pick region)
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent()
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger. Sub-packages read it on
// every call, so a later SetLogger takes effect immediately.
func Logger() *slog.Logger {
	return current.Load()
}
