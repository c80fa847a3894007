package triangulate

import (
	"context"
	"log/slog"
)

// Callers normally hand us their logger. This is the silent stand-in for when
// they don't.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func discardLogger() *slog.Logger {
	return slog.New(discardHandler{})
}
