package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// LogContext carries the fields of the command being executed. Records
// logged with a context holding one get these fields appended.
type LogContext struct {
	SessionID string
	Command   string
	ServerIP  string
	Username  string
	TraceID   string
	SpanID    string
}

// WithContext returns ctx carrying lc.
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, contextKey{}, lc)
}

// FromContext returns the LogContext in ctx, or nil.
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(contextKey{}).(*LogContext)
	return lc
}

// attrs returns the non-empty fields as slog attributes.
func (lc *LogContext) attrs() []slog.Attr {
	fields := [...]struct{ key, value string }{
		{KeySessionID, lc.SessionID},
		{KeyCommand, lc.Command},
		{KeyServerIP, lc.ServerIP},
		{KeyUsername, lc.Username},
		{KeyTraceID, lc.TraceID},
		{KeySpanID, lc.SpanID},
	}

	attrs := make([]slog.Attr, 0, len(fields))
	for _, f := range fields {
		if f.value != "" {
			attrs = append(attrs, slog.String(f.key, f.value))
		}
	}
	return attrs
}
