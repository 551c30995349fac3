// Package logger is the structured logger of hackshell, a thin layer over
// log/slog. Output, format and level can be changed at any time with Init;
// loggers derived with With keep following those changes.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Config holds logger configuration.
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

var (
	level = new(slog.LevelVar)

	mu     sync.RWMutex
	sink   slog.Handler
	out    io.Writer = os.Stderr
	file   *os.File
	format = "text"
	color  = isTerminal(os.Stderr.Fd())

	root = slog.New(&rootHandler{})
)

func init() {
	rebuild()
}

// rebuild replaces the sink after an output or format change.
func rebuild() {
	mu.Lock()
	defer mu.Unlock()

	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		sink = slog.NewJSONHandler(out, opts)
	} else {
		sink = newTextHandler(out, opts, color)
	}
}

func currentSink() slog.Handler {
	mu.RLock()
	defer mu.RUnlock()
	return sink
}

// Init applies cfg. Empty fields keep their current setting. A file output
// is opened for appending and replaces any file opened before.
func Init(cfg Config) error {
	if cfg.Output != "" {
		if err := setOutputSpec(cfg.Output); err != nil {
			return err
		}
	}
	if cfg.Level != "" {
		SetLevel(cfg.Level)
	}
	if cfg.Format != "" {
		SetFormat(cfg.Format)
	}
	return nil
}

func setOutputSpec(spec string) error {
	switch strings.ToLower(spec) {
	case "stdout":
		setOutput(os.Stdout, isTerminal(os.Stdout.Fd()), nil)
	case "stderr":
		setOutput(os.Stderr, isTerminal(os.Stderr.Fd()), nil)
	default:
		f, err := os.OpenFile(spec, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", spec, err)
		}
		setOutput(f, false, f)
	}
	return nil
}

// setOutput redirects logging to w. f, when set, is closed on the next change.
func setOutput(w io.Writer, useColor bool, f *os.File) {
	mu.Lock()
	previous := file
	out, color, file = w, useColor, f
	mu.Unlock()

	rebuild()
	if previous != nil {
		_ = previous.Close()
	}
}

// SetLevel sets the minimum level. Unknown names are ignored.
func SetLevel(name string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return
	}
	level.Set(l)
}

// SetFormat switches between "text" and "json". Unknown names are ignored.
func SetFormat(name string) {
	name = strings.ToLower(name)
	if name != "text" && name != "json" {
		return
	}
	mu.Lock()
	format = name
	mu.Unlock()
	rebuild()
}

// ============================================================================
// Logging API
// ============================================================================

// Debug logs at debug level. Args are alternating keys and values or slog.Attr.
func Debug(msg string, args ...any) {
	root.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	root.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	root.Log(context.Background(), slog.LevelWarn, msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	root.Log(context.Background(), slog.LevelError, msg, args...)
}

// DebugCtx logs at debug level with the fields of the LogContext in ctx.
func DebugCtx(ctx context.Context, msg string, args ...any) {
	root.Log(ctx, slog.LevelDebug, msg, args...)
}

// With returns a logger that adds args to every record.
func With(args ...any) *slog.Logger {
	return root.With(args...)
}

// Duration returns the time elapsed since start in milliseconds.
func Duration(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// ============================================================================
// Root Handler
// ============================================================================

// rootHandler forwards records to the current sink, so loggers derived before
// Init follow later output and format changes. Attributes and groups bound
// through With are replayed onto the sink for each record.
type rootHandler struct {
	bind []func(slog.Handler) slog.Handler
}

func (h *rootHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= level.Level()
}

func (h *rootHandler) Handle(ctx context.Context, r slog.Record) error {
	if lc := FromContext(ctx); lc != nil {
		r = r.Clone()
		r.AddAttrs(lc.attrs()...)
	}

	target := currentSink()
	for _, b := range h.bind {
		target = b(target)
	}
	return target.Handle(ctx, r)
}

func (h *rootHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *rootHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *rootHandler) with(b func(slog.Handler) slog.Handler) *rootHandler {
	return &rootHandler{bind: append(h.bind[:len(h.bind):len(h.bind)], b)}
}
