package logger

import (
	"log/slog"
)

// Field keys shared by every log line so session logs can be filtered.
const (
	// Tracing
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"

	// Session
	KeySessionID = "session_id"
	KeyServerIP  = "server_ip"
	KeyUsername  = "username"
	KeyLoggedIn  = "logged_in"

	// Commands
	KeyCommand    = "command"
	KeyResult     = "result" // ok, empty or an error code name
	KeyDurationMs = "duration_ms"
	KeyError      = "error"

	// File system
	KeyPath    = "path"
	KeyOldPath = "old_path"
	KeyNewPath = "new_path"

	// World
	KeyName    = "name"
	KeyServers = "servers"
	KeySeed    = "seed"

	KeyAddress = "address" // listen address of the metrics API
)

func SessionID(id string) slog.Attr  { return slog.String(KeySessionID, id) }
func ServerIP(ip string) slog.Attr   { return slog.String(KeyServerIP, ip) }
func Username(name string) slog.Attr { return slog.String(KeyUsername, name) }
func LoggedIn(v bool) slog.Attr      { return slog.Bool(KeyLoggedIn, v) }
func Command(verb string) slog.Attr  { return slog.String(KeyCommand, verb) }
func Path(p string) slog.Attr        { return slog.String(KeyPath, p) }
func OldPath(p string) slog.Attr     { return slog.String(KeyOldPath, p) }
func NewPath(p string) slog.Attr     { return slog.String(KeyNewPath, p) }

// Err returns the error attribute, or an empty Attr that handlers skip.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}
