package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrSessionID = "session.id"
	AttrServerIP  = "server.address"
	AttrUsername  = "user.name"
	AttrLoggedIn  = "session.logged_in"
	AttrCwd       = "session.cwd"

	AttrCommand   = "shell.command"
	AttrArgCount  = "shell.args"
	AttrErrorCode = "shell.error_code"

	AttrServers = "world.servers"
	AttrSeed    = "world.seed"
	AttrSource  = "world.source"
)

// Span and event names.
const (
	SpanCommand       = "shell.command"
	SpanWorldLoad     = "world.load"
	SpanWorldGenerate = "world.generate"

	EventServerChanged = "session.server_changed"
	EventLoggedIn      = "session.logged_in"
	EventLoggedOut     = "session.logged_out"
)

// SessionID returns the player session attribute.
func SessionID(id string) attribute.KeyValue {
	return attribute.String(AttrSessionID, id)
}

// ServerIP returns the current server attribute.
func ServerIP(ip string) attribute.KeyValue {
	return attribute.String(AttrServerIP, ip)
}

// Username returns the logged in account attribute.
func Username(name string) attribute.KeyValue {
	return attribute.String(AttrUsername, name)
}

// LoggedIn returns the login state of the current server.
func LoggedIn(v bool) attribute.KeyValue {
	return attribute.Bool(AttrLoggedIn, v)
}

// Cwd returns the working directory attribute.
func Cwd(path string) attribute.KeyValue {
	return attribute.String(AttrCwd, path)
}

// ErrorCode returns the engine error code attribute.
func ErrorCode(code string) attribute.KeyValue {
	return attribute.String(AttrErrorCode, code)
}

// Servers returns the registry size attribute.
func Servers(n int) attribute.KeyValue {
	return attribute.Int(AttrServers, n)
}

// Seed returns the generator seed attribute.
func Seed(seed uint64) attribute.KeyValue {
	return attribute.Int64(AttrSeed, int64(seed))
}

// Source returns the world file attribute.
func Source(path string) attribute.KeyValue {
	return attribute.String(AttrSource, path)
}

// StartCommandSpan starts the span of one shell command, named
// "shell.command.<verb>" so traces group by verb. The caller ends it.
func StartCommandSpan(ctx context.Context, verb string, args int, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{
		attribute.String(AttrCommand, verb),
		attribute.Int(AttrArgCount, args),
	}, attrs...)
	return tracer.Start(ctx, SpanCommand+"."+verb, trace.WithAttributes(attrs...))
}

// StartWorldSpan starts a span around loading or generating the world.
func StartWorldSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
