package metrics

import (
	"time"
)

// ShellMetrics provides observability for the command dispatcher.
//
// This interface is optional - pass nil to disable metrics collection with
// zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics.InitRegistry()
//	m := prometheus.NewShellMetrics()
//	d := shell.NewDispatcher(sess, shell.Options{Metrics: m})
//
//	// Without metrics
//	d := shell.NewDispatcher(sess, shell.Options{})
type ShellMetrics interface {
	// ObserveCommand records a dispatched command.
	//
	// Parameters:
	//   - verb: Command verb (e.g., "ls", "login"); unknown verbs are
	//     reported as "unknown" to bound label cardinality
	//   - result: "ok" or the error code name (e.g., "NotFound")
	//   - duration: Time taken to run the handler
	ObserveCommand(verb string, result string, duration time.Duration)

	// RecordLogin records a login attempt on a remote server.
	RecordLogin(success bool)

	// SetKnownServers updates the number of servers the player has seen.
	SetKnownServers(count int)

	// SetRegistrySize updates the number of servers in the world.
	SetRegistrySize(count int)
}

// ObserveCommand records a command if m is not nil.
func ObserveCommand(m ShellMetrics, verb, result string, duration time.Duration) {
	if m != nil {
		m.ObserveCommand(verb, result, duration)
	}
}

// RecordLogin records a login attempt if m is not nil.
func RecordLogin(m ShellMetrics, success bool) {
	if m != nil {
		m.RecordLogin(success)
	}
}

// SetKnownServers updates the known server gauge if m is not nil.
func SetKnownServers(m ShellMetrics, count int) {
	if m != nil {
		m.SetKnownServers(count)
	}
}

// SetRegistrySize updates the registry size gauge if m is not nil.
func SetRegistrySize(m ShellMetrics, count int) {
	if m != nil {
		m.SetRegistrySize(count)
	}
}
