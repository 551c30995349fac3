package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hackshell/hackshell/pkg/metrics"
)

// shellMetrics is the Prometheus implementation of metrics.ShellMetrics.
type shellMetrics struct {
	commands        *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	logins          *prometheus.CounterVec
	knownServers    prometheus.Gauge
	registrySize    prometheus.Gauge
}

// NewShellMetrics creates a new Prometheus-backed ShellMetrics instance
// registered on the process-wide registry.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewShellMetrics() metrics.ShellMetrics {
	if !metrics.IsEnabled() {
		return nil
	}
	return NewShellMetricsWith(metrics.GetRegistry())
}

// NewShellMetricsWith creates a ShellMetrics instance registered on reg.
func NewShellMetricsWith(reg prometheus.Registerer) metrics.ShellMetrics {
	return &shellMetrics{
		commands: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackshell_commands_total",
				Help: "Total number of dispatched commands by verb and result",
			},
			[]string{"verb", "result"},
		),
		commandDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "hackshell_command_duration_milliseconds",
				Help: "Duration of command handlers in milliseconds",
				Buckets: []float64{
					0.01, // 10us - pwd, whoami
					0.05,
					0.1,
					0.5,
					1, // 1ms - deep copies
					5,
					10,
					50,
				},
			},
			[]string{"verb"},
		),
		logins: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "hackshell_login_attempts_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"}, // "success", "failure"
		),
		knownServers: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "hackshell_known_servers",
				Help: "Number of servers the player has connected to or logged into",
			},
		),
		registrySize: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "hackshell_world_servers",
				Help: "Number of servers in the world registry",
			},
		),
	}
}

func (m *shellMetrics) ObserveCommand(verb, result string, duration time.Duration) {
	m.commands.WithLabelValues(verb, result).Inc()
	m.commandDuration.WithLabelValues(verb).Observe(float64(duration.Microseconds()) / 1000.0)
}

func (m *shellMetrics) RecordLogin(success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.logins.WithLabelValues(outcome).Inc()
}

func (m *shellMetrics) SetKnownServers(count int) {
	m.knownServers.Set(float64(count))
}

func (m *shellMetrics) SetRegistrySize(count int) {
	m.registrySize.Set(float64(count))
}
