package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackshell/hackshell/pkg/metrics"
)

func TestNewShellMetrics_DisabledReturnsNil(t *testing.T) {
	metrics.Reset()
	assert.Nil(t, NewShellMetrics())
}

func TestNewShellMetrics_Enabled(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.Reset)

	m := NewShellMetrics()
	require.NotNil(t, m)

	m.ObserveCommand("ls", "ok", time.Millisecond)

	mfs, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["hackshell_commands_total"])
	assert.True(t, names["hackshell_command_duration_milliseconds"])
	assert.True(t, names["go_goroutines"])
}

func TestShellMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewShellMetricsWith(reg).(*shellMetrics)

	m.ObserveCommand("ls", "ok", time.Millisecond)
	m.ObserveCommand("ls", "ok", time.Millisecond)
	m.ObserveCommand("cd", "NotFound", time.Millisecond)
	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordLogin(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.commands.WithLabelValues("ls", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commands.WithLabelValues("cd", "NotFound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.commandDuration))
}

func TestShellMetrics_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewShellMetricsWith(reg).(*shellMetrics)

	m.SetKnownServers(3)
	m.SetRegistrySize(101)
	m.SetKnownServers(4)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.knownServers))
	assert.Equal(t, 101.0, testutil.ToFloat64(m.registrySize))
}

func TestNilSafeHelpers(t *testing.T) {
	// Must not panic.
	metrics.ObserveCommand(nil, "ls", "ok", time.Millisecond)
	metrics.RecordLogin(nil, true)
	metrics.SetKnownServers(nil, 1)
	metrics.SetRegistrySize(nil, 1)

	reg := prometheus.NewRegistry()
	m := NewShellMetricsWith(reg).(*shellMetrics)
	metrics.RecordLogin(m, true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
}
