package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/request-flows/internal/application"
	"github.com/DanielPopoola/request-flows/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder("test", reg)
	require.NoError(t, err)

	recorder.ObserveTransition("coffee", "LOADING")
	recorder.ObserveTransition("coffee", "LOADING")
	recorder.ObserveTransition("coffee", "SUCCESS")
	recorder.ObserveFailure("submit", application.CategoryValidation)
	recorder.ObserveStale("coffee")
	recorder.ObserveDuration("coffee", 120*time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"test_state_transitions_total",
		"test_request_failures_total",
		"test_stale_completions_total",
		"test_request_duration_seconds",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				key := mf.GetName()
				for _, l := range m.GetLabel() {
					key += "," + l.GetName() + "=" + l.GetValue()
				}
				values[key] = m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["test_state_transitions_total,flow=coffee,state=LOADING"])
	assert.Equal(t, 1.0, values["test_state_transitions_total,flow=coffee,state=SUCCESS"])
	assert.Equal(t, 1.0, values["test_request_failures_total,category=VALIDATION,flow=submit"])
	assert.Equal(t, 1.0, values["test_stale_completions_total,flow=coffee"])
}

func TestNewRecorder_RejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.NewRecorder("test", reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder("test", reg)
	assert.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder("test", reg)
	require.NoError(t, err)
	recorder.ObserveStale("coffee")

	path := filepath.Join(t.TempDir(), "flows.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `test_stale_completions_total{flow="coffee"} 1`)
}
