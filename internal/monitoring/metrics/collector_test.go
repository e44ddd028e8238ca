package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarklabs/taskline/internal/monitoring/metrics"
)

func TestCollectorRecordsOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	collector.RecordOutcome(metrics.OutcomeSuccess)
	collector.RecordOutcome(metrics.OutcomeSuccess)
	collector.RecordOutcome(metrics.OutcomeDecodeError)
	collector.ObserveExecutionTime(25)

	families, err := registry.Gather()
	require.NoError(t, err)

	found := make(map[string]bool)
	for _, family := range families {
		found[family.GetName()] = true
	}
	assert.True(t, found["taskline_tasks_total"])
	assert.True(t, found["taskline_task_execution_seconds"])
}

func TestCollectorNilRegisterer(t *testing.T) {
	collector := metrics.NewCollector(nil)
	assert.NotPanics(t, func() {
		collector.RecordOutcome(metrics.OutcomeFault)
		collector.ObserveExecutionTime(1)
	})
}
