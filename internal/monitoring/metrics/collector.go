package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels one processed line by how it ended.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeNonZeroExit Outcome = "nonzero_exit"
	OutcomeDecodeError Outcome = "decode_error"
	OutcomeLaunchError Outcome = "launch_error"
	OutcomeFault       Outcome = "fault"
)

// Collector tracks task outcomes for the debug endpoint.
type Collector struct {
	tasksTotal    *prometheus.CounterVec
	executionTime prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		tasksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "taskline",
			Name:      "tasks_total",
			Help:      "Tasks processed, labelled by outcome.",
		}, []string{"outcome"}),
		executionTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "taskline",
			Name:      "task_execution_seconds",
			Help:      "Wall-clock time spent running task processes.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(c.tasksTotal, c.executionTime)
	}
	return c
}

func (c *Collector) RecordOutcome(outcome Outcome) {
	c.tasksTotal.WithLabelValues(string(outcome)).Inc()
}

func (c *Collector) ObserveExecutionTime(ms int64) {
	c.executionTime.Observe(float64(ms) / 1000.0)
}
