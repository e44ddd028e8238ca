package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarklabs/taskline/internal/monitoring/health"
)

func TestCheckerUpdateAndSnapshot(t *testing.T) {
	checker := health.NewChecker()
	assert.Empty(t, checker.Snapshot())
	assert.True(t, checker.Healthy())

	checker.Update("worker", health.StatusOK, "waiting for tasks")

	snapshot := checker.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "worker", snapshot[0].Name)
	assert.Equal(t, health.StatusOK, snapshot[0].Status)
	assert.Equal(t, "waiting for tasks", snapshot[0].Message)
	assert.False(t, snapshot[0].LastChecked.IsZero())
}

func TestCheckerHealthy(t *testing.T) {
	checker := health.NewChecker()

	checker.Update("worker", health.StatusWarning, "slow task")
	assert.True(t, checker.Healthy())

	checker.Update("worker", health.StatusError, "output stream broken")
	assert.False(t, checker.Healthy())

	checker.Update("worker", health.StatusOK, "recovered")
	assert.True(t, checker.Healthy())
}
