package models

import "strings"

// TaskResult describes the outcome of one task. ExecutionTimeMs is a pointer so
// it is omitted entirely when no process was launched.
type TaskResult struct {
	TaskID          string `json:"task_id"`
	Success         bool   `json:"success"`
	Output          string `json:"output"`
	Error           string `json:"error"`
	ExecutionTimeMs *int64 `json:"execution_time_ms,omitempty"`
}

// NewDegradedResult builds the result emitted when decoding or launching failed
// before any process context existed: empty task id, no timing, only an error
// description.
func NewDegradedResult(errMsg string) *TaskResult {
	return &TaskResult{
		Success: false,
		Error:   errMsg,
	}
}

// Clean trims surrounding whitespace from the captured streams.
func (r *TaskResult) Clean() {
	r.Output = strings.TrimSpace(r.Output)
	r.Error = strings.TrimSpace(r.Error)
}
