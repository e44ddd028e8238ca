// Package protocol implements the line-oriented JSON protocol spoken on the
// worker's control channel: one task object per input line, one result object
// per output line.
package protocol

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/quarklabs/taskline/internal/core/models"
	"github.com/quarklabs/taskline/internal/core/ports"
)

// DecodeTask parses one input line into a task. Fields absent from the record
// keep their zero values; a line that is not a JSON object fails.
func DecodeTask(line []byte) (*models.Task, error) {
	var task models.Task
	if err := json.Unmarshal(line, &task); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	return &task, nil
}

// Encoder writes results to the output stream, one JSON object per line. Every
// Emit flushes so a consumer blocked on the next line sees it immediately.
type Encoder struct {
	w *bufio.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

func (e *Encoder) Emit(result *models.TaskResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := e.w.Write(payload); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := e.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush result: %w", err)
	}
	return nil
}

var _ ports.ResultEmitter = (*Encoder)(nil)
