// Package command runs tasks as host processes, without a shell and without
// any sandbox.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"time"

	"github.com/quarklabs/taskline/internal/core/models"
	"github.com/quarklabs/taskline/internal/core/ports"
	"github.com/quarklabs/taskline/pkg/logger"
)

// ErrLaunch marks failures where the named command could not be started at
// all: missing binary, bad permissions. No process outcome exists for these.
var ErrLaunch = errors.New("launch failed")

type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// ExecuteTask launches the task's invocation vector as a child process and
// blocks until it exits and both output streams are drained. A non-zero exit
// is a normal result, not an error; the error return is reserved for faults
// where no process outcome exists (launch failure, supervision fault).
func (e *Executor) ExecuteTask(ctx context.Context, task *models.Task) (*models.TaskResult, error) {
	log := logger.WithComponent("command_executor")

	if task == nil {
		return nil, fmt.Errorf("nil task provided")
	}

	argv := task.Argv()
	log.Debug().
		Str("task_id", task.ID).
		Str("command", argv[0]).
		Int("args", len(argv)-1).
		Msg("Launching task process")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	// Streams are captured separately; stdin stays disconnected.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrLaunch, argv[0], err)
	}

	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("process supervision failed for %q: %w", argv[0], waitErr)
		}
	}

	execMs := int64(math.Round(elapsed.Seconds() * 1000))

	result := &models.TaskResult{
		TaskID:          task.ID,
		Success:         waitErr == nil,
		Output:          stdout.String(),
		ExecutionTimeMs: &execMs,
	}
	if waitErr != nil {
		// stderr is only surfaced on failure; a noisy zero-exit process
		// still reports an empty error.
		result.Error = stderr.String()
	}
	result.Clean()

	log.Debug().
		Str("task_id", task.ID).
		Bool("success", result.Success).
		Int64("execution_time_ms", execMs).
		Msg("Task process finished")

	return result, nil
}

var _ ports.TaskExecutor = (*Executor)(nil)
