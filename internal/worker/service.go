// Package worker drives the executor loop: one line in, one result out,
// strictly in order, with every failure contained to its own line.
package worker

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/quarklabs/taskline/internal/core/models"
	"github.com/quarklabs/taskline/internal/core/ports"
	"github.com/quarklabs/taskline/internal/execution/command"
	"github.com/quarklabs/taskline/internal/monitoring/health"
	"github.com/quarklabs/taskline/internal/monitoring/metrics"
	"github.com/quarklabs/taskline/internal/protocol"
	"github.com/quarklabs/taskline/pkg/logger"
)

type Service struct {
	executor     ports.TaskExecutor
	collector    *metrics.Collector
	checker      *health.Checker
	maxLineBytes int
}

func NewService(executor ports.TaskExecutor, collector *metrics.Collector, checker *health.Checker, maxLineBytes int) *Service {
	return &Service{
		executor:     executor,
		collector:    collector,
		checker:      checker,
		maxLineBytes: maxLineBytes,
	}
}

// Run consumes the control channel until EOF. Task N+1 is not read until task
// N's result has been written and flushed; completion order is input order.
// The only error Run returns is a broken control or output channel — task
// failures never escape their line.
func (s *Service) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := logger.WithComponent("worker")
	runID := uuid.NewString()

	emitter := protocol.NewEncoder(out)
	reader := bufio.NewReader(in)

	log.Info().Str("run_id", runID).Msg("Worker started, waiting for tasks")
	s.checker.Update("worker", health.StatusOK, "waiting for tasks")

	var lines uint64
	for {
		line, tooLong, err := readLine(reader, s.maxLineBytes)
		if err == io.EOF {
			break
		}
		if err != nil {
			s.checker.Update("worker", health.StatusError, err.Error())
			return fmt.Errorf("control channel read failed: %w", err)
		}

		lines++
		var result *models.TaskResult
		if tooLong {
			log.Warn().Int("max_line_bytes", s.maxLineBytes).Msg("Emitting degraded result for over-long task line")
			s.collector.RecordOutcome(metrics.OutcomeDecodeError)
			result = models.NewDegradedResult(fmt.Sprintf("task line exceeds %d bytes", s.maxLineBytes))
		} else {
			result = s.processLine(ctx, line)
		}

		if err := emitter.Emit(result); err != nil {
			s.checker.Update("worker", health.StatusError, err.Error())
			return err
		}
		s.checker.Update("worker", health.StatusOK, fmt.Sprintf("%d lines processed", lines))
	}

	log.Info().Str("run_id", runID).Uint64("lines", lines).Msg("Control channel exhausted, worker stopping")
	return nil
}

// readLine returns the next line without its trailing newline. A line longer
// than maxBytes is consumed to its end but reported as too long instead of
// failing the read, so the loop keeps its one-result-per-line guarantee; with
// maxBytes <= 0 lines are unbounded. io.EOF is returned only when no line
// content remains.
func readLine(r *bufio.Reader, maxBytes int) (line []byte, tooLong bool, err error) {
	for {
		chunk, readErr := r.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if maxBytes > 0 && len(line) > maxBytes {
				tooLong = true
				line = nil
			}
		}

		switch readErr {
		case nil:
			line = bytes.TrimSuffix(line, []byte("\n"))
			line = bytes.TrimSuffix(line, []byte("\r"))
			return line, tooLong, nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(line) == 0 && !tooLong {
				return nil, false, io.EOF
			}
			return line, tooLong, nil
		default:
			return nil, false, readErr
		}
	}
}

// processLine turns one raw line into exactly one result. Decode errors,
// launch errors, and recovered panics all degrade to an error result with an
// empty task id and no timing.
func (s *Service) processLine(ctx context.Context, line []byte) (result *models.TaskResult) {
	log := logger.WithComponent("worker")

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Task processing panicked")
			s.collector.RecordOutcome(metrics.OutcomeFault)
			result = models.NewDegradedResult(fmt.Sprintf("task processing panicked: %v", r))
		}
	}()

	task, err := protocol.DecodeTask(line)
	if err != nil {
		log.Warn().Err(err).Msg("Emitting degraded result for undecodable task line")
		s.collector.RecordOutcome(metrics.OutcomeDecodeError)
		return models.NewDegradedResult(err.Error())
	}

	result, err = s.executor.ExecuteTask(ctx, task)
	if err != nil {
		if errors.Is(err, command.ErrLaunch) {
			s.collector.RecordOutcome(metrics.OutcomeLaunchError)
		} else {
			s.collector.RecordOutcome(metrics.OutcomeFault)
		}
		log.Warn().Err(err).Str("task_id", task.ID).Msg("Task could not be executed")
		return models.NewDegradedResult(err.Error())
	}

	if result.Success {
		s.collector.RecordOutcome(metrics.OutcomeSuccess)
	} else {
		s.collector.RecordOutcome(metrics.OutcomeNonZeroExit)
	}
	if result.ExecutionTimeMs != nil {
		s.collector.ObserveExecutionTime(*result.ExecutionTimeMs)
	}
	return result
}
