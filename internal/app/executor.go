package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quoteday/internal/platform/logging"
)

// Mutating engagement operations run as Validate → Perform → Verify → Archive → Respond.
//
//  1. VALIDATE  - preconditions, before any write
//  2. PERFORM   - the write itself, retried while Retryable says so
//  3. VERIFY    - reject results that break ledger invariants
//  4. ARCHIVE   - side records of a verified result (metrics, audit log)
//  5. RESPOND   - shape the result for the caller

// ExecutionStep represents a step in the operation pipeline.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepArchive  ExecutionStep = "archive"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

func stepError(step ExecutionStep, message string, cause error) error {
	return &ExecutionError{Step: step, Message: message, Cause: cause}
}

// Executor runs operations step by step with per-step logging.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor with the given logger.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the functions for each step. Nil steps are skipped.
type Operation[I, P, V, O any] struct {
	// Name identifies this operation for logging.
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Archive  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)

	// Attempts bounds how often Perform runs. Values below 1 mean once.
	Attempts int

	// Retryable selects Perform errors worth another attempt.
	Retryable func(error) bool
}

func (op *Operation[I, P, V, O]) perform(ctx context.Context, logger *slog.Logger, input I) (P, error) {
	var zero P

	if op.Perform == nil {
		return zero, nil
	}

	attempts := max(op.Attempts, 1)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var performed P

		performed, err = op.Perform(ctx, input)
		if err == nil {
			return performed, nil
		}

		if op.Retryable == nil || !op.Retryable(err) || attempt == attempts || ctx.Err() != nil {
			break
		}

		logger.WarnContext(ctx, "perform failed, retrying",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
	}

	logger.ErrorContext(ctx, "perform failed", slog.Any("error", err))

	return zero, stepError(StepPerform, "operation failed", err)
}

// Execute runs an operation through every step in order and stops at the
// first failure.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, op Operation[I, P, V, O], input I) (O, error) {
	var zero O

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			logger.WarnContext(ctx, "validation failed", slog.Any("error", err))

			return zero, stepError(StepValidate, "input validation failed", err)
		}
	}

	performed, err := op.perform(ctx, logger, input)
	if err != nil {
		return zero, err
	}

	var verified V

	if op.Verify != nil {
		verified, err = op.Verify(ctx, input, performed)
		if err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))

			return zero, stepError(StepVerify, "verification failed", err)
		}
	}

	if op.Archive != nil {
		if err := op.Archive(ctx, input, verified); err != nil {
			logger.ErrorContext(ctx, "archive failed", slog.Any("error", err))

			return zero, stepError(StepArchive, "archive failed", err)
		}
	}

	var result O

	if op.Respond != nil {
		result, err = op.Respond(ctx, input, verified)
		if err != nil {
			return zero, stepError(StepRespond, "response failed", err)
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
