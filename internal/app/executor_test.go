package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quoteday/internal/domain"
)

func TestExecute_RunsStepsInOrder(t *testing.T) {
	var steps []ExecutionStep

	op := Operation[int, int, int, string]{
		Name: "double",
		Validate: func(context.Context, int) error {
			steps = append(steps, StepValidate)
			return nil
		},
		Perform: func(_ context.Context, in int) (int, error) {
			steps = append(steps, StepPerform)
			return in * 2, nil
		},
		Verify: func(_ context.Context, _ int, p int) (int, error) {
			steps = append(steps, StepVerify)
			return p, nil
		},
		Archive: func(context.Context, int, int) error {
			steps = append(steps, StepArchive)
			return nil
		},
		Respond: func(_ context.Context, _ int, v int) (string, error) {
			steps = append(steps, StepRespond)
			if v == 42 {
				return "forty-two", nil
			}

			return "other", nil
		},
	}

	out, err := Execute(context.Background(), NewExecutor(discardLogger()), op, 21)

	require.NoError(t, err)
	assert.Equal(t, "forty-two", out)
	assert.Equal(t, []ExecutionStep{StepValidate, StepPerform, StepVerify, StepArchive, StepRespond}, steps)
}

func TestExecute_StepFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		op   Operation[int, int, int, int]
		step ExecutionStep
	}{
		{
			name: "validate",
			op:   Operation[int, int, int, int]{Validate: func(context.Context, int) error { return boom }},
			step: StepValidate,
		},
		{
			name: "perform",
			op:   Operation[int, int, int, int]{Perform: func(context.Context, int) (int, error) { return 0, boom }},
			step: StepPerform,
		},
		{
			name: "verify",
			op:   Operation[int, int, int, int]{Verify: func(context.Context, int, int) (int, error) { return 0, boom }},
			step: StepVerify,
		},
		{
			name: "archive",
			op:   Operation[int, int, int, int]{Archive: func(context.Context, int, int) error { return boom }},
			step: StepArchive,
		},
		{
			name: "respond",
			op:   Operation[int, int, int, int]{Respond: func(context.Context, int, int) (int, error) { return 0, boom }},
			step: StepRespond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Execute(context.Background(), NewExecutor(discardLogger()), tt.op, 1)

			require.ErrorIs(t, err, boom)

			step, ok := GetExecutionStep(err)
			require.True(t, ok)
			assert.Equal(t, tt.step, step)
		})
	}
}

func TestExecute_RetriesRetryableErrors(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{"succeeds after one conflict", 1, 3, 2, false},
		{"exhausts attempts", 5, 3, 3, true},
		{"zero attempts means once", 1, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			op := Operation[int, int, int, int]{
				Attempts:  tt.attempts,
				Retryable: domain.IsConflict,
				Perform: func(context.Context, int) (int, error) {
					calls++
					if calls <= tt.failures {
						return 0, domain.NewConflictError("favorite", "race")
					}

					return 1, nil
				},
			}

			_, err := Execute(context.Background(), NewExecutor(discardLogger()), op, 0)

			assert.Equal(t, tt.wantCalls, calls)

			if tt.wantErr {
				assert.True(t, domain.IsConflict(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_DoesNotRetryOtherErrors(t *testing.T) {
	calls := 0
	op := Operation[int, int, int, int]{
		Attempts:  3,
		Retryable: domain.IsConflict,
		Perform: func(context.Context, int) (int, error) {
			calls++
			return 0, domain.ErrNotFound
		},
	}

	_, err := Execute(context.Background(), NewExecutor(nil), op, 0)

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, calls)
}

func TestExecutionError_Message(t *testing.T) {
	err := &ExecutionError{Step: StepPerform, Message: "operation failed", Cause: errors.New("db down")}
	assert.Equal(t, "perform failed: operation failed: db down", err.Error())

	bare := &ExecutionError{Step: StepVerify, Message: "bad count"}
	assert.Equal(t, "verify failed: bad count", bare.Error())

	_, ok := GetExecutionStep(errors.New("plain"))
	assert.False(t, ok)
}
