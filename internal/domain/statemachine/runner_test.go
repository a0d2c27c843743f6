package statemachine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

const doorGraph = `
name: door
initial: CLOSED
states: [CLOSED, OPEN, JAMMED, WAITING]
operations: [OPEN_DOOR, CLOSE_DOOR]
transitions:
  - from: [CLOSED]
    operation: OPEN_DOOR
    outcomes:
      SUCCESS: OPEN
      PENDING: WAITING
      FAILURE: CLOSED
      EXCEPTION: JAMMED
  - from: [OPEN]
    operation: CLOSE_DOOR
    outcomes:
      SUCCESS: CLOSED
    unreachable: [PENDING, FAILURE, EXCEPTION]
`

type recorder struct {
	calls   []string
	entered string
	outcome Outcome
}

func (r *recorder) leaving() LeavingFunc {
	return func(ctx context.Context, state string) error {
		r.calls = append(r.calls, "leaving:"+state)
		return nil
	}
}

func (r *recorder) entering() EnteringFunc {
	return func(ctx context.Context, newState, operation string, outcome Outcome) error {
		r.calls = append(r.calls, "entering:"+newState)
		r.entered = newState
		r.outcome = outcome
		return nil
	}
}

func (r *recorder) operation(outcome Outcome, err error) OperationFunc {
	return func(ctx context.Context) (Outcome, error) {
		r.calls = append(r.calls, "operation")
		return outcome, err
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(doorGraph))
	require.NoError(t, err)

	assert.Equal(t, "door", cfg.Name())
	assert.Equal(t, "CLOSED", cfg.InitialState())
	assert.Equal(t, []string{"CLOSED", "JAMMED", "OPEN", "WAITING"}, cfg.States())
	assert.True(t, cfg.IsOperationAllowed("CLOSED", "OPEN_DOOR"))
	assert.False(t, cfg.IsOperationAllowed("OPEN", "OPEN_DOOR"))
	assert.Equal(t, []string{"CLOSE_DOOR"}, cfg.AllowedOperations("OPEN"))
}

func TestLoadRejectsInvalidGraphs(t *testing.T) {
	tests := []struct {
		name  string
		graph string
	}{
		{
			name: "Uncovered outcome",
			graph: `
name: bad
initial: A
states: [A, B]
operations: [GO]
transitions:
  - from: [A]
    operation: GO
    outcomes:
      SUCCESS: B
`,
		},
		{
			name: "Unknown target",
			graph: `
name: bad
initial: A
states: [A]
operations: [GO]
transitions:
  - from: [A]
    operation: GO
    outcomes: {SUCCESS: Z, PENDING: A, FAILURE: A, EXCEPTION: A}
`,
		},
		{
			name: "Unknown outcome name",
			graph: `
name: bad
initial: A
states: [A]
operations: [GO]
transitions:
  - from: [A]
    operation: GO
    outcomes: {SUCCESS: A, PENDING: A, FAILURE: A, EXCEPTION: A, MAYBE: A}
`,
		},
		{
			name: "Unknown field",
			graph: `
name: bad
initial: A
states: [A]
colour: red
`,
		},
		{
			name: "Undeclared initial state",
			graph: `
name: bad
initial: Q
states: [A]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.graph))
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrConfiguration)
		})
	}
}

func TestRunOperation(t *testing.T) {
	cfg := MustLoad([]byte(doorGraph))
	ctx := context.Background()

	tests := []struct {
		name     string
		outcome  Outcome
		expected string
	}{
		{"Success", Success(), "OPEN"},
		{"Pending", Pending(), "WAITING"},
		{"Failure", Failure(errors.New("locked")), "CLOSED"},
		{"Exception", Aborted(errors.New("hinge")), "JAMMED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			target, outcome, err := cfg.RunOperation(ctx, "CLOSED", "OPEN_DOOR",
				rec.operation(tt.outcome, nil), rec.entering(), rec.leaving())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, target)
			assert.Equal(t, tt.outcome.Kind(), outcome.Kind())
			assert.Equal(t, []string{"leaving:CLOSED", "operation", "entering:" + tt.expected}, rec.calls)
			assert.Equal(t, tt.outcome.Kind(), rec.outcome.Kind())
		})
	}
}

func TestRunOperationNotAllowed(t *testing.T) {
	cfg := MustLoad([]byte(doorGraph))
	rec := &recorder{}

	_, _, err := cfg.RunOperation(context.Background(), "OPEN", "OPEN_DOOR",
		rec.operation(Success(), nil), rec.entering(), rec.leaving())

	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)
	assert.Empty(t, rec.calls, "no callback may run for a disallowed operation")
}

func TestRunOperationMissingEntry(t *testing.T) {
	cfg := MustLoad([]byte(doorGraph))
	rec := &recorder{}

	_, outcome, err := cfg.RunOperation(context.Background(), "OPEN", "CLOSE_DOOR",
		rec.operation(Pending(), nil), rec.entering(), rec.leaving())

	var missing *MissingEntryError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, OutcomePending, missing.Outcome)
	assert.Equal(t, OutcomePending, outcome.Kind())
	assert.Equal(t, []string{"leaving:OPEN", "operation"}, rec.calls)
}

func TestRunOperationHardErrors(t *testing.T) {
	cfg := MustLoad([]byte(doorGraph))
	ctx := context.Background()
	boom := errors.New("boom")

	t.Run("Leaving callback fails", func(t *testing.T) {
		rec := &recorder{}
		leaving := LeavingFunc(func(ctx context.Context, state string) error { return boom })

		_, _, err := cfg.RunOperation(ctx, "CLOSED", "OPEN_DOOR", rec.operation(Success(), nil), rec.entering(), leaving)

		var runnerErr *RunnerError
		require.ErrorAs(t, err, &runnerErr)
		assert.Equal(t, PhaseLeaving, runnerErr.Phase)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, rec.calls)
	})

	t.Run("Operation callback fails", func(t *testing.T) {
		rec := &recorder{}

		_, _, err := cfg.RunOperation(ctx, "CLOSED", "OPEN_DOOR", rec.operation(Outcome{}, boom), rec.entering(), rec.leaving())

		var runnerErr *RunnerError
		require.ErrorAs(t, err, &runnerErr)
		assert.Equal(t, PhaseOperation, runnerErr.Phase)
		assert.Equal(t, "", rec.entered)
	})

	t.Run("Entering callback fails", func(t *testing.T) {
		rec := &recorder{}
		entering := EnteringFunc(func(ctx context.Context, newState, operation string, outcome Outcome) error { return boom })

		target, outcome, err := cfg.RunOperation(ctx, "CLOSED", "OPEN_DOOR", rec.operation(Success(), nil), entering, rec.leaving())

		var runnerErr *RunnerError
		require.ErrorAs(t, err, &runnerErr)
		assert.Equal(t, PhaseEntering, runnerErr.Phase)
		assert.Equal(t, "", target)
		assert.True(t, outcome.IsSuccess())
	})
}

func TestOutcomeErr(t *testing.T) {
	assert.NoError(t, Success().Err())
	assert.NoError(t, Pending().Err())

	err := Failure(errs.ErrCurrencyMismatch).Err()
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, OutcomeFailure, opErr.Outcome)
	assert.ErrorIs(t, err, errs.ErrCurrencyMismatch)

	assert.Error(t, Aborted(nil).Err())
	assert.Equal(t, "EXCEPTION(boom)", Aborted(errors.New("boom")).String())
}
