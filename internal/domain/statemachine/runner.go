package statemachine

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// OperationCallback runs the business logic of an operation
//
// A returned error is a hard failure: the runner stops and no state is entered.
// Expected business failures are reported through Failure or Aborted outcomes.
type OperationCallback interface {
	DoOperation(ctx context.Context) (Outcome, error)
}

// LeavingStateCallback is invoked before the operation runs
type LeavingStateCallback interface {
	LeavingState(ctx context.Context, state string) error
}

// EnteringStateCallback is invoked once the target state is known
type EnteringStateCallback interface {
	EnteringState(ctx context.Context, newState, operation string, outcome Outcome) error
}

// OperationFunc adapts a function to OperationCallback
type OperationFunc func(ctx context.Context) (Outcome, error)

// DoOperation implements OperationCallback
func (f OperationFunc) DoOperation(ctx context.Context) (Outcome, error) {
	return f(ctx)
}

// LeavingFunc adapts a function to LeavingStateCallback
type LeavingFunc func(ctx context.Context, state string) error

// LeavingState implements LeavingStateCallback
func (f LeavingFunc) LeavingState(ctx context.Context, state string) error {
	return f(ctx, state)
}

// EnteringFunc adapts a function to EnteringStateCallback
type EnteringFunc func(ctx context.Context, newState, operation string, outcome Outcome) error

// EnteringState implements EnteringStateCallback
func (f EnteringFunc) EnteringState(ctx context.Context, newState, operation string, outcome Outcome) error {
	return f(ctx, newState, operation, outcome)
}

// RunOperation drives one transition of the graph
//
// The sequence is leaving callback, operation, target lookup, entering callback.
// The returned outcome is valid whenever the operation callback ran, even when
// the entering callback later fails.
func (c *Config) RunOperation(
	ctx context.Context,
	currentState string,
	operation string,
	operationCb OperationCallback,
	enteringCb EnteringStateCallback,
	leavingCb LeavingStateCallback,
) (string, Outcome, error) {
	if !c.IsOperationAllowed(currentState, operation) {
		return "", Outcome{}, fmt.Errorf("%w: %s is not allowed from state %s",
			errs.ErrOperationNotAllowed, operation, currentState)
	}

	if leavingCb != nil {
		if err := leavingCb.LeavingState(ctx, currentState); err != nil {
			return "", Outcome{}, &RunnerError{Phase: PhaseLeaving, State: currentState, Operation: operation, Err: err}
		}
	}

	outcome, err := operationCb.DoOperation(ctx)
	if err != nil {
		return "", Outcome{}, &RunnerError{Phase: PhaseOperation, State: currentState, Operation: operation, Err: err}
	}

	target, ok := c.Target(currentState, operation, outcome.Kind())
	if !ok {
		return "", outcome, &MissingEntryError{State: currentState, Operation: operation, Outcome: outcome.Kind()}
	}

	if enteringCb != nil {
		if err := enteringCb.EnteringState(ctx, target, operation, outcome); err != nil {
			return "", outcome, &RunnerError{Phase: PhaseEntering, State: target, Operation: operation, Err: err}
		}
	}

	return target, outcome, nil
}
