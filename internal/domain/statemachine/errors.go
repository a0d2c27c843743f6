package statemachine

import (
	"fmt"
)

// Runner phases reported by RunnerError
const (
	PhaseLeaving   = "leaving"
	PhaseOperation = "operation"
	PhaseEntering  = "entering"
)

// OperationError carries the business reason of a FAILURE or EXCEPTION outcome
type OperationError struct {
	Outcome OutcomeKind
	Err     error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("operation ended with %s", e.Outcome)
	}
	return fmt.Sprintf("operation ended with %s: %v", e.Outcome, e.Err)
}

// Unwrap returns the business error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// RunnerError is a hard error raised by one of the callbacks; no state was entered
type RunnerError struct {
	Phase     string
	State     string
	Operation string
	Err       error
}

// Error implements the error interface
func (e *RunnerError) Error() string {
	return fmt.Sprintf("state machine %s callback failed (state: %s, operation: %s): %v",
		e.Phase, e.State, e.Operation, e.Err)
}

// Unwrap returns the callback error
func (e *RunnerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RunnerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "state_machine_error",
		"phase":      e.Phase,
		"state":      e.State,
		"operation":  e.Operation,
		"error":      e.Err.Error(),
	}
}

// MissingEntryError means the graph has no target for a (state, operation, outcome) triple
type MissingEntryError struct {
	State     string
	Operation string
	Outcome   OutcomeKind
}

// Error implements the error interface
func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("missing transition for state %s, operation %s, outcome %s", e.State, e.Operation, e.Outcome)
}
