package statemachine

import "fmt"

// OutcomeKind is the closed set of results an operation can produce
type OutcomeKind string

// Outcome kinds
const (
	OutcomeSuccess   OutcomeKind = "SUCCESS"
	OutcomePending   OutcomeKind = "PENDING"
	OutcomeFailure   OutcomeKind = "FAILURE"
	OutcomeException OutcomeKind = "EXCEPTION"
)

// OutcomeKinds lists every outcome kind
var OutcomeKinds = []OutcomeKind{OutcomeSuccess, OutcomePending, OutcomeFailure, OutcomeException}

// ParseOutcomeKind validates an outcome name
func ParseOutcomeKind(s string) (OutcomeKind, error) {
	for _, k := range OutcomeKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

// Outcome is the value an operation callback returns
//
// Failure and Aborted outcomes may carry the business error that caused them.
type Outcome struct {
	kind   OutcomeKind
	reason error
}

// Success builds a SUCCESS outcome
func Success() Outcome {
	return Outcome{kind: OutcomeSuccess}
}

// Pending builds a PENDING outcome
func Pending() Outcome {
	return Outcome{kind: OutcomePending}
}

// Failure builds a FAILURE outcome
func Failure(reason error) Outcome {
	return Outcome{kind: OutcomeFailure, reason: reason}
}

// Aborted builds an EXCEPTION outcome
func Aborted(reason error) Outcome {
	return Outcome{kind: OutcomeException, reason: reason}
}

// Kind returns the outcome kind
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// Reason returns the error attached to a failure or exception, if any
func (o Outcome) Reason() error {
	return o.reason
}

// IsSuccess reports a SUCCESS outcome
func (o Outcome) IsSuccess() bool {
	return o.kind == OutcomeSuccess
}

// IsPending reports a PENDING outcome
func (o Outcome) IsPending() bool {
	return o.kind == OutcomePending
}

// Err returns nil for SUCCESS and PENDING, otherwise an *OperationError wrapping the reason
func (o Outcome) Err() error {
	if o.kind == OutcomeSuccess || o.kind == OutcomePending || o.kind == "" {
		return nil
	}
	return &OperationError{Outcome: o.kind, Err: o.reason}
}

// String implements fmt.Stringer
func (o Outcome) String() string {
	if o.reason != nil {
		return fmt.Sprintf("%s(%v)", o.kind, o.reason)
	}
	return string(o.kind)
}
