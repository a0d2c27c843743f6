package payment

import (
	_ "embed"
	"strings"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
)

//go:embed payment_states.yaml
var paymentStatesYAML []byte

var stateMachineConfig = statemachine.MustLoad(paymentStatesYAML)

// StateMachineConfig returns the payment transaction graph
func StateMachineConfig() *statemachine.Config {
	return stateMachineConfig
}

// InitialState is the state of a payment that has no transaction yet
const InitialState = "INIT"

var stateSuffixes = map[statemachine.OutcomeKind]string{
	statemachine.OutcomeSuccess:   "_SUCCESS",
	statemachine.OutcomePending:   "_PENDING",
	statemachine.OutcomeFailure:   "_FAILED",
	statemachine.OutcomeException: "_ERRORED",
}

// StateNameFor returns the state a transaction type lands in for an outcome
func StateNameFor(transactionType entity.TransactionType, outcome statemachine.OutcomeKind) string {
	return string(transactionType) + stateSuffixes[outcome]
}

// OutcomeForStatus maps a transaction status back onto the outcome that produces it
func OutcomeForStatus(status entity.TransactionStatus) statemachine.OutcomeKind {
	switch status {
	case entity.TransactionStatusSuccess:
		return statemachine.OutcomeSuccess
	case entity.TransactionStatusPending:
		return statemachine.OutcomePending
	case entity.TransactionStatusPaymentFailure:
		return statemachine.OutcomeFailure
	default:
		return statemachine.OutcomeException
	}
}

// PaymentStatusFor maps an operation outcome onto the status recorded on the transaction
func PaymentStatusFor(outcome statemachine.Outcome) entity.PaymentStatus {
	switch outcome.Kind() {
	case statemachine.OutcomeSuccess:
		return entity.PaymentStatusSuccess
	case statemachine.OutcomePending:
		return entity.PaymentStatusPending
	case statemachine.OutcomeFailure:
		return entity.PaymentStatusPaymentFailureAborted
	default:
		return entity.PaymentStatusPluginFailureAborted
	}
}

// isFailureState reports whether the state records a failed or errored transaction
func isFailureState(state string) bool {
	return strings.HasSuffix(state, stateSuffixes[statemachine.OutcomeFailure]) ||
		strings.HasSuffix(state, stateSuffixes[statemachine.OutcomeException])
}

// sourceState picks the state an operation starts from
//
// Failed states only allow retrying their own operation; any other operation
// starts from the last successful state.
func sourceState(payment *entity.Payment, transactionType entity.TransactionType) string {
	if payment == nil {
		return InitialState
	}
	current := payment.StateName
	if stateMachineConfig.IsOperationAllowed(current, string(transactionType)) {
		return current
	}
	if isFailureState(current) && payment.LastSuccessStateName != "" {
		return payment.LastSuccessStateName
	}
	return current
}
