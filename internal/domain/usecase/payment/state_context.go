package payment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
)

// RunRequest is the input of one payment automaton run
type RunRequest struct {
	TransactionType        entity.TransactionType
	AccountID              uuid.UUID
	PaymentID              *uuid.UUID
	PaymentMethodID        *uuid.UUID
	PaymentExternalKey     string
	TransactionExternalKey string
	Amount                 *decimal.Decimal // nil for VOID
	Currency               string           // empty means the payment or account currency
	Properties             map[string]any
	CallContext            entity.CallContext

	// LockAccount serializes the run with other runs on the account
	LockAccount bool
	// Dispatch runs the plugin call on the dispatch pool with the dispatch timeout
	Dispatch bool
	// PropagatePluginFailure returns plugin failures as errors instead of recording them silently
	PropagatePluginFailure bool
	// IsRetry allows a new transaction under an external key whose previous transactions failed
	IsRetry bool
	// AttemptID links the new transaction to the retry attempt driving it
	AttemptID *uuid.UUID
}

// RunResult is the output of one payment automaton run
type RunResult struct {
	Payment     *entity.Payment
	Transaction *entity.PaymentTransaction // nil when the run replayed an earlier result
	Status      entity.PaymentStatus
	Replayed    bool
}

// stateContext holds everything one run shares between its callbacks
type stateContext struct {
	request       RunRequest
	account       *entity.Account
	payment       *entity.Payment // nil until the leaving callback creates it
	paymentMethod *entity.PaymentMethod
	plugin        plugin.PaymentPlugin
	amount        decimal.Decimal
	currency      string
	transaction   *entity.PaymentTransaction
	pluginResult  *entity.PluginResult
	pluginErr     error
	paymentStatus entity.PaymentStatus
}
