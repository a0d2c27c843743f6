package plugin

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// RetryPolicyPlugin decides whether and when a failed payment is retried
//
// Either method may return ErrPluginUnavailable, in which case the decision is
// left to the other registered plugins.
type RetryPolicyPlugin interface {
	// IsRetryAborted reports whether the retry sequence of the transaction should stop
	IsRetryAborted(ctx context.Context, transactionExternalKey string) (bool, error)

	// GetNextRetryDate returns when the transaction should be retried, or nil for no opinion
	GetNextRetryDate(ctx context.Context, transactionExternalKey string) (*time.Time, error)
}

// PriorCallContext describes the payment about to be attempted by the retry automaton
type PriorCallContext struct {
	AttemptID              uuid.UUID
	AccountID              uuid.UUID
	PaymentMethodID        uuid.UUID
	PaymentExternalKey     string
	TransactionExternalKey string
	TransactionType        entity.TransactionType
	Amount                 decimal.Decimal
	Currency               string
	Properties             map[string]any
	CallContext            entity.CallContext
}

// PriorCallResult lets a policy adjust or veto the upcoming call
type PriorCallResult struct {
	Aborted        bool
	AdjustedAmount *decimal.Decimal
	Reason         error
}

// PriorCallPlugin is implemented by retry policies that inspect a payment before it is attempted
type PriorCallPlugin interface {
	PriorCall(ctx context.Context, pc PriorCallContext) (*PriorCallResult, error)
}

// RetryPluginRegistry resolves retry policy plugins by name
type RetryPluginRegistry interface {
	// Register adds or replaces a plugin
	Register(name string, p RetryPolicyPlugin)

	// Get returns the plugin registered under name
	//
	// Possible errors:
	// - ErrUnknownPlugin: If no plugin is registered under name
	Get(name string) (RetryPolicyPlugin, error)

	// Names lists the registered plugin names in sorted order
	Names() []string
}
