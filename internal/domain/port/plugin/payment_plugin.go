package plugin

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentRequest carries the arguments of one gateway call
type PaymentRequest struct {
	AccountID       uuid.UUID
	PaymentID       uuid.UUID
	TransactionID   uuid.UUID
	PaymentMethodID uuid.UUID
	Amount          decimal.Decimal // rounded to the currency's minor unit, zero for VOID
	Currency        string
	Properties      map[string]any
	CallContext     entity.CallContext
}

// PaymentPlugin abstracts one external payment processor
//
// A returned error means the plugin could not complete the call; a gateway decline
// is a result with status FAILURE.
type PaymentPlugin interface {
	AuthorizePayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)
	CapturePayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)
	PurchasePayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)
	VoidPayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)
	RefundPayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)
	CreditPayment(ctx context.Context, req PaymentRequest) (*entity.PluginResult, error)

	// GetPaymentInfo returns what the gateway knows about each transaction of a payment
	GetPaymentInfo(ctx context.Context, accountID, paymentID uuid.UUID, properties map[string]any) ([]*entity.PluginResult, error)
}

// PaymentPluginRegistry resolves payment plugins by name
type PaymentPluginRegistry interface {
	// Register adds or replaces a plugin
	Register(name string, p PaymentPlugin)

	// Get returns the plugin registered under name
	//
	// Possible errors:
	// - ErrUnknownPlugin: If no plugin is registered under name
	Get(name string) (PaymentPlugin, error)

	// Names lists the registered plugin names in sorted order
	Names() []string
}
