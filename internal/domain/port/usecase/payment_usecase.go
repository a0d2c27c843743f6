package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentRequest represents an incoming payment transaction request
type PaymentRequest struct {
	AccountID              uuid.UUID
	PaymentID              *uuid.UUID
	PaymentMethodID        *uuid.UUID
	PaymentExternalKey     string
	TransactionExternalKey string
	Amount                 *decimal.Decimal
	Currency               string
	Properties             map[string]any
	PropagatePluginFailure bool
}

// PaymentQueryOptions selects the optional parts of a payment read
type PaymentQueryOptions struct {
	WithPluginInfo bool
	WithAttempts   bool
}

// PaymentView is a payment with the optional parts requested by the caller
type PaymentView struct {
	Payment  *entity.Payment
	Amounts  entity.PaymentAmounts
	Attempts []*entity.PaymentAttempt
}

// PaymentProcessor runs payment transactions directly against the payment plugin
type PaymentProcessor interface {
	CreateAuthorization(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)
	CreateCapture(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)
	CreatePurchase(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)
	CreateVoid(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)
	CreateRefund(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)
	CreateCredit(ctx context.Context, req PaymentRequest, cc entity.CallContext) (*entity.Payment, error)

	// NotifyPendingTransactionOfStateChanged resolves a PENDING transaction once the gateway settles it
	NotifyPendingTransactionOfStateChanged(ctx context.Context, accountID, transactionID uuid.UUID, success bool, cc entity.CallContext) (*entity.Payment, error)

	GetPayment(ctx context.Context, id uuid.UUID, opts PaymentQueryOptions) (*PaymentView, error)
	GetPaymentByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64, opts PaymentQueryOptions) (*PaymentView, error)
	GetAccountPayments(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error)
}

// PaymentMethodUseCase manages the payment methods of accounts
type PaymentMethodUseCase interface {
	// AddPaymentMethod registers a payment method; the first method of an account becomes its default
	AddPaymentMethod(ctx context.Context, accountID uuid.UUID, externalKey, pluginName string, properties map[string]any, setDefault bool) (*entity.PaymentMethod, error)

	// DeletePaymentMethod soft-deletes a payment method; deleting the default requires deleteDefault
	DeletePaymentMethod(ctx context.Context, accountID, paymentMethodID uuid.UUID, deleteDefault bool) error

	GetAccountPaymentMethods(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error)
}
