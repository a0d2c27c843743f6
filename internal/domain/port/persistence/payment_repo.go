package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentRepository is the durable store for payments and their transactions
type PaymentRepository interface {
	// CreatePaymentWithFirstTransaction inserts a payment and its first transaction as one unit
	// The store assigns the payment number
	//
	// Possible errors:
	// - ErrDuplicatePayment: If the payment external key is already used in the tenant
	// - ErrDuplicateTransaction: If a live transaction already uses the transaction external key
	// - ErrDatabaseConnection: If database connection fails
	CreatePaymentWithFirstTransaction(ctx context.Context, payment *entity.Payment, transaction *entity.PaymentTransaction) (*entity.Payment, error)

	// AppendTransaction adds a transaction to an existing payment as one unit
	// The effective date is clamped so it is never before the latest existing transaction
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	// - ErrDuplicateTransaction: If a live transaction already uses the transaction external key
	// - ErrDatabaseConnection: If database connection fails
	AppendTransaction(ctx context.Context, paymentID uuid.UUID, transaction *entity.PaymentTransaction) (*entity.PaymentTransaction, error)

	// UpdatePaymentAndTransactionOnCompletion records a gateway outcome and the new payment state as one unit
	// An empty lastSuccessStateName leaves the stored value unchanged
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdatePaymentAndTransactionOnCompletion(ctx context.Context, paymentID uuid.UUID, stateName, lastSuccessStateName string, transaction *entity.PaymentTransaction) error

	// GetPayment retrieves a payment with its transactions sorted by effective date
	//
	// Possible errors:
	// - ErrPaymentNotFound: If the payment doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// GetPaymentByExternalKey retrieves a payment by its external key within a tenant
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment uses the key
	// - ErrDatabaseConnection: If database connection fails
	GetPaymentByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Payment, error)

	// GetAccountPayments lists the payments of an account ordered by payment number
	GetAccountPayments(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error)

	// GetTransaction retrieves a single transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error)

	// GetTransactionsByExternalKey lists every transaction recorded under an external key in creation order
	// Used for idempotency checks and retry bookkeeping
	GetTransactionsByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentTransaction, error)

	// GetTransactionsByStatus lists transactions in a status created before a cutoff, oldest first
	// Used by the sweep that resolves stale UNKNOWN transactions
	GetTransactionsByStatus(ctx context.Context, status entity.TransactionStatus, createdBefore time.Time, limit int) ([]*entity.PaymentTransaction, error)
}
