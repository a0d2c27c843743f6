package external

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// AccountLookup gives read access to accounts owned by another service
type AccountLookup interface {
	// GetAccountByID retrieves an account
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	GetAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// GetAccountByRecordID retrieves an account from the record id stored on queued notifications
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	GetAccountByRecordID(ctx context.Context, recordID int64) (*entity.Account, error)

	// SetDefaultPaymentMethod points the account at a payment method, nil clears it
	SetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID, paymentMethodID *uuid.UUID) error
}

// TagLookup reads the control tags of an account
type TagLookup interface {
	// IsAutoPayOff reports whether automatic payments are disabled on the account
	IsAutoPayOff(ctx context.Context, accountID uuid.UUID) (bool, error)
}

// InvoiceLookup gives access to invoice balances
type InvoiceLookup interface {
	// ConsumeExistingCredit applies any account credit to the unpaid invoices of the account
	ConsumeExistingCredit(ctx context.Context, accountID uuid.UUID) error

	// GetInvoiceBalance returns the amount still owed on an invoice
	//
	// Possible errors:
	// - ErrInvoiceNotFound: If the invoice doesn't exist
	GetInvoiceBalance(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
}
