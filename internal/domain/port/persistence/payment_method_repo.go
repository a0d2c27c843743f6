package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentMethodRepository stores the payment methods of accounts
type PaymentMethodRepository interface {
	// Create saves a new payment method
	//
	// Possible errors:
	// - ErrInvalidPaymentMethod: If the external key is already used by the account
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, method *entity.PaymentMethod) error

	// GetByID retrieves a payment method, optionally including soft-deleted ones
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound: If the payment method doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.PaymentMethod, error)

	// GetByAccount lists the active payment methods of an account
	GetByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error)

	// Deactivate soft-deletes a payment method
	//
	// Possible errors:
	// - ErrPaymentMethodNotFound: If the payment method doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Deactivate(ctx context.Context, id uuid.UUID) error
}
