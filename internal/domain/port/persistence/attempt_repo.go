package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentAttemptRepository stores the resumable records of retry-driven payments
type PaymentAttemptRepository interface {
	// CreateIfAbsent inserts the attempt unless one already exists for its transaction external key
	// Returns the stored attempt and whether it was created by this call
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	CreateIfAbsent(ctx context.Context, attempt *entity.PaymentAttempt) (*entity.PaymentAttempt, bool, error)

	// GetByID retrieves an attempt
	//
	// Possible errors:
	// - ErrAttemptNotFound: If the attempt doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentAttempt, error)

	// GetByTransactionExternalKey retrieves the attempt recorded for a transaction external key
	//
	// Possible errors:
	// - ErrAttemptNotFound: If no attempt uses the key
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.PaymentAttempt, error)

	// GetByPaymentExternalKey lists the attempts recorded for a payment external key in creation order
	GetByPaymentExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentAttempt, error)

	// Update persists the state name, last transaction id and amount of the attempt
	//
	// Possible errors:
	// - ErrAttemptNotFound: If the attempt doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, attempt *entity.PaymentAttempt) error

	// CompareAndSetState moves the attempt from one state to another only if it is currently in the first
	// Returns false when the attempt was not in the expected state
	CompareAndSetState(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
}
