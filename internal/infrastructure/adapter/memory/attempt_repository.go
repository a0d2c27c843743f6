package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// AttemptRepository keeps payment attempts in memory
type AttemptRepository struct {
	mu       sync.RWMutex
	attempts map[uuid.UUID]*entity.PaymentAttempt
}

var _ persistence.PaymentAttemptRepository = (*AttemptRepository)(nil)

// NewAttemptRepository creates an empty in-memory attempt store
func NewAttemptRepository() *AttemptRepository {
	return &AttemptRepository{attempts: make(map[uuid.UUID]*entity.PaymentAttempt)}
}

// CreateIfAbsent inserts the attempt unless one exists for its transaction external key
func (r *AttemptRepository) CreateIfAbsent(ctx context.Context, attempt *entity.PaymentAttempt) (*entity.PaymentAttempt, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.attempts {
		if a.TransactionExternalKey == attempt.TransactionExternalKey && a.TenantRecordID == attempt.TenantRecordID {
			return copyAttempt(a), false, nil
		}
	}
	stored := copyAttempt(attempt)
	r.attempts[stored.ID] = stored
	return copyAttempt(stored), true, nil
}

// GetByID retrieves an attempt
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.attempts[id]
	if !ok {
		return nil, errs.ErrAttemptNotFound
	}
	return copyAttempt(a), nil
}

// GetByTransactionExternalKey retrieves the attempt of a transaction external key
func (r *AttemptRepository) GetByTransactionExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.PaymentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.attempts {
		if a.TransactionExternalKey == externalKey && a.TenantRecordID == tenantRecordID {
			return copyAttempt(a), nil
		}
	}
	return nil, errs.ErrAttemptNotFound
}

// GetByPaymentExternalKey lists the attempts of a payment external key in creation order
func (r *AttemptRepository) GetByPaymentExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.PaymentAttempt
	for _, a := range r.attempts {
		if a.PaymentExternalKey == externalKey && a.TenantRecordID == tenantRecordID {
			out = append(out, copyAttempt(a))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedDate.Before(out[j].CreatedDate) })
	return out, nil
}

// Update persists the mutable fields of an attempt
func (r *AttemptRepository) Update(ctx context.Context, attempt *entity.PaymentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.attempts[attempt.ID]
	if !ok {
		return errs.ErrAttemptNotFound
	}
	stored.StateName = attempt.StateName
	stored.Amount = attempt.Amount
	stored.UpdatedDate = attempt.UpdatedDate
	if attempt.TransactionID != nil {
		id := *attempt.TransactionID
		stored.TransactionID = &id
	}
	return nil
}

// CompareAndSetState moves the attempt between states if it is in the expected one
func (r *AttemptRepository) CompareAndSetState(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.attempts[id]
	if !ok || stored.StateName != from {
		return false, nil
	}
	stored.StateName = to
	return true, nil
}

func copyAttempt(a *entity.PaymentAttempt) *entity.PaymentAttempt {
	c := *a
	c.PluginNames = append([]string(nil), a.PluginNames...)
	if a.TransactionID != nil {
		id := *a.TransactionID
		c.TransactionID = &id
	}
	return &c
}
