package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// PaymentMethodRepository keeps payment methods in memory
type PaymentMethodRepository struct {
	mu      sync.RWMutex
	methods map[uuid.UUID]*entity.PaymentMethod
}

var _ persistence.PaymentMethodRepository = (*PaymentMethodRepository)(nil)

// NewPaymentMethodRepository creates an empty in-memory payment method store
func NewPaymentMethodRepository() *PaymentMethodRepository {
	return &PaymentMethodRepository{methods: make(map[uuid.UUID]*entity.PaymentMethod)}
}

// Create saves a payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.methods {
		if m.AccountID == method.AccountID && m.ExternalKey == method.ExternalKey && m.IsActive {
			return fmt.Errorf("%w: external key %s already used", errs.ErrInvalidPaymentMethod, method.ExternalKey)
		}
	}
	c := *method
	r.methods[c.ID] = &c
	return nil
}

// GetByID retrieves a payment method
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.methods[id]
	if !ok || (!m.IsActive && !includeInactive) {
		return nil, errs.ErrPaymentMethodNotFound
	}
	c := *m
	return &c, nil
}

// GetByAccount lists the active payment methods of an account
func (r *PaymentMethodRepository) GetByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		if m.AccountID == accountID && m.IsActive {
			c := *m
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedDate.Before(out[j].CreatedDate) })
	return out, nil
}

// Deactivate soft-deletes a payment method
func (r *PaymentMethodRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.methods[id]
	if !ok {
		return errs.ErrPaymentMethodNotFound
	}
	m.IsActive = false
	return nil
}
