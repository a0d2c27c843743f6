package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
)

// AccountStore serves accounts, control tags and invoice balances from memory
type AccountStore struct {
	mu         sync.RWMutex
	accounts   map[uuid.UUID]*entity.Account
	autoPayOff map[uuid.UUID]bool
	invoices   map[uuid.UUID]decimal.Decimal
	credits    map[uuid.UUID]int
	nextRecord int64
}

var (
	_ external.AccountLookup = (*AccountStore)(nil)
	_ external.TagLookup     = (*AccountStore)(nil)
	_ external.InvoiceLookup = (*AccountStore)(nil)
)

// NewAccountStore creates an empty account store
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts:   make(map[uuid.UUID]*entity.Account),
		autoPayOff: make(map[uuid.UUID]bool),
		invoices:   make(map[uuid.UUID]decimal.Decimal),
		credits:    make(map[uuid.UUID]int),
	}
}

// AddAccount stores an account, assigning a record id when none is set
func (s *AccountStore) AddAccount(account *entity.Account) *entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *account
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.RecordID == 0 {
		s.nextRecord++
		c.RecordID = s.nextRecord
	}
	s.accounts[c.ID] = &c
	out := c
	return &out
}

// CreateAccount stores a new account
func (s *AccountStore) CreateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	c := *account
	c.Currency = entity.NormalizeCurrency(c.Currency)
	return s.AddAccount(&c), nil
}

// GetAccountByExternalKey retrieves an account by external key within a tenant
func (s *AccountStore) GetAccountByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.ExternalKey == externalKey && a.TenantRecordID == tenantRecordID {
			c := *a
			return &c, nil
		}
	}
	return nil, errs.ErrAccountNotFound
}

// SetAutoPayOff sets the AUTO_PAY_OFF tag of an account
func (s *AccountStore) SetAutoPayOff(accountID uuid.UUID, off bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoPayOff[accountID] = off
}

// SetInvoiceBalance sets the balance of an invoice
func (s *AccountStore) SetInvoiceBalance(invoiceID uuid.UUID, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[invoiceID] = balance
}

// CreditConsumptions returns how many times credit was applied for an account
func (s *AccountStore) CreditConsumptions(accountID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credits[accountID]
}

// GetAccountByID retrieves an account
func (s *AccountStore) GetAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[id]
	if !ok {
		return nil, errs.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

// GetAccountByRecordID retrieves an account by record id
func (s *AccountStore) GetAccountByRecordID(ctx context.Context, recordID int64) (*entity.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.RecordID == recordID {
			c := *a
			return &c, nil
		}
	}
	return nil, errs.ErrAccountNotFound
}

// SetDefaultPaymentMethod sets or clears the default payment method
func (s *AccountStore) SetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID, paymentMethodID *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[accountID]
	if !ok {
		return errs.ErrAccountNotFound
	}
	if paymentMethodID == nil {
		a.PaymentMethodID = nil
		return nil
	}
	id := *paymentMethodID
	a.PaymentMethodID = &id
	return nil
}

// IsAutoPayOff reports the AUTO_PAY_OFF tag
func (s *AccountStore) IsAutoPayOff(ctx context.Context, accountID uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoPayOff[accountID], nil
}

// ConsumeExistingCredit records that credit was applied
func (s *AccountStore) ConsumeExistingCredit(ctx context.Context, accountID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits[accountID]++
	return nil
}

// GetInvoiceBalance returns the balance of an invoice
func (s *AccountStore) GetInvoiceBalance(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance, ok := s.invoices[invoiceID]
	if !ok {
		return decimal.Zero, errs.ErrInvoiceNotFound
	}
	return balance, nil
}
