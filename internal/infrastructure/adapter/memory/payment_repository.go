package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// PaymentRepository keeps payments in memory with the constraints of the SQL schema
type PaymentRepository struct {
	mu            sync.RWMutex
	payments      map[uuid.UUID]*entity.Payment
	transactions  map[uuid.UUID]*entity.PaymentTransaction
	txOrder       []uuid.UUID
	paymentNumber int64
}

var _ persistence.PaymentRepository = (*PaymentRepository)(nil)

// NewPaymentRepository creates an empty in-memory payment store
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments:     make(map[uuid.UUID]*entity.Payment),
		transactions: make(map[uuid.UUID]*entity.PaymentTransaction),
	}
}

// CreatePaymentWithFirstTransaction inserts a payment and its first transaction
func (r *PaymentRepository) CreatePaymentWithFirstTransaction(
	ctx context.Context,
	payment *entity.Payment,
	transaction *entity.PaymentTransaction,
) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.payments {
		if p.ExternalKey == payment.ExternalKey && p.TenantRecordID == payment.TenantRecordID {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicatePayment, payment.ExternalKey)
		}
	}
	if err := r.checkLiveKeyLocked(transaction); err != nil {
		return nil, err
	}

	r.paymentNumber++
	stored := copyPayment(payment)
	stored.PaymentNumber = r.paymentNumber
	stored.Transactions = nil
	r.payments[stored.ID] = stored

	tx := copyTransaction(transaction)
	tx.PaymentID = stored.ID
	r.insertTransactionLocked(tx)

	return r.loadLocked(stored.ID), nil
}

// AppendTransaction adds a transaction to an existing payment
func (r *PaymentRepository) AppendTransaction(
	ctx context.Context,
	paymentID uuid.UUID,
	transaction *entity.PaymentTransaction,
) (*entity.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[paymentID]; !ok {
		return nil, errs.ErrPaymentNotFound
	}
	if err := r.checkLiveKeyLocked(transaction); err != nil {
		return nil, err
	}

	tx := copyTransaction(transaction)
	tx.PaymentID = paymentID
	for _, existing := range r.transactionsOfLocked(paymentID) {
		if existing.EffectiveDate.After(tx.EffectiveDate) {
			tx.EffectiveDate = existing.EffectiveDate
		}
	}
	r.insertTransactionLocked(tx)

	return copyTransaction(tx), nil
}

// UpdatePaymentAndTransactionOnCompletion records the outcome of a transaction
func (r *PaymentRepository) UpdatePaymentAndTransactionOnCompletion(
	ctx context.Context,
	paymentID uuid.UUID,
	stateName, lastSuccessStateName string,
	transaction *entity.PaymentTransaction,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok {
		return errs.ErrPaymentNotFound
	}
	stored, ok := r.transactions[transaction.ID]
	if !ok || stored.PaymentID != paymentID {
		return errs.ErrTransactionNotFound
	}

	stored.Status = transaction.Status
	stored.ProcessedAmount = transaction.ProcessedAmount
	stored.ProcessedCurrency = transaction.ProcessedCurrency
	stored.GatewayErrorCode = transaction.GatewayErrorCode
	stored.GatewayErrorMsg = transaction.GatewayErrorMsg
	stored.FirstReferenceID = transaction.FirstReferenceID
	stored.SecondReferenceID = transaction.SecondReferenceID
	stored.UpdatedDate = transaction.UpdatedDate

	payment.StateName = stateName
	if lastSuccessStateName != "" {
		payment.LastSuccessStateName = lastSuccessStateName
	}
	payment.UpdatedDate = transaction.UpdatedDate
	return nil
}

// GetPayment retrieves a payment with its transactions
func (r *PaymentRepository) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.payments[id]; !ok {
		return nil, errs.ErrPaymentNotFound
	}
	return r.loadLocked(id), nil
}

// GetPaymentByExternalKey retrieves a payment by external key
func (r *PaymentRepository) GetPaymentByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, p := range r.payments {
		if p.ExternalKey == externalKey && p.TenantRecordID == tenantRecordID {
			return r.loadLocked(id), nil
		}
	}
	return nil, errs.ErrPaymentNotFound
}

// GetAccountPayments lists the payments of an account by payment number
func (r *PaymentRepository) GetAccountPayments(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Payment
	for id, p := range r.payments {
		if p.AccountID == accountID {
			out = append(out, r.loadLocked(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentNumber < out[j].PaymentNumber })
	return out, nil
}

// GetTransaction retrieves one transaction
func (r *PaymentRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.transactions[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return copyTransaction(tx), nil
}

// GetTransactionsByExternalKey lists the transactions recorded under an external key
func (r *PaymentRepository) GetTransactionsByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.PaymentTransaction
	for _, id := range r.txOrder {
		tx := r.transactions[id]
		if tx.ExternalKey == externalKey && tx.TenantRecordID == tenantRecordID {
			out = append(out, copyTransaction(tx))
		}
	}
	return out, nil
}

// GetTransactionsByStatus lists transactions in a status created before a cutoff
func (r *PaymentRepository) GetTransactionsByStatus(
	ctx context.Context,
	status entity.TransactionStatus,
	createdBefore time.Time,
	limit int,
) ([]*entity.PaymentTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.PaymentTransaction
	for _, id := range r.txOrder {
		tx := r.transactions[id]
		if tx.Status == status && tx.CreatedDate.Before(createdBefore) {
			out = append(out, copyTransaction(tx))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedDate.Before(out[j].CreatedDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// checkLiveKeyLocked mirrors the partial unique index on live transaction external keys
func (r *PaymentRepository) checkLiveKeyLocked(transaction *entity.PaymentTransaction) error {
	for _, tx := range r.transactions {
		if tx.ExternalKey == transaction.ExternalKey &&
			tx.TenantRecordID == transaction.TenantRecordID &&
			tx.Status.IsLive() {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateTransaction, transaction.ExternalKey)
		}
	}
	return nil
}

func (r *PaymentRepository) insertTransactionLocked(tx *entity.PaymentTransaction) {
	r.transactions[tx.ID] = tx
	r.txOrder = append(r.txOrder, tx.ID)
}

func (r *PaymentRepository) transactionsOfLocked(paymentID uuid.UUID) []*entity.PaymentTransaction {
	var out []*entity.PaymentTransaction
	for _, id := range r.txOrder {
		if tx := r.transactions[id]; tx.PaymentID == paymentID {
			out = append(out, tx)
		}
	}
	return out
}

func (r *PaymentRepository) loadLocked(id uuid.UUID) *entity.Payment {
	payment := copyPayment(r.payments[id])
	for _, tx := range r.transactionsOfLocked(id) {
		payment.Transactions = append(payment.Transactions, copyTransaction(tx))
	}
	entity.SortTransactions(payment.Transactions)
	return payment
}

func copyPayment(p *entity.Payment) *entity.Payment {
	c := *p
	c.Transactions = nil
	return &c
}

func copyTransaction(tx *entity.PaymentTransaction) *entity.PaymentTransaction {
	c := *tx
	if tx.AttemptID != nil {
		id := *tx.AttemptID
		c.AttemptID = &id
	}
	c.PaymentInfoPlugin = nil
	return &c
}
