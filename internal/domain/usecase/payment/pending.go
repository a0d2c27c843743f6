package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
)

// PendingTransactionResolver settles PENDING transactions reported by the gateway out of band
type PendingTransactionResolver struct {
	dao          *daoHelper
	locker       *lock.Locker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPendingTransactionResolver creates a new PendingTransactionResolver
func NewPendingTransactionResolver(
	payments persistence.PaymentRepository,
	locker *lock.Locker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PendingTransactionResolver {
	return &PendingTransactionResolver{
		dao:          newDaoHelper(payments, logger),
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Resolve moves a PENDING transaction to SUCCESS or PAYMENT_FAILURE
//
// The payment state follows only when the transaction is the latest one of the payment.
//
// Possible errors:
// - ErrTransactionNotFound: If the transaction doesn't exist
// - ErrPaymentNotFound: If the payment doesn't belong to the account
// - ErrTransactionNotPending: If the transaction is not PENDING
func (r *PendingTransactionResolver) Resolve(ctx context.Context, accountID, transactionID uuid.UUID, success bool) (*entity.Payment, error) {
	var payment *entity.Payment
	err := r.locker.WithAccountLock(ctx, accountID, func(ctx context.Context) error {
		var resolveErr error
		payment, resolveErr = r.resolve(ctx, accountID, transactionID, success)
		return resolveErr
	})
	return payment, err
}

func (r *PendingTransactionResolver) resolve(ctx context.Context, accountID, transactionID uuid.UUID, success bool) (*entity.Payment, error) {
	tx, err := r.dao.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	payment, err := r.dao.getPayment(ctx, tx.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.AccountID != accountID {
		return nil, fmt.Errorf("%w: transaction %s does not belong to account %s",
			errs.ErrPaymentNotFound, transactionID, accountID)
	}
	if tx.Status != entity.TransactionStatusPending {
		return nil, fmt.Errorf("%w: transaction %s is %s", errs.ErrTransactionNotPending, transactionID, tx.Status)
	}

	now := r.timeProvider.Now()
	outcome := statemachine.OutcomeFailure
	status := entity.PaymentStatusPaymentFailure
	if success {
		outcome = statemachine.OutcomeSuccess
		status = entity.PaymentStatusSuccess
	}

	tx.Status = status.ToTransactionStatus()
	tx.UpdatedDate = now
	if success {
		tx.ProcessedAmount = tx.Amount
		tx.ProcessedCurrency = tx.Currency
	}

	stateName := payment.StateName
	lastSuccessState := ""
	if last := payment.LastTransaction(); last != nil && last.ID == tx.ID {
		stateName = StateNameFor(tx.TransactionType, outcome)
		if success {
			lastSuccessState = stateName
		}
	}

	if err := r.dao.updateOnCompletion(ctx, payment.ID, stateName, lastSuccessState, tx); err != nil {
		return nil, err
	}

	r.logger.Info("Pending transaction resolved", map[string]any{
		"payment_id":     payment.ID.String(),
		"transaction_id": tx.ID.String(),
		"status":         string(tx.Status),
		"state":          stateName,
	})

	return r.dao.getPayment(ctx, payment.ID)
}
