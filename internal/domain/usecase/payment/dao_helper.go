package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
)

// daoHelper wraps the payment store with the lookups the automaton needs
type daoHelper struct {
	repo   persistence.PaymentRepository
	logger coreport.Logger
}

func newDaoHelper(repo persistence.PaymentRepository, logger coreport.Logger) *daoHelper {
	return &daoHelper{repo: repo, logger: logger}
}

// getPayment loads a payment with its transactions in display order
func (h *daoHelper) getPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := h.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	entity.SortTransactions(payment.Transactions)
	return payment, nil
}

// findPaymentByExternalKey returns nil when no payment uses the key
func (h *daoHelper) findPaymentByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Payment, error) {
	payment, err := h.repo.GetPaymentByExternalKey(ctx, externalKey, tenantRecordID)
	if errors.Is(err, errs.ErrPaymentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment by external key: %w", err)
	}
	entity.SortTransactions(payment.Transactions)
	return payment, nil
}

// checkIdempotency returns the transactions already recorded under a transaction external key
func (h *daoHelper) checkIdempotency(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentTransaction, error) {
	txs, err := h.repo.GetTransactionsByExternalKey(ctx, externalKey, tenantRecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction external key: %w", err)
	}
	return txs, nil
}

func (h *daoHelper) createPaymentWithFirstTransaction(ctx context.Context, payment *entity.Payment, tx *entity.PaymentTransaction) (*entity.Payment, error) {
	created, err := h.repo.CreatePaymentWithFirstTransaction(ctx, payment, tx)
	if err != nil {
		h.logger.Error("Failed to create payment", map[string]any{
			"payment_external_key":     payment.ExternalKey,
			"transaction_external_key": tx.ExternalKey,
			"error":                    err.Error(),
		})
		return nil, err
	}

	h.logger.Debug("Payment created with write-ahead transaction", map[string]any{
		"payment_id":     created.ID.String(),
		"payment_number": created.PaymentNumber,
		"transaction_id": tx.ID.String(),
	})
	return created, nil
}

func (h *daoHelper) appendTransaction(ctx context.Context, paymentID uuid.UUID, tx *entity.PaymentTransaction) (*entity.PaymentTransaction, error) {
	appended, err := h.repo.AppendTransaction(ctx, paymentID, tx)
	if err != nil {
		h.logger.Error("Failed to append transaction", map[string]any{
			"payment_id":               paymentID.String(),
			"transaction_external_key": tx.ExternalKey,
			"error":                    err.Error(),
		})
		return nil, err
	}

	h.logger.Debug("Write-ahead transaction appended", map[string]any{
		"payment_id":     paymentID.String(),
		"transaction_id": appended.ID.String(),
		"effective_date": appended.EffectiveDate,
	})
	return appended, nil
}

func (h *daoHelper) updateOnCompletion(ctx context.Context, paymentID uuid.UUID, stateName, lastSuccessStateName string, tx *entity.PaymentTransaction) error {
	if err := h.repo.UpdatePaymentAndTransactionOnCompletion(ctx, paymentID, stateName, lastSuccessStateName, tx); err != nil {
		h.logger.Error("Failed to record transaction completion", map[string]any{
			"payment_id":     paymentID.String(),
			"transaction_id": tx.ID.String(),
			"state":          stateName,
			"error":          err.Error(),
		})
		return err
	}
	return nil
}
