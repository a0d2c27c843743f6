package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// PaymentRepository implements persistence.PaymentRepository using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.PaymentRepository = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// CreatePaymentWithFirstTransaction inserts a payment and its first transaction in one database transaction
func (r *PaymentRepository) CreatePaymentWithFirstTransaction(
	ctx context.Context,
	payment *entity.Payment,
	transaction *entity.PaymentTransaction,
) (*entity.Payment, error) {
	r.logger.Debug("Creating payment", map[string]any{
		"payment_id":   payment.ID,
		"external_key": payment.ExternalKey,
		"account_id":   payment.AccountID,
	})

	paymentModel := paymentToModel(payment)
	txModel := transactionToModel(transaction)
	txModel.PaymentID = payment.ID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&paymentModel).Error; err != nil {
			return err
		}
		return tx.Create(&txModel).Error
	})
	if err != nil {
		return nil, r.mapWriteError("create payment", transaction.ExternalKey, err)
	}

	r.logger.Info("Payment created", map[string]any{
		"payment_id":     paymentModel.ID,
		"payment_number": paymentModel.PaymentNumber,
	})
	return r.GetPayment(ctx, paymentModel.ID)
}

// AppendTransaction adds a transaction to an existing payment
// The payment row is locked so concurrent appends see each other's effective dates
func (r *PaymentRepository) AppendTransaction(
	ctx context.Context,
	paymentID uuid.UUID,
	transaction *entity.PaymentTransaction,
) (*entity.PaymentTransaction, error) {
	txModel := transactionToModel(transaction)
	txModel.PaymentID = paymentID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", paymentID).
			First(&payment).Error; err != nil {
			return err
		}

		var latest *time.Time
		if err := tx.Model(&model.PaymentTransaction{}).
			Where("payment_id = ?", paymentID).
			Select("MAX(effective_date)").
			Scan(&latest).Error; err != nil {
			return err
		}
		if latest != nil && latest.After(txModel.EffectiveDate) {
			txModel.EffectiveDate = *latest
		}

		return tx.Create(&txModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		return nil, r.mapWriteError("append transaction", transaction.ExternalKey, err)
	}

	return transactionToEntity(&txModel), nil
}

// UpdatePaymentAndTransactionOnCompletion records a gateway outcome and the new payment state
func (r *PaymentRepository) UpdatePaymentAndTransactionOnCompletion(
	ctx context.Context,
	paymentID uuid.UUID,
	stateName, lastSuccessStateName string,
	transaction *entity.PaymentTransaction,
) error {
	paymentUpdates := map[string]any{
		"state_name": stateName,
		"updated_at": transaction.UpdatedDate,
	}
	if lastSuccessStateName != "" {
		paymentUpdates["last_success_state_name"] = lastSuccessStateName
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Payment{}).Where("id = ?", paymentID).Updates(paymentUpdates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrPaymentNotFound
		}

		result = tx.Model(&model.PaymentTransaction{}).
			Where("id = ? AND payment_id = ?", transaction.ID, paymentID).
			Updates(map[string]any{
				"status":              string(transaction.Status),
				"processed_amount":    transaction.ProcessedAmount,
				"processed_currency":  transaction.ProcessedCurrency,
				"gateway_error_code":  transaction.GatewayErrorCode,
				"gateway_error_msg":   transaction.GatewayErrorMsg,
				"first_reference_id":  transaction.FirstReferenceID,
				"second_reference_id": transaction.SecondReferenceID,
				"updated_at":          transaction.UpdatedDate,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrTransactionNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrPaymentNotFound), errors.Is(err, errs.ErrTransactionNotFound):
		return err
	default:
		r.logger.Error("Failed to complete payment transaction", map[string]any{
			"payment_id":     paymentID,
			"transaction_id": transaction.ID,
			"error":          err.Error(),
		})
		return dbError("complete transaction", err)
	}
}

// GetPayment retrieves a payment with its transactions sorted by effective date
func (r *PaymentRepository) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.Payment
	err := r.withTransactions(ctx).Where("id = ?", id).First(&paymentModel).Error
	if err != nil {
		return nil, r.mapReadError("get payment", err, errs.ErrPaymentNotFound)
	}
	return paymentToEntity(&paymentModel), nil
}

// GetPaymentByExternalKey retrieves a payment by its external key within a tenant
func (r *PaymentRepository) GetPaymentByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Payment, error) {
	var paymentModel model.Payment
	err := r.withTransactions(ctx).
		Where("external_key = ? AND tenant_record_id = ?", externalKey, tenantRecordID).
		First(&paymentModel).Error
	if err != nil {
		return nil, r.mapReadError("get payment by external key", err, errs.ErrPaymentNotFound)
	}
	return paymentToEntity(&paymentModel), nil
}

// GetAccountPayments lists the payments of an account ordered by payment number
func (r *PaymentRepository) GetAccountPayments(ctx context.Context, accountID uuid.UUID) ([]*entity.Payment, error) {
	var models []model.Payment
	err := r.withTransactions(ctx).
		Where("account_id = ?", accountID).
		Order("payment_number").
		Find(&models).Error
	if err != nil {
		return nil, dbError("get account payments", err)
	}

	out := make([]*entity.Payment, 0, len(models))
	for i := range models {
		out = append(out, paymentToEntity(&models[i]))
	}
	return out, nil
}

// GetTransaction retrieves a single transaction
func (r *PaymentRepository) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error) {
	var txModel model.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&txModel).Error; err != nil {
		return nil, r.mapReadError("get transaction", err, errs.ErrTransactionNotFound)
	}
	return transactionToEntity(&txModel), nil
}

// GetTransactionsByExternalKey lists every transaction recorded under an external key in creation order
func (r *PaymentRepository) GetTransactionsByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentTransaction, error) {
	var models []model.PaymentTransaction
	err := r.db.WithContext(ctx).
		Where("external_key = ? AND tenant_record_id = ?", externalKey, tenantRecordID).
		Order("seq").
		Find(&models).Error
	if err != nil {
		return nil, dbError("get transactions by external key", err)
	}
	return transactionsToEntities(models), nil
}

// GetTransactionsByStatus lists transactions in a status created before a cutoff, oldest first
func (r *PaymentRepository) GetTransactionsByStatus(
	ctx context.Context,
	status entity.TransactionStatus,
	createdBefore time.Time,
	limit int,
) ([]*entity.PaymentTransaction, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(status), createdBefore).
		Order("created_at, seq")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []model.PaymentTransaction
	if err := query.Find(&models).Error; err != nil {
		return nil, dbError("get transactions by status", err)
	}
	return transactionsToEntities(models), nil
}

func (r *PaymentRepository) withTransactions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Transactions", func(db *gorm.DB) *gorm.DB {
		return db.Order("effective_date, seq")
	})
}

// mapWriteError turns unique index violations into the duplicate errors of the domain
func (r *PaymentRepository) mapWriteError(operation, transactionExternalKey string, err error) error {
	switch {
	case r.errorClassifier.IsDuplicateKeyOn(err, indexPaymentExternalKey):
		r.logger.Warn("Duplicate payment external key", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %s", errs.ErrDuplicatePayment, operation)
	case r.errorClassifier.IsDuplicateKeyOn(err, indexLiveTransactionKey):
		r.logger.Warn("Duplicate live transaction external key", map[string]any{
			"transaction_external_key": transactionExternalKey,
		})
		return fmt.Errorf("%w: %s", errs.ErrDuplicateTransaction, transactionExternalKey)
	}

	r.logger.Error("Failed to write payment", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return dbError(operation, err)
}

func (r *PaymentRepository) mapReadError(operation string, err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	r.logger.Error("Failed to read payment", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return dbError(operation, err)
}

func paymentToModel(p *entity.Payment) model.Payment {
	return model.Payment{
		ID:                   p.ID,
		AccountID:            p.AccountID,
		PaymentMethodID:      p.PaymentMethodID,
		ExternalKey:          p.ExternalKey,
		StateName:            p.StateName,
		LastSuccessStateName: p.LastSuccessStateName,
		AccountRecordID:      p.AccountRecordID,
		TenantRecordID:       p.TenantRecordID,
		CreatedAt:            p.CreatedDate,
		UpdatedAt:            p.UpdatedDate,
	}
}

func paymentToEntity(m *model.Payment) *entity.Payment {
	p := &entity.Payment{
		ID:                   m.ID,
		AccountID:            m.AccountID,
		PaymentMethodID:      m.PaymentMethodID,
		ExternalKey:          m.ExternalKey,
		PaymentNumber:        m.PaymentNumber,
		StateName:            m.StateName,
		LastSuccessStateName: m.LastSuccessStateName,
		CreatedDate:          m.CreatedAt,
		UpdatedDate:          m.UpdatedAt,
		AccountRecordID:      m.AccountRecordID,
		TenantRecordID:       m.TenantRecordID,
	}
	p.Transactions = transactionsToEntities(m.Transactions)
	entity.SortTransactions(p.Transactions)
	return p
}

func transactionToModel(t *entity.PaymentTransaction) model.PaymentTransaction {
	return model.PaymentTransaction{
		ID:                t.ID,
		PaymentID:         t.PaymentID,
		ExternalKey:       t.ExternalKey,
		TransactionType:   string(t.TransactionType),
		EffectiveDate:     t.EffectiveDate,
		Status:            string(t.Status),
		Amount:            t.Amount,
		Currency:          t.Currency,
		ProcessedAmount:   t.ProcessedAmount,
		ProcessedCurrency: t.ProcessedCurrency,
		GatewayErrorCode:  t.GatewayErrorCode,
		GatewayErrorMsg:   t.GatewayErrorMsg,
		FirstReferenceID:  t.FirstReferenceID,
		SecondReferenceID: t.SecondReferenceID,
		AttemptID:         t.AttemptID,
		AccountRecordID:   t.AccountRecordID,
		TenantRecordID:    t.TenantRecordID,
		CreatedAt:         t.CreatedDate,
		UpdatedAt:         t.UpdatedDate,
	}
}

func transactionToEntity(m *model.PaymentTransaction) *entity.PaymentTransaction {
	return &entity.PaymentTransaction{
		ID:                m.ID,
		PaymentID:         m.PaymentID,
		ExternalKey:       m.ExternalKey,
		TransactionType:   entity.TransactionType(m.TransactionType),
		EffectiveDate:     m.EffectiveDate,
		Status:            entity.TransactionStatus(m.Status),
		Amount:            m.Amount,
		Currency:          m.Currency,
		ProcessedAmount:   m.ProcessedAmount,
		ProcessedCurrency: m.ProcessedCurrency,
		GatewayErrorCode:  m.GatewayErrorCode,
		GatewayErrorMsg:   m.GatewayErrorMsg,
		FirstReferenceID:  m.FirstReferenceID,
		SecondReferenceID: m.SecondReferenceID,
		AttemptID:         m.AttemptID,
		CreatedDate:       m.CreatedAt,
		UpdatedDate:       m.UpdatedAt,
		AccountRecordID:   m.AccountRecordID,
		TenantRecordID:    m.TenantRecordID,
	}
}

func transactionsToEntities(models []model.PaymentTransaction) []*entity.PaymentTransaction {
	out := make([]*entity.PaymentTransaction, 0, len(models))
	for i := range models {
		out = append(out, transactionToEntity(&models[i]))
	}
	return out
}
