package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// AttemptRepository implements persistence.PaymentAttemptRepository using GORM
type AttemptRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

var _ persistence.PaymentAttemptRepository = (*AttemptRepository)(nil)

// NewAttemptRepository creates a new AttemptRepository instance
func NewAttemptRepository(db *gorm.DB, logger coreport.Logger) *AttemptRepository {
	return &AttemptRepository{
		db:     db,
		logger: logger,
	}
}

// CreateIfAbsent inserts the attempt unless its transaction external key is already taken in the tenant
func (r *AttemptRepository) CreateIfAbsent(ctx context.Context, attempt *entity.PaymentAttempt) (*entity.PaymentAttempt, bool, error) {
	attemptModel := attemptToModel(attempt)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_record_id"}, {Name: "transaction_external_key"}},
			DoNothing: true,
		}).
		Create(&attemptModel)
	if result.Error != nil {
		r.logger.Error("Failed to create payment attempt", map[string]any{
			"transaction_external_key": attempt.TransactionExternalKey,
			"error":                    result.Error.Error(),
		})
		return nil, false, dbError("create attempt", result.Error)
	}

	if result.RowsAffected == 0 {
		existing, err := r.GetByTransactionExternalKey(ctx, attempt.TransactionExternalKey, attempt.TenantRecordID)
		if err != nil {
			return nil, false, err
		}
		r.logger.Debug("Payment attempt already recorded", map[string]any{
			"attempt_id":               existing.ID,
			"transaction_external_key": attempt.TransactionExternalKey,
		})
		return existing, false, nil
	}

	return attemptToEntity(&attemptModel), true, nil
}

// GetByID retrieves an attempt
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentAttempt, error) {
	var attemptModel model.PaymentAttempt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&attemptModel).Error; err != nil {
		return nil, r.readError("get attempt", err)
	}
	return attemptToEntity(&attemptModel), nil
}

// GetByTransactionExternalKey retrieves the attempt recorded for a transaction external key
func (r *AttemptRepository) GetByTransactionExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.PaymentAttempt, error) {
	var attemptModel model.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("transaction_external_key = ? AND tenant_record_id = ?", externalKey, tenantRecordID).
		First(&attemptModel).Error
	if err != nil {
		return nil, r.readError("get attempt by transaction key", err)
	}
	return attemptToEntity(&attemptModel), nil
}

// GetByPaymentExternalKey lists the attempts of a payment external key in creation order
func (r *AttemptRepository) GetByPaymentExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) ([]*entity.PaymentAttempt, error) {
	var models []model.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("payment_external_key = ? AND tenant_record_id = ?", externalKey, tenantRecordID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, dbError("get attempts by payment key", err)
	}

	out := make([]*entity.PaymentAttempt, 0, len(models))
	for i := range models {
		out = append(out, attemptToEntity(&models[i]))
	}
	return out, nil
}

// Update persists the state name, last transaction id and amount of the attempt
func (r *AttemptRepository) Update(ctx context.Context, attempt *entity.PaymentAttempt) error {
	updates := map[string]any{
		"state_name": attempt.StateName,
		"amount":     attempt.Amount,
		"updated_at": attempt.UpdatedDate,
	}
	if attempt.TransactionID != nil {
		updates["transaction_id"] = *attempt.TransactionID
	}

	result := r.db.WithContext(ctx).Model(&model.PaymentAttempt{}).Where("id = ?", attempt.ID).Updates(updates)
	if result.Error != nil {
		r.logger.Error("Failed to update payment attempt", map[string]any{
			"attempt_id": attempt.ID,
			"error":      result.Error.Error(),
		})
		return dbError("update attempt", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAttemptNotFound
	}
	return nil
}

// CompareAndSetState moves the attempt to a new state only if it is still in the expected one
func (r *AttemptRepository) CompareAndSetState(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentAttempt{}).
		Where("id = ? AND state_name = ?", id, from).
		Update("state_name", to)
	if result.Error != nil {
		return false, dbError("compare and set attempt state", result.Error)
	}

	swapped := result.RowsAffected == 1
	if !swapped {
		r.logger.Debug("Attempt state changed concurrently", map[string]any{
			"attempt_id": id,
			"from":       from,
			"to":         to,
		})
	}
	return swapped, nil
}

func (r *AttemptRepository) readError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAttemptNotFound
	}
	r.logger.Error("Failed to read payment attempt", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return dbError(operation, err)
}

func attemptToModel(a *entity.PaymentAttempt) model.PaymentAttempt {
	return model.PaymentAttempt{
		ID:                     a.ID,
		AccountID:              a.AccountID,
		PaymentMethodID:        a.PaymentMethodID,
		PaymentExternalKey:     a.PaymentExternalKey,
		TransactionExternalKey: a.TransactionExternalKey,
		TransactionID:          a.TransactionID,
		StateName:              a.StateName,
		TransactionType:        string(a.TransactionType),
		PluginNames:            pq.StringArray(a.PluginNames),
		Amount:                 a.Amount,
		Currency:               a.Currency,
		Properties:             datatypes.JSONMap(a.Properties),
		AccountRecordID:        a.AccountRecordID,
		TenantRecordID:         a.TenantRecordID,
		CreatedAt:              a.CreatedDate,
		UpdatedAt:              a.UpdatedDate,
	}
}

func attemptToEntity(m *model.PaymentAttempt) *entity.PaymentAttempt {
	return &entity.PaymentAttempt{
		ID:                     m.ID,
		AccountID:              m.AccountID,
		PaymentMethodID:        m.PaymentMethodID,
		PaymentExternalKey:     m.PaymentExternalKey,
		TransactionExternalKey: m.TransactionExternalKey,
		TransactionID:          m.TransactionID,
		StateName:              m.StateName,
		TransactionType:        entity.TransactionType(m.TransactionType),
		PluginNames:            []string(m.PluginNames),
		Amount:                 m.Amount,
		Currency:               m.Currency,
		Properties:             map[string]any(m.Properties),
		CreatedDate:            m.CreatedAt,
		UpdatedDate:            m.UpdatedAt,
		AccountRecordID:        m.AccountRecordID,
		TenantRecordID:         m.TenantRecordID,
	}
}
