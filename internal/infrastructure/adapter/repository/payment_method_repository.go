package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// PaymentMethodRepository implements persistence.PaymentMethodRepository using GORM
type PaymentMethodRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

var _ persistence.PaymentMethodRepository = (*PaymentMethodRepository)(nil)

// NewPaymentMethodRepository creates a new PaymentMethodRepository instance
func NewPaymentMethodRepository(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create saves a new payment method
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	methodModel := model.PaymentMethod{
		ID:              method.ID,
		AccountID:       method.AccountID,
		ExternalKey:     method.ExternalKey,
		PluginName:      method.PluginName,
		IsActive:        method.IsActive,
		Properties:      datatypes.JSONMap(method.Properties),
		AccountRecordID: method.AccountRecordID,
		TenantRecordID:  method.TenantRecordID,
		CreatedAt:       method.CreatedDate,
		UpdatedAt:       method.UpdatedDate,
	}

	if err := r.db.WithContext(ctx).Create(&methodModel).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyOn(err, indexActivePaymentMethodKey) {
			return fmt.Errorf("%w: external key %s already used by account", errs.ErrInvalidPaymentMethod, method.ExternalKey)
		}
		r.logger.Error("Failed to create payment method", map[string]any{
			"account_id": method.AccountID,
			"error":      err.Error(),
		})
		return dbError("create payment method", err)
	}

	r.logger.Debug("Payment method created", map[string]any{
		"payment_method_id": method.ID,
		"plugin_name":       method.PluginName,
	})
	return nil
}

// GetByID retrieves a payment method, optionally including deactivated ones
func (r *PaymentMethodRepository) GetByID(ctx context.Context, id uuid.UUID, includeInactive bool) (*entity.PaymentMethod, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if !includeInactive {
		query = query.Where("is_active")
	}

	var methodModel model.PaymentMethod
	if err := query.First(&methodModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentMethodNotFound
		}
		return nil, dbError("get payment method", err)
	}
	return methodToEntity(&methodModel), nil
}

// GetByAccount lists the active payment methods of an account in creation order
func (r *PaymentMethodRepository) GetByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var models []model.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND is_active", accountID).
		Order("created_at, id").
		Find(&models).Error
	if err != nil {
		return nil, dbError("get account payment methods", err)
	}

	out := make([]*entity.PaymentMethod, 0, len(models))
	for i := range models {
		out = append(out, methodToEntity(&models[i]))
	}
	return out, nil
}

// Deactivate soft-deletes a payment method
func (r *PaymentMethodRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentMethod{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return dbError("deactivate payment method", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}
	return nil
}

func methodToEntity(m *model.PaymentMethod) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		ID:              m.ID,
		AccountID:       m.AccountID,
		ExternalKey:     m.ExternalKey,
		PluginName:      m.PluginName,
		IsActive:        m.IsActive,
		Properties:      map[string]any(m.Properties),
		CreatedDate:     m.CreatedAt,
		UpdatedDate:     m.UpdatedAt,
		AccountRecordID: m.AccountRecordID,
		TenantRecordID:  m.TenantRecordID,
	}
}
