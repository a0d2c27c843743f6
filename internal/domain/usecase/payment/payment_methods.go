package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
)

// PaymentMethodService manages the payment methods of accounts
type PaymentMethodService struct {
	methods      persistence.PaymentMethodRepository
	accounts     external.AccountLookup
	plugins      plugin.PaymentPluginRegistry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PaymentMethodUseCase = (*PaymentMethodService)(nil)

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(
	methods persistence.PaymentMethodRepository,
	accounts external.AccountLookup,
	plugins plugin.PaymentPluginRegistry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PaymentMethodService {
	return &PaymentMethodService{
		methods:      methods,
		accounts:     accounts,
		plugins:      plugins,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddPaymentMethod registers a payment method for an account
func (s *PaymentMethodService) AddPaymentMethod(
	ctx context.Context,
	accountID uuid.UUID,
	externalKey, pluginName string,
	properties map[string]any,
	setDefault bool,
) (*entity.PaymentMethod, error) {
	pluginName = strings.TrimSpace(pluginName)
	if pluginName == "" {
		return nil, fmt.Errorf("%w: plugin name is required", errs.ErrInvalidRequest)
	}
	if _, err := s.plugins.Get(pluginName); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	method := entity.NewPaymentMethod(account.ID, externalKey, pluginName, properties, s.timeProvider.Now())
	method.AccountRecordID = account.RecordID
	method.TenantRecordID = account.TenantRecordID

	if err := s.methods.Create(ctx, method); err != nil {
		s.logger.Error("Failed to create payment method", map[string]any{
			"account_id":  account.ID.String(),
			"plugin_name": pluginName,
			"error":       err.Error(),
		})
		return nil, err
	}

	makeDefault := setDefault || !account.HasDefaultPaymentMethod()
	if makeDefault {
		if err := s.accounts.SetDefaultPaymentMethod(ctx, account.ID, &method.ID); err != nil {
			return nil, fmt.Errorf("failed to set default payment method: %w", err)
		}
	}

	s.logger.Info("Payment method added", map[string]any{
		"account_id":        account.ID.String(),
		"payment_method_id": method.ID.String(),
		"plugin_name":       pluginName,
		"is_default":        makeDefault,
	})
	return method, nil
}

// DeletePaymentMethod soft-deletes a payment method
//
// Payments already made with the method keep referencing it.
func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, accountID, paymentMethodID uuid.UUID, deleteDefault bool) error {
	account, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	method, err := s.methods.GetByID(ctx, paymentMethodID, false)
	if err != nil {
		return err
	}
	if method.AccountID != account.ID {
		return fmt.Errorf("%w: payment method %s does not belong to account %s",
			errs.ErrInvalidPaymentMethod, method.ID, account.ID)
	}

	isDefault := account.HasDefaultPaymentMethod() && *account.PaymentMethodID == method.ID
	if isDefault && !deleteDefault {
		return fmt.Errorf("%w: payment method %s is the account default", errs.ErrInvalidPaymentMethod, method.ID)
	}

	if err := s.methods.Deactivate(ctx, method.ID); err != nil {
		return err
	}
	if isDefault {
		if err := s.accounts.SetDefaultPaymentMethod(ctx, account.ID, nil); err != nil {
			return fmt.Errorf("failed to clear default payment method: %w", err)
		}
	}

	s.logger.Info("Payment method deleted", map[string]any{
		"account_id":        account.ID.String(),
		"payment_method_id": method.ID.String(),
		"was_default":       isDefault,
	})
	return nil
}

// GetAccountPaymentMethods lists the active payment methods of an account
func (s *PaymentMethodService) GetAccountPaymentMethods(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error) {
	if _, err := s.accounts.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.methods.GetByAccount(ctx, accountID)
}
