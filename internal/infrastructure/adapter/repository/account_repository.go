package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/model"
)

// AutoPayOffTag disables automatic payments on an account
const AutoPayOffTag = "AUTO_PAY_OFF"

// AccountRepository serves accounts, control tags and invoice balances from the database
type AccountRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var (
	_ external.AccountLookup = (*AccountRepository)(nil)
	_ external.TagLookup     = (*AccountRepository)(nil)
	_ external.InvoiceLookup = (*AccountRepository)(nil)
)

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateAccount stores a new account and returns it with its record id
func (r *AccountRepository) CreateAccount(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	now := r.timeProvider.Now()
	accountModel := model.Account{
		ID:              account.ID,
		ExternalKey:     account.ExternalKey,
		Currency:        entity.NormalizeCurrency(account.Currency),
		PaymentMethodID: account.PaymentMethodID,
		TenantRecordID:  account.TenantRecordID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if accountModel.ID == uuid.Nil {
		accountModel.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(&accountModel).Error; err != nil {
		r.logger.Error("Failed to create account", map[string]any{
			"external_key": account.ExternalKey,
			"error":        err.Error(),
		})
		return nil, dbError("create account", err)
	}
	return accountToEntity(&accountModel), nil
}

// GetAccountByID retrieves an account
func (r *AccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.findAccount(ctx, "id = ?", id)
}

// GetAccountByRecordID retrieves an account by record id
func (r *AccountRepository) GetAccountByRecordID(ctx context.Context, recordID int64) (*entity.Account, error) {
	return r.findAccount(ctx, "record_id = ?", recordID)
}

// GetAccountByExternalKey retrieves an account by its external key within a tenant
func (r *AccountRepository) GetAccountByExternalKey(ctx context.Context, externalKey string, tenantRecordID int64) (*entity.Account, error) {
	var accountModel model.Account
	err := r.db.WithContext(ctx).
		Where("external_key = ? AND tenant_record_id = ?", externalKey, tenantRecordID).
		First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, dbError("get account by external key", err)
	}
	return accountToEntity(&accountModel), nil
}

// SetDefaultPaymentMethod sets or clears the default payment method
func (r *AccountRepository) SetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID, paymentMethodID *uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]any{
			"payment_method_id": paymentMethodID,
			"updated_at":        r.timeProvider.Now(),
		})
	if result.Error != nil {
		return dbError("set default payment method", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// SetAutoPayOff adds or removes the AUTO_PAY_OFF tag
func (r *AccountRepository) SetAutoPayOff(ctx context.Context, accountID uuid.UUID, off bool) error {
	db := r.db.WithContext(ctx)
	if !off {
		if err := db.Where("account_id = ? AND name = ?", accountID, AutoPayOffTag).Delete(&model.AccountTag{}).Error; err != nil {
			return dbError("remove account tag", err)
		}
		return nil
	}

	tag := model.AccountTag{AccountID: accountID, Name: AutoPayOffTag, CreatedAt: r.timeProvider.Now()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
		return dbError("add account tag", err)
	}
	return nil
}

// IsAutoPayOff reports whether the AUTO_PAY_OFF tag is set
func (r *AccountRepository) IsAutoPayOff(ctx context.Context, accountID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AccountTag{}).
		Where("account_id = ? AND name = ?", accountID, AutoPayOffTag).
		Count(&count).Error
	if err != nil {
		return false, dbError("read account tags", err)
	}
	return count > 0, nil
}

// ConsumeExistingCredit applies the account credit balance to its unpaid invoices, oldest first
func (r *AccountRepository) ConsumeExistingCredit(ctx context.Context, accountID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var account model.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", accountID).First(&account).Error; err != nil {
			return err
		}
		if !account.CreditBalance.IsPositive() {
			return nil
		}

		var invoices []model.Invoice
		if err := tx.Where("account_id = ? AND balance > 0", accountID).Order("created_at, id").Find(&invoices).Error; err != nil {
			return err
		}

		now := r.timeProvider.Now()
		credit := account.CreditBalance
		for _, invoice := range invoices {
			if !credit.IsPositive() {
				break
			}
			applied := decimal.Min(credit, invoice.Balance)
			credit = credit.Sub(applied)
			if err := tx.Model(&model.Invoice{}).Where("id = ?", invoice.ID).Updates(map[string]any{
				"balance":    invoice.Balance.Sub(applied),
				"updated_at": now,
			}).Error; err != nil {
				return err
			}
		}

		if credit.Equal(account.CreditBalance) {
			return nil
		}
		r.logger.Info("Account credit applied to invoices", map[string]any{
			"account_id": accountID,
			"applied":    account.CreditBalance.Sub(credit).String(),
		})
		return tx.Model(&model.Account{}).Where("id = ?", accountID).Updates(map[string]any{
			"credit_balance": credit,
			"updated_at":     now,
		}).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}
	if err != nil {
		return dbError("consume existing credit", err)
	}
	return nil
}

// GetInvoiceBalance returns the amount still owed on an invoice
func (r *AccountRepository) GetInvoiceBalance(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", invoiceID).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, errs.ErrInvoiceNotFound
		}
		return decimal.Zero, dbError("get invoice balance", err)
	}
	return invoice.Balance, nil
}

// SetInvoiceBalance creates or overwrites the balance of an invoice
func (r *AccountRepository) SetInvoiceBalance(ctx context.Context, accountID, invoiceID uuid.UUID, balance decimal.Decimal) error {
	now := r.timeProvider.Now()
	invoice := model.Invoice{ID: invoiceID, AccountID: accountID, Balance: balance, CreatedAt: now, UpdatedAt: now}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(&invoice).Error
	if err != nil {
		return dbError("set invoice balance", err)
	}
	return nil
}

func (r *AccountRepository) findAccount(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountModel model.Account
	if err := r.db.WithContext(ctx).Where(query, arg).First(&accountModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		r.logger.Error("Failed to read account", map[string]any{
			"error": err.Error(),
		})
		return nil, dbError("get account", err)
	}
	return accountToEntity(&accountModel), nil
}

func accountToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		ExternalKey:     m.ExternalKey,
		Currency:        m.Currency,
		PaymentMethodID: m.PaymentMethodID,
		RecordID:        m.RecordID,
		TenantRecordID:  m.TenantRecordID,
		CreatedDate:     m.CreatedAt,
		UpdatedDate:     m.UpdatedAt,
	}
}
