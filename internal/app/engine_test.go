package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	timeProvider "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/config"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("PE_ENV", "test")
	t.Setenv("PE_DB_DRIVER", config.DriverMemory)

	cfg, err := config.LoadDefaults()
	require.NoError(t, err)
	cfg.Plugins.EnableScripted = true
	return cfg
}

func TestOpenStores_Memory(t *testing.T) {
	cfg := memoryConfig(t)
	ctx := context.Background()

	stores, err := OpenStores(ctx, cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	require.NoError(t, err)
	defer func() { assert.NoError(t, stores.Close()) }()

	account, err := stores.Accounts.GetAccountByExternalKey(ctx, "dev-account-usd", migration.DefaultTenantRecordID)
	require.NoError(t, err)
	assert.Equal(t, "USD", account.Currency)
	assert.Empty(t, stores.Probes)

	_, isLister := stores.Notifications.(NotificationLister)
	assert.True(t, isLister)
}

func TestOpenStores_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Database.Driver = "sqlite"

	_, err := OpenStores(context.Background(), cfg, logger.NewNoopLogger(), timeProvider.NewRealTimeProvider())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestEngine_PurchaseOnDefaultMethod(t *testing.T) {
	cfg := memoryConfig(t)
	ctx := context.Background()
	log := logger.NewNoopLogger()
	clock := timeProvider.NewRealTimeProvider()

	stores, err := OpenStores(ctx, cfg, log, clock)
	require.NoError(t, err)
	engine := New(cfg, stores, log, clock)
	defer func() { assert.NoError(t, engine.Shutdown()) }()

	account, err := stores.Accounts.GetAccountByExternalKey(ctx, "dev-account-usd", migration.DefaultTenantRecordID)
	require.NoError(t, err)

	_, err = engine.Methods.AddPaymentMethod(ctx, account.ID, "card", pluginadapter.ScriptedPluginName, nil, true)
	require.NoError(t, err)

	amount := decimal.RequireFromString("25.00")
	cc := entity.NewCallContext("test", "", account, clock.Now())
	payment, err := engine.Payments.CreatePurchase(ctx, usecase.PaymentRequest{
		AccountID:              account.ID,
		PaymentExternalKey:     "order-1",
		TransactionExternalKey: "order-1-purchase",
		Amount:                 &amount,
		Currency:               "USD",
	}, cc)
	require.NoError(t, err)

	require.Len(t, payment.Transactions, 1)
	assert.Equal(t, entity.TransactionStatusSuccess, payment.Transactions[0].Status)
	assert.True(t, payment.Amounts().PurchasedAmount.Equal(amount))

	attempts, err := engine.Controlled.GetAttempts(ctx, "order-1", account.TenantRecordID)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}
