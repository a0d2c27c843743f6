package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/repository"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
)

const tenant int64 = 1

var baseTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func setupRepositories(t *testing.T) (*database.Repositories, *faketime.FakeTimeProvider, *entity.Account) {
	t.Helper()

	dbm := database.NewTestDBManager(t, logger.NewNoopLogger())
	db := dbm.Connect(t)
	dbm.SetupTestDB(t)

	clock := faketime.NewFakeTimeProvider(baseTime)
	log := logger.NewNoopLogger()
	repos := &database.Repositories{
		Payments:       repository.NewPaymentRepository(db, log),
		Attempts:       repository.NewAttemptRepository(db, log),
		PaymentMethods: repository.NewPaymentMethodRepository(db, log, clock),
		Notifications:  repository.NewNotificationQueue(db, clock, log),
		Accounts:       repository.NewAccountRepository(db, clock, log),
		Locks:          repository.NewAccountLockRepository(db, clock, log),
		UnitOfWork:     database.NewUnitOfWork(db, log, clock),
	}

	account, err := repos.Accounts.CreateAccount(context.Background(), &entity.Account{
		ExternalKey:    "acct-" + uuid.NewString(),
		Currency:       "usd",
		TenantRecordID: tenant,
	})
	require.NoError(t, err)

	return repos, clock, account
}

func newPayment(account *entity.Account, key string) *entity.Payment {
	return &entity.Payment{
		ID:              uuid.New(),
		AccountID:       account.ID,
		PaymentMethodID: uuid.New(),
		ExternalKey:     key,
		StateName:       "AUTHORIZE_INIT",
		CreatedDate:     baseTime,
		UpdatedDate:     baseTime,
		AccountRecordID: account.RecordID,
		TenantRecordID:  tenant,
	}
}

func newTransaction(t *testing.T, key string, txType entity.TransactionType, effective time.Time) *entity.PaymentTransaction {
	t.Helper()
	tx, err := entity.NewUnknownTransaction(uuid.Nil, key, txType, decimal.RequireFromString("10.00"), "USD", effective, baseTime)
	require.NoError(t, err)
	tx.TenantRecordID = tenant
	return tx
}

func TestPaymentRepository(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()

	payment, err := repos.Payments.CreatePaymentWithFirstTransaction(ctx,
		newPayment(account, "pay-1"), newTransaction(t, "tx-1", entity.TransactionAuthorize, baseTime))
	require.NoError(t, err)
	require.Len(t, payment.Transactions, 1)
	assert.Positive(t, payment.PaymentNumber)
	assert.Equal(t, "USD", payment.Currency())

	t.Run("Duplicate payment key is rejected", func(t *testing.T) {
		_, err := repos.Payments.CreatePaymentWithFirstTransaction(ctx,
			newPayment(account, "pay-1"), newTransaction(t, "tx-other", entity.TransactionAuthorize, baseTime))
		assert.ErrorIs(t, err, errs.ErrDuplicatePayment)
	})

	t.Run("Live transaction key is reserved", func(t *testing.T) {
		_, err := repos.Payments.AppendTransaction(ctx, payment.ID, newTransaction(t, "tx-1", entity.TransactionCapture, baseTime))
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("Effective date is clamped to the latest transaction", func(t *testing.T) {
		appended, err := repos.Payments.AppendTransaction(ctx, payment.ID,
			newTransaction(t, "tx-2", entity.TransactionCapture, baseTime.Add(-time.Hour)))
		require.NoError(t, err)
		assert.True(t, appended.EffectiveDate.Equal(baseTime))

		stored, err := repos.Payments.GetPayment(ctx, payment.ID)
		require.NoError(t, err)
		require.Len(t, stored.Transactions, 2)
		assert.Equal(t, "tx-1", stored.Transactions[0].ExternalKey, "insertion order kept for equal dates")
		assert.Equal(t, "tx-2", stored.Transactions[1].ExternalKey)
	})

	t.Run("Completion updates payment and transaction", func(t *testing.T) {
		tx := payment.Transactions[0]
		tx.ApplyResult(entity.PaymentStatusSuccess, &entity.PluginResult{
			ProcessedAmount:  decimal.RequireFromString("10.00"),
			FirstReferenceID: "ref-1",
		}, baseTime.Add(time.Minute))

		err := repos.Payments.UpdatePaymentAndTransactionOnCompletion(ctx, payment.ID, "AUTHORIZE_SUCCESS", "AUTHORIZE_SUCCESS", tx)
		require.NoError(t, err)

		err = repos.Payments.UpdatePaymentAndTransactionOnCompletion(ctx, payment.ID, "CAPTURE_ERRORED", "", tx)
		require.NoError(t, err)

		stored, err := repos.Payments.GetPayment(ctx, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, "CAPTURE_ERRORED", stored.StateName)
		assert.Equal(t, "AUTHORIZE_SUCCESS", stored.LastSuccessStateName, "empty value keeps the stored one")
		assert.Equal(t, entity.TransactionStatusSuccess, stored.Transactions[0].Status)
		assert.Equal(t, "ref-1", stored.Transactions[0].FirstReferenceID)
	})

	t.Run("Missing rows map to not found errors", func(t *testing.T) {
		_, err := repos.Payments.GetPayment(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrPaymentNotFound)

		_, err = repos.Payments.GetTransaction(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)

		err = repos.Payments.UpdatePaymentAndTransactionOnCompletion(ctx, payment.ID, "X", "", &entity.PaymentTransaction{ID: uuid.New()})
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Lookups by key and status", func(t *testing.T) {
		byKey, err := repos.Payments.GetPaymentByExternalKey(ctx, "pay-1", tenant)
		require.NoError(t, err)
		assert.Equal(t, payment.ID, byKey.ID)

		txs, err := repos.Payments.GetTransactionsByExternalKey(ctx, "tx-2", tenant)
		require.NoError(t, err)
		require.Len(t, txs, 1)

		unknown, err := repos.Payments.GetTransactionsByStatus(ctx, entity.TransactionStatusUnknown, baseTime.Add(time.Hour), 10)
		require.NoError(t, err)
		require.Len(t, unknown, 1)
		assert.Equal(t, "tx-2", unknown[0].ExternalKey)

		payments, err := repos.Payments.GetAccountPayments(ctx, account.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()

	attempt := entity.NewPaymentAttempt(account.ID, uuid.New(), "pay", "tx", entity.TransactionPurchase,
		decimal.RequireFromString("5"), "USD", nil, nil, baseTime)
	attempt.TenantRecordID = tenant
	_, _, err := repos.Attempts.CreateIfAbsent(ctx, attempt)
	require.NoError(t, err)

	err = persistence.WithinTransaction(ctx, repos.UnitOfWork, func(txCtx context.Context) error {
		attempt.StateName = entity.AttemptStateRetried
		if err := repos.UnitOfWork.GetAttemptRepository(txCtx).Update(txCtx, attempt); err != nil {
			return err
		}
		return errs.ErrOperationNotAllowed
	})
	require.ErrorIs(t, err, errs.ErrOperationNotAllowed)

	stored, err := repos.Attempts.GetByID(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AttemptStateInit, stored.StateName)
}

func TestAttemptRepository(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()

	attempt := entity.NewPaymentAttempt(account.ID, uuid.New(), "pay-a", "tx-a", entity.TransactionPurchase,
		decimal.RequireFromString("12.50"), "EUR", []string{"policy"}, map[string]any{"invoiceId": "inv-1"}, baseTime)
	attempt.TenantRecordID = tenant

	stored, created, err := repos.Attempts.CreateIfAbsent(ctx, attempt)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []string{"policy"}, stored.PluginNames)

	again := *attempt
	again.ID = uuid.New()
	stored, created, err = repos.Attempts.CreateIfAbsent(ctx, &again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, attempt.ID, stored.ID)

	swapped, err := repos.Attempts.CompareAndSetState(ctx, attempt.ID, entity.AttemptStateInit, entity.AttemptStateRetried)
	require.NoError(t, err)
	assert.True(t, swapped)

	swapped, err = repos.Attempts.CompareAndSetState(ctx, attempt.ID, entity.AttemptStateInit, entity.AttemptStateSuccess)
	require.NoError(t, err)
	assert.False(t, swapped)

	list, err := repos.Attempts.GetByPaymentExternalKey(ctx, "pay-a", tenant)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "inv-1", list[0].Properties["invoiceId"])

	_, err = repos.Attempts.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrAttemptNotFound)
}

func TestPaymentMethodRepository(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()

	method := entity.NewPaymentMethod(account.ID, "card-1", "__SCRIPTED_PAYMENT__", nil, baseTime)
	require.NoError(t, repos.PaymentMethods.Create(ctx, method))

	duplicate := entity.NewPaymentMethod(account.ID, "card-1", "__SCRIPTED_PAYMENT__", nil, baseTime)
	assert.ErrorIs(t, repos.PaymentMethods.Create(ctx, duplicate), errs.ErrInvalidPaymentMethod)

	require.NoError(t, repos.PaymentMethods.Deactivate(ctx, method.ID))

	_, err := repos.PaymentMethods.GetByID(ctx, method.ID, false)
	assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)

	inactive, err := repos.PaymentMethods.GetByID(ctx, method.ID, true)
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)

	// the key is free again once the first method is inactive
	require.NoError(t, repos.PaymentMethods.Create(ctx, duplicate))

	active, err := repos.PaymentMethods.GetByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, duplicate.ID, active[0].ID)
}

func TestNotificationQueue(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()
	queue := "retry"

	for _, offset := range []time.Duration{-time.Minute, 0, time.Hour} {
		err := repos.Notifications.RecordFutureNotification(ctx, queue, baseTime.Add(offset),
			map[string]string{"key": "value"}, uuid.New(), account.RecordID, tenant)
		require.NoError(t, err)
	}

	future, err := repos.Notifications.GetFutureNotifications(ctx, queue, account.RecordID)
	require.NoError(t, err)
	require.Len(t, future, 3)

	claimed, err := repos.Notifications.ClaimReady(ctx, queue, baseTime, 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.JSONEq(t, `{"key":"value"}`, string(claimed[0].Event))

	again, err := repos.Notifications.ClaimReady(ctx, queue, baseTime, 10, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, again, "leases are still held")

	require.NoError(t, repos.Notifications.MarkProcessed(ctx, claimed[0].ID, baseTime))
	retryAt := baseTime.Add(2 * time.Minute)
	require.NoError(t, repos.Notifications.MarkFailed(ctx, claimed[1].ID, "boom", &retryAt, baseTime))

	reclaimed, err := repos.Notifications.ClaimReady(ctx, queue, retryAt, 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, claimed[1].ID, reclaimed[0].ID)
	assert.Equal(t, 1, reclaimed[0].ErrorCount)

	require.NoError(t, repos.Notifications.MarkFailed(ctx, reclaimed[0].ID, "boom", nil, retryAt))
	failed, err := repos.Notifications.ListByState(ctx, queue, entity.NotificationFailed, 0)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, 2, failed[0].ErrorCount)
}

func TestAccountLockRepository(t *testing.T) {
	repos, clock, account := setupRepositories(t)
	ctx := context.Background()

	require.NoError(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-a", time.Minute))
	require.NoError(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-a", time.Minute), "owner may extend")
	assert.ErrorIs(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-b", time.Minute), errs.ErrAccountLocked)

	require.NoError(t, repos.Locks.ReleaseLock(ctx, account.ID, "owner-b"), "foreign release is a no-op")
	assert.ErrorIs(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-b", time.Minute), errs.ErrAccountLocked)

	clock.Advance(2 * time.Minute)
	require.NoError(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-b", time.Minute), "expired lease is taken over")

	require.NoError(t, repos.Locks.ReleaseLock(ctx, account.ID, "owner-b"))
	require.NoError(t, repos.Locks.AcquireLock(ctx, account.ID, "owner-a", time.Minute))

	clock.Advance(2 * time.Minute)
	removed, err := repos.Locks.CleanupExpiredLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestAccountRepository(t *testing.T) {
	repos, _, account := setupRepositories(t)
	ctx := context.Background()

	assert.Equal(t, "USD", account.Currency)

	byRecord, err := repos.Accounts.GetAccountByRecordID(ctx, account.RecordID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, byRecord.ID)

	methodID := uuid.New()
	require.NoError(t, repos.Accounts.SetDefaultPaymentMethod(ctx, account.ID, &methodID))
	stored, err := repos.Accounts.GetAccountByID(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasDefaultPaymentMethod())

	assert.ErrorIs(t, repos.Accounts.SetDefaultPaymentMethod(ctx, uuid.New(), nil), errs.ErrAccountNotFound)

	off, err := repos.Accounts.IsAutoPayOff(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, off)

	require.NoError(t, repos.Accounts.SetAutoPayOff(ctx, account.ID, true))
	off, err = repos.Accounts.IsAutoPayOff(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, off)

	invoiceID := uuid.New()
	require.NoError(t, repos.Accounts.SetInvoiceBalance(ctx, account.ID, invoiceID, decimal.RequireFromString("30")))
	balance, err := repos.Accounts.GetInvoiceBalance(ctx, invoiceID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("30")))

	_, err = repos.Accounts.GetInvoiceBalance(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrInvoiceNotFound)

	require.NoError(t, repos.Accounts.ConsumeExistingCredit(ctx, account.ID), "no credit is a no-op")
}
