package retry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/invoicepolicy"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	externalmocks "github.com/amirhossein-jamali/payment-engine/mocks/port/external"
	persistencemocks "github.com/amirhossein-jamali/payment-engine/mocks/port/persistence"
)

func (e *testEnv) registerInvoicePolicy(days ...int) {
	cfg := invoicepolicy.DefaultConfig()
	cfg.PaymentFailureRetryDays = days
	e.retryPlugins.Register(invoicepolicy.PluginName,
		invoicepolicy.NewPlugin(e.payments, e.accounts, e.clock, logger.NewNoopLogger(), cfg))
}

func TestPluginControlledProcessor_PurchaseFailingOnceIsRetriedNextDay(t *testing.T) {
	env := newTestEnv(t)
	env.registerInvoicePolicy(1, 1, 1)
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})
	ctx := context.Background()

	paid, err := env.controlled.CreatePurchase(ctx, env.request("10"), []string{invoicepolicy.PluginName}, env.cc())
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.Equal(t, "PURCHASE_FAILED", paid.StateName)

	attempt := env.onlyAttempt(t, paid.ExternalKey)
	assert.Equal(t, entity.AttemptStateRetried, attempt.StateName)
	require.NotNil(t, attempt.TransactionID)
	assert.Equal(t, paid.Transactions[0].ID, *attempt.TransactionID)

	queued := env.notifications.All()
	require.Len(t, queued, 1)
	assert.Equal(t, QueueName, queued[0].QueueName)
	assert.True(t, testStart.Add(24*time.Hour).Equal(queued[0].EffectiveDate))
	assert.Equal(t, env.account.RecordID, queued[0].AccountRecordID)

	var event Event
	require.NoError(t, json.Unmarshal(queued[0].Event, &event))
	assert.Equal(t, attempt.ID.String(), event.AttemptID)
	assert.Equal(t, []string{invoicepolicy.PluginName}, event.PluginNames)

	env.clock.Advance(24 * time.Hour)
	require.NoError(t, env.deliver(t, queued[0]))

	attempt = env.onlyAttempt(t, paid.ExternalKey)
	assert.Equal(t, entity.AttemptStateSuccess, attempt.StateName)

	stored, err := env.payments.GetPayment(ctx, paid.ID)
	require.NoError(t, err)
	assert.Equal(t, "PURCHASE_SUCCESS", stored.StateName)
	require.Len(t, stored.Transactions, 2)
	assert.Equal(t, stored.Transactions[0].ExternalKey, stored.Transactions[1].ExternalKey)
	assert.Equal(t, entity.TransactionStatusPaymentFailure, stored.Transactions[0].Status)
	assert.Equal(t, entity.TransactionStatusSuccess, stored.Transactions[1].Status)
	assert.Equal(t, 2, env.gateway.Calls(entity.TransactionPurchase))

	t.Run("duplicate delivery is ignored", func(t *testing.T) {
		require.NoError(t, env.deliver(t, queued[0]))
		assert.Equal(t, 2, env.gateway.Calls(entity.TransactionPurchase))
		assert.Len(t, env.notifications.All(), 1)
	})
}

func TestPluginControlledProcessor_ExhaustedScheduleAborts(t *testing.T) {
	env := newTestEnv(t)
	env.registerInvoicePolicy(1)
	env.gateway.SetDefaultStatus(entity.PluginStatusFailure)
	ctx := context.Background()

	paid, err := env.controlled.CreatePurchase(ctx, env.request("10"), []string{invoicepolicy.PluginName}, env.cc())
	require.NoError(t, err)
	queued := env.notifications.All()
	require.Len(t, queued, 1)

	env.clock.Advance(24 * time.Hour)
	require.NoError(t, env.deliver(t, queued[0]))

	attempt := env.onlyAttempt(t, paid.ExternalKey)
	assert.Equal(t, entity.AttemptStateAborted, attempt.StateName)
	assert.Len(t, env.notifications.All(), 1, "no further retry is scheduled")
	assert.Equal(t, 2, env.gateway.Calls(entity.TransactionPurchase))
}

func TestPluginControlledProcessor_DuplicateRequestReplaysAttempt(t *testing.T) {
	env := newTestEnv(t)
	env.registerInvoicePolicy(1, 1, 1)
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})
	ctx := context.Background()
	req := env.request("10")
	plugins := []string{invoicepolicy.PluginName}

	first, err := env.controlled.CreatePurchase(ctx, req, plugins, env.cc())
	require.NoError(t, err)
	require.Len(t, env.notifications.All(), 1)

	second, err := env.controlled.CreatePurchase(ctx, req, plugins, env.cc())

	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "PURCHASE_FAILED", second.StateName)
	assert.Len(t, second.Transactions, 1)
	assert.Equal(t, 1, env.gateway.Calls(entity.TransactionPurchase))
	assert.Len(t, env.notifications.All(), 1, "no second retry is scheduled")
	assert.Equal(t, entity.AttemptStateRetried, env.onlyAttempt(t, first.ExternalKey).StateName)

	stored, err := env.payments.GetPayment(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Transactions, 1)
}

func TestPluginControlledProcessor_DuplicateKeyOnAnotherAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	req := env.request("10")

	_, err := env.controlled.CreatePurchase(ctx, req, nil, env.cc())
	require.NoError(t, err)

	other := env.accounts.AddAccount(&entity.Account{
		ExternalKey:    uuid.NewString(),
		Currency:       "USD",
		TenantRecordID: env.account.TenantRecordID,
	})
	req.AccountID = other.ID

	paid, err := env.controlled.CreatePurchase(ctx, req, nil, entity.NewCallContext("test", "", other, env.clock.Now()))

	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	assert.Nil(t, paid)
	assert.Equal(t, 1, env.gateway.TotalCalls())
}

func TestPluginControlledProcessor_NoPolicyAbortsOnFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.SetDefaultStatus(entity.PluginStatusFailure)

	paid, err := env.controlled.CreatePurchase(context.Background(), env.request("10"), nil, env.cc())

	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.Equal(t, "PURCHASE_FAILED", paid.StateName)
	assert.Equal(t, entity.AttemptStateAborted, env.onlyAttempt(t, paid.ExternalKey).StateName)
	assert.Empty(t, env.notifications.All())
}

func TestPluginControlledProcessor_SuccessAndPending(t *testing.T) {
	tests := []struct {
		name   string
		status entity.PluginStatus
		state  string
	}{
		{name: "success", status: entity.PluginStatusSuccess, state: "AUTHORIZE_SUCCESS"},
		{name: "pending", status: entity.PluginStatusPending, state: "AUTHORIZE_PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.gateway.SetDefaultStatus(tt.status)

			paid, err := env.controlled.CreateAuthorization(context.Background(), env.request("25"), nil, env.cc())

			require.NoError(t, err)
			assert.Equal(t, tt.state, paid.StateName)
			assert.Equal(t, entity.AttemptStateSuccess, env.onlyAttempt(t, paid.ExternalKey).StateName)
		})
	}
}

func TestPluginControlledProcessor_AutoPayOff(t *testing.T) {
	env := newTestEnv(t)
	env.accounts.SetAutoPayOff(env.account.ID, true)
	ctx := context.Background()

	paid, err := env.controlled.CreatePurchase(ctx, env.request("10"), nil, env.cc())

	assert.ErrorIs(t, err, errs.ErrAutoPayOff)
	assert.Nil(t, paid)
	assert.Zero(t, env.gateway.TotalCalls())

	payments, err := env.payments.GetAccountPayments(ctx, env.account.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPluginControlledProcessor_InvoiceControl(t *testing.T) {
	t.Run("paid invoice aborts with a zero amount", func(t *testing.T) {
		env := newTestEnv(t)
		env.registerInvoicePolicy(8, 8, 8)
		invoiceID := uuid.New()
		env.accounts.SetInvoiceBalance(invoiceID, decimal.Zero)

		req := env.request("10")
		req.PaymentExternalKey = uuid.NewString()
		req.Properties = map[string]any{invoicepolicy.PropertyInvoiceID: invoiceID.String()}

		paid, err := env.controlled.CreatePurchase(context.Background(), req, []string{invoicepolicy.PluginName}, env.cc())

		assert.ErrorIs(t, err, errs.ErrInvoiceAlreadyPaid)
		assert.Nil(t, paid)
		assert.Zero(t, env.gateway.TotalCalls())
		assert.Equal(t, 1, env.accounts.CreditConsumptions(env.account.ID))

		attempt := env.onlyAttempt(t, req.PaymentExternalKey)
		assert.Equal(t, entity.AttemptStateAborted, attempt.StateName)
		assert.True(t, attempt.Amount.IsZero())
	})

	t.Run("amount is clamped to the invoice balance", func(t *testing.T) {
		env := newTestEnv(t)
		env.registerInvoicePolicy(8, 8, 8)
		invoiceID := uuid.New()
		env.accounts.SetInvoiceBalance(invoiceID, decimal.RequireFromString("40"))

		req := env.request("100")
		req.Properties = map[string]any{invoicepolicy.PropertyInvoiceID: invoiceID}

		paid, err := env.controlled.CreatePurchase(context.Background(), req, []string{invoicepolicy.PluginName}, env.cc())

		require.NoError(t, err)
		require.Len(t, paid.Transactions, 1)
		assert.Equal(t, "40", paid.Transactions[0].Amount.String())
		assert.Equal(t, "40", env.onlyAttempt(t, paid.ExternalKey).Amount.String())
	})
}

func TestPluginControlledProcessor_BusinessErrorAbortsAttempt(t *testing.T) {
	env := newTestEnv(t)
	req := env.request("0")
	req.PaymentExternalKey = uuid.NewString()

	paid, err := env.controlled.CreatePurchase(context.Background(), req, nil, env.cc())

	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	assert.Nil(t, paid)
	assert.Equal(t, entity.AttemptStateAborted, env.onlyAttempt(t, req.PaymentExternalKey).StateName)
	assert.Zero(t, env.gateway.TotalCalls())
}

func TestRetryableProcessor_UnknownAttempt(t *testing.T) {
	env := newTestEnv(t)

	err := env.retryable.RetryPaymentTransaction(context.Background(), uuid.New(), nil, env.cc())

	assert.ErrorIs(t, err, errs.ErrAttemptNotFound)
}

func TestRetryableProcessor_HandleReadyNotification_InvalidEvent(t *testing.T) {
	tests := []struct {
		name  string
		event string
	}{
		{name: "not json", event: "{"},
		{name: "bad attempt id", event: `{"attemptId":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			err := env.retryable.HandleReadyNotification(context.Background(), []byte(tt.event), testStart,
				uuid.New(), env.account.RecordID, env.account.TenantRecordID)

			assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		})
	}
}

func TestRetryableProcessor_AutoPayOffEndsScheduledRetry(t *testing.T) {
	env := newTestEnv(t)
	env.retryPlugins.Register("daily", &stubPolicy{next: at(24 * time.Hour)})
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})

	paid, err := env.controlled.CreatePurchase(context.Background(), env.request("10"), []string{"daily"}, env.cc())
	require.NoError(t, err)
	queued := env.notifications.All()
	require.Len(t, queued, 1)

	env.accounts.SetAutoPayOff(env.account.ID, true)
	require.NoError(t, env.deliver(t, queued[0]))

	assert.Equal(t, entity.AttemptStateAborted, env.onlyAttempt(t, paid.ExternalKey).StateName)
	assert.Equal(t, 1, env.gateway.Calls(entity.TransactionPurchase))
}

func TestAutomatonRunner_TagLookup(t *testing.T) {
	boom := errors.New("tag store down")

	tests := []struct {
		name       string
		autoPayOff bool
		lookupErr  error
		expected   error
	}{
		{name: "lookup failure stops the run", lookupErr: boom, expected: boom},
		{name: "auto pay off stops the run", autoPayOff: true, expected: errs.ErrAutoPayOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			tags := externalmocks.NewMockTagLookup(t)
			tags.EXPECT().IsAutoPayOff(mock.Anything, env.account.ID).Return(tt.autoPayOff, tt.lookupErr).Once()

			// the run must end before the payment automaton, the lock or the unit of work are needed
			runner := NewAutomatonRunner(nil, env.payments, env.attempts, nil, env.accounts, tags,
				env.retryPlugins, nil, env.clock, logger.NewNoopLogger())

			result, err := runner.Run(context.Background(), RunRequest{
				TransactionType:        entity.TransactionPurchase,
				AccountID:              env.account.ID,
				TransactionExternalKey: uuid.NewString(),
				CallContext:            env.cc(),
			})

			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, result)
			assert.Zero(t, env.gateway.TotalCalls())
		})
	}
}

func TestRetryableProcessor_AttemptStoreOutcomes(t *testing.T) {
	ctx := context.Background()
	attempt := &entity.PaymentAttempt{
		ID:        uuid.New(),
		StateName: entity.AttemptStateSuccess,
	}

	t.Run("attempt no longer retried is a duplicate delivery", func(t *testing.T) {
		attempts := persistencemocks.NewMockPaymentAttemptRepository(t)
		attempts.EXPECT().GetByID(mock.Anything, attempt.ID).Return(attempt, nil).Once()
		attempts.EXPECT().CompareAndSetState(mock.Anything, attempt.ID, entity.AttemptStateRetried, entity.AttemptStateInit).
			Return(false, nil).Once()

		processor := NewRetryableProcessor(nil, attempts, nil, faketime.NewFakeTimeProvider(testStart), logger.NewNoopLogger())

		assert.NoError(t, processor.RetryPaymentTransaction(ctx, attempt.ID, nil, entity.CallContext{}))
	})

	t.Run("state change failure is returned", func(t *testing.T) {
		attempts := persistencemocks.NewMockPaymentAttemptRepository(t)
		attempts.EXPECT().GetByID(mock.Anything, attempt.ID).Return(attempt, nil).Once()
		attempts.EXPECT().CompareAndSetState(mock.Anything, attempt.ID, entity.AttemptStateRetried, entity.AttemptStateInit).
			Return(false, errs.ErrDatabaseConnection).Once()

		processor := NewRetryableProcessor(nil, attempts, nil, faketime.NewFakeTimeProvider(testStart), logger.NewNoopLogger())

		assert.ErrorIs(t, processor.RetryPaymentTransaction(ctx, attempt.ID, nil, entity.CallContext{}), errs.ErrDatabaseConnection)
	})
}
