package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/memory"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
)

func TestDirectProcessor_CreateAuthorization(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreateAuthorization(ctx, env.request("100.00"), env.cc())
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.StateName)
	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.LastSuccessStateName)
	assert.Equal(t, int64(1), payment.PaymentNumber)
	assert.Equal(t, payment.ID.String(), payment.ExternalKey)
	assert.Equal(t, env.method.ID, payment.PaymentMethodID)

	require.Len(t, payment.Transactions, 1)
	tx := payment.Transactions[0]
	assert.Equal(t, entity.TransactionAuthorize, tx.TransactionType)
	assert.Equal(t, entity.TransactionStatusSuccess, tx.Status)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100")))
	assert.True(t, tx.ProcessedAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "USD", tx.Currency)

	amounts := payment.Amounts()
	assert.True(t, amounts.AuthAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 1, env.gateway.Calls(entity.TransactionAuthorize))
}

func TestDirectProcessor_DuplicateTransactionExternalKey(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	req := env.request("25.00")
	first, err := env.processor.CreatePurchase(ctx, req, env.cc())
	require.NoError(t, err)

	second, err := env.processor.CreatePurchase(ctx, req, env.cc())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Transactions, 1)
	assert.Equal(t, 1, env.gateway.Calls(entity.TransactionPurchase))

	payments, err := env.processor.GetAccountPayments(ctx, env.account.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestDirectProcessor_ConcurrentDuplicateAuthorization(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// waits for the account lock instead of giving up while the first call is at the gateway
	patient := lock.NewLocker(memory.NewAccountLockRepository(env.clock), env.clock, noopLogger(), lock.Config{
		Timeout:       time.Minute,
		Tries:         1000000,
		RetryInterval: time.Microsecond,
		MaxInterval:   time.Microsecond,
	})
	runner := NewAutomatonRunner(env.payments, env.methods, env.accounts, env.plugins, patient, env.dispatcher, env.clock, noopLogger())
	pending := NewPendingTransactionResolver(env.payments, patient, env.clock, noopLogger())
	processor := NewDirectProcessor(runner, env.payments, env.attempts, env.methods, env.plugins, pending, noopLogger())
	env.gateway.Enqueue(pluginStep(entity.PluginStatusSuccess, 20*time.Millisecond))

	req := env.request("40.00")
	req.PaymentExternalKey = uuid.NewString()

	const callers = 2
	results := make([]*entity.Payment, callers)
	failures := make([]error, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], failures[i] = processor.CreateAuthorization(ctx, req, env.cc())
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, failures[i])
		require.NotNil(t, results[i])
		assert.Equal(t, "AUTHORIZE_SUCCESS", results[i].StateName)
		assert.Len(t, results[i].Transactions, 1)
	}
	assert.Equal(t, results[0].ID, results[1].ID)
	assert.Equal(t, results[0].Transactions[0].ID, results[1].Transactions[0].ID)
	assert.Equal(t, 1, env.gateway.Calls(entity.TransactionAuthorize))

	payments, err := env.payments.GetAccountPayments(ctx, env.account.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Len(t, payments[0].Transactions, 1)
}

func TestDirectProcessor_DuplicateKeyOnAnotherAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	req := env.request("25.00")
	_, err := env.processor.CreatePurchase(ctx, req, env.cc())
	require.NoError(t, err)

	other, _ := env.addAccount(t, "USD", pluginadapter.ScriptedPluginName)
	req.AccountID = other.ID
	_, err = env.processor.CreatePurchase(ctx, req, env.cc())

	var dupErr *errs.DuplicateTransactionError
	assert.ErrorAs(t, err, &dupErr)
	assert.True(t, errs.IsDuplicateTransactionError(err))
}

func TestDirectProcessor_RefundExceedingPurchaseIsRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreatePurchase(ctx, env.request("50.00"), env.cc())
	require.NoError(t, err)

	_, err = env.processor.CreateRefund(ctx, env.followUp(payment, "60.00"), env.cc())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRefundAmountExceeded)
	assert.Equal(t, errs.CodeRefundAmountExceeded, errs.ErrorCode(err))

	var exceeded *errs.AmountExceededError
	require.ErrorAs(t, err, &exceeded)
	assert.Equal(t, "60", exceeded.Requested)
	assert.Equal(t, "50", exceeded.Available)

	view, err := env.processor.GetPayment(ctx, payment.ID, usecase.PaymentQueryOptions{})
	require.NoError(t, err)
	assert.Len(t, view.Payment.Transactions, 1)
	assert.Equal(t, "PURCHASE_SUCCESS", view.Payment.StateName)
	assert.Equal(t, 0, env.gateway.Calls(entity.TransactionRefund))
}

func TestDirectProcessor_PartialRefunds(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreatePurchase(ctx, env.request("50.00"), env.cc())
	require.NoError(t, err)

	payment, err = env.processor.CreateRefund(ctx, env.followUp(payment, "20.00"), env.cc())
	require.NoError(t, err)
	assert.Equal(t, "REFUND_SUCCESS", payment.StateName)

	payment, err = env.processor.CreateRefund(ctx, env.followUp(payment, "30.00"), env.cc())
	require.NoError(t, err)
	assert.True(t, payment.Amounts().RefundedAmount.Equal(decimal.RequireFromString("50")))

	_, err = env.processor.CreateRefund(ctx, env.followUp(payment, "0.01"), env.cc())
	assert.ErrorIs(t, err, errs.ErrRefundAmountExceeded)
}

func TestDirectProcessor_CaptureExceedingAuthorization(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreateAuthorization(ctx, env.request("100.00"), env.cc())
	require.NoError(t, err)

	payment, err = env.processor.CreateCapture(ctx, env.followUp(payment, "60.00"), env.cc())
	require.NoError(t, err)
	assert.Equal(t, "CAPTURE_SUCCESS", payment.StateName)

	_, err = env.processor.CreateCapture(ctx, env.followUp(payment, "40.01"), env.cc())
	assert.ErrorIs(t, err, errs.ErrCaptureAmountExceeded)
}

func TestDirectProcessor_FastFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setup       func(t *testing.T, env *testEnv) usecase.PaymentRequest
		expectedErr error
	}{
		{
			name: "No default payment method",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				account, _ := env.addAccount(t, "USD", "")
				env.account = account
				return env.request("10.00")
			},
			expectedErr: errs.ErrNoDefaultPaymentMethod,
		},
		{
			name: "Unknown plugin",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				account, _ := env.addAccount(t, "USD", "__MISSING__")
				env.account = account
				return env.request("10.00")
			},
			expectedErr: errs.ErrUnknownPlugin,
		},
		{
			name: "Unknown account",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				req := env.request("10.00")
				req.AccountID = uuid.New()
				return req
			},
			expectedErr: errs.ErrAccountNotFound,
		},
		{
			name: "Zero amount",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				return env.request("0")
			},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name: "Too many decimal places",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				return env.request("10.001")
			},
			expectedErr: errs.ErrInvalidAmount,
		},
		{
			name: "Payment method of another account",
			setup: func(t *testing.T, env *testEnv) usecase.PaymentRequest {
				_, foreign := env.addAccount(t, "USD", pluginadapter.ScriptedPluginName)
				req := env.request("10.00")
				req.PaymentMethodID = &foreign.ID
				return req
			},
			expectedErr: errs.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := tt.setup(t, env)

			payment, err := env.processor.CreateAuthorization(ctx, req, env.cc())
			assert.Nil(t, payment)
			assert.ErrorIs(t, err, tt.expectedErr)

			payments, listErr := env.payments.GetAccountPayments(ctx, req.AccountID)
			require.NoError(t, listErr)
			assert.Empty(t, payments)
			assert.Equal(t, 0, env.gateway.TotalCalls())
		})
	}
}

func TestDirectProcessor_CurrencyMismatch(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreateAuthorization(ctx, env.request("100.00"), env.cc())
	require.NoError(t, err)

	req := env.followUp(payment, "10.00")
	req.Currency = "eur"
	_, err = env.processor.CreateCapture(ctx, req, env.cc())
	assert.ErrorIs(t, err, errs.ErrCurrencyMismatch)
	assert.Equal(t, 0, env.gateway.Calls(entity.TransactionCapture))
}

func TestDirectProcessor_OperationNotAllowed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreatePurchase(ctx, env.request("10.00"), env.cc())
	require.NoError(t, err)

	_, err = env.processor.CreateVoid(ctx, env.followUp(payment, ""), env.cc())
	assert.ErrorIs(t, err, errs.ErrOperationNotAllowed)

	view, err := env.processor.GetPayment(ctx, payment.ID, usecase.PaymentQueryOptions{})
	require.NoError(t, err)
	assert.Len(t, view.Payment.Transactions, 1)
}

func TestDirectProcessor_PluginFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("Recorded without error by default", func(t *testing.T) {
		env := newTestEnv(t)
		env.gateway.Enqueue(pluginadapter.Step{Err: errors.New("connection reset")})

		payment, err := env.processor.CreateAuthorization(ctx, env.request("10.00"), env.cc())
		require.NoError(t, err)
		assert.Equal(t, "AUTHORIZE_ERRORED", payment.StateName)
		assert.Empty(t, payment.LastSuccessStateName)
		require.Len(t, payment.Transactions, 1)
		assert.Equal(t, entity.TransactionStatusPluginFailure, payment.Transactions[0].Status)
		assert.True(t, payment.Transactions[0].ProcessedAmount.IsZero())
	})

	t.Run("Propagated on request", func(t *testing.T) {
		env := newTestEnv(t)
		env.gateway.Enqueue(pluginadapter.Step{Err: errors.New("connection reset")})

		req := env.request("10.00")
		req.PropagatePluginFailure = true
		payment, err := env.processor.CreateAuthorization(ctx, req, env.cc())

		var pluginErr *errs.PluginError
		require.ErrorAs(t, err, &pluginErr)
		assert.Equal(t, pluginadapter.ScriptedPluginName, pluginErr.PluginName)
		require.NotNil(t, payment)
		assert.Equal(t, "AUTHORIZE_ERRORED", payment.StateName)
	})

	t.Run("Unrecognized plugin status", func(t *testing.T) {
		env := newTestEnv(t)
		env.gateway.Enqueue(pluginadapter.Step{Status: "MAYBE"})

		payment, err := env.processor.CreatePurchase(ctx, env.request("10.00"), env.cc())
		require.NoError(t, err)
		assert.Equal(t, "PURCHASE_ERRORED", payment.StateName)
		assert.Equal(t, entity.TransactionStatusPluginFailure, payment.Transactions[0].Status)
	})

	t.Run("Decline", func(t *testing.T) {
		env := newTestEnv(t)
		env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})

		payment, err := env.processor.CreatePurchase(ctx, env.request("10.00"), env.cc())
		require.NoError(t, err)
		assert.Equal(t, "PURCHASE_FAILED", payment.StateName)
		tx := payment.Transactions[0]
		assert.Equal(t, entity.TransactionStatusPaymentFailure, tx.Status)
		assert.Equal(t, "DECLINED", tx.GatewayErrorCode)
	})
}

func TestDirectProcessor_RetryAfterFailureAppendsTransaction(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})

	payment, err := env.processor.CreateAuthorization(ctx, env.request("10.00"), env.cc())
	require.NoError(t, err)
	require.Equal(t, "AUTHORIZE_FAILED", payment.StateName)

	env.clock.Advance(time.Minute)
	payment, err = env.processor.CreateAuthorization(ctx, env.followUp(payment, "10.00"), env.cc())
	require.NoError(t, err)

	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.StateName)
	require.Len(t, payment.Transactions, 2)
	assert.Equal(t, entity.TransactionStatusPaymentFailure, payment.Transactions[0].Status)
	assert.Equal(t, entity.TransactionStatusSuccess, payment.Transactions[1].Status)
}

func TestDirectProcessor_FailedStateFallsBackToLastSuccess(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreateAuthorization(ctx, env.request("100.00"), env.cc())
	require.NoError(t, err)

	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusFailure})
	payment, err = env.processor.CreateCapture(ctx, env.followUp(payment, "40.00"), env.cc())
	require.NoError(t, err)
	assert.Equal(t, "CAPTURE_FAILED", payment.StateName)
	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.LastSuccessStateName)

	payment, err = env.processor.CreateVoid(ctx, env.followUp(payment, ""), env.cc())
	require.NoError(t, err)
	assert.Equal(t, "VOID_SUCCESS", payment.StateName)
	assert.True(t, payment.Amounts().IsAuthVoided)
	assert.Len(t, payment.Transactions, 3)
}

func TestDirectProcessor_TransactionsOrderedByEffectiveDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreateAuthorization(ctx, env.request("100.00"), env.cc())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		env.clock.Advance(time.Second)
		payment, err = env.processor.CreateCapture(ctx, env.followUp(payment, "10.00"), env.cc())
		require.NoError(t, err)
	}

	require.Len(t, payment.Transactions, 4)
	for i := 1; i < len(payment.Transactions); i++ {
		assert.False(t, payment.Transactions[i].EffectiveDate.Before(payment.Transactions[i-1].EffectiveDate))
	}
	assert.Equal(t, entity.TransactionAuthorize, payment.Transactions[0].TransactionType)
}

func TestDirectProcessor_PaymentExternalKeyResolvesPayment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	req := env.request("100.00")
	req.PaymentExternalKey = "order-42"
	payment, err := env.processor.CreateAuthorization(ctx, req, env.cc())
	require.NoError(t, err)
	assert.Equal(t, "order-42", payment.ExternalKey)

	capture := env.request("30.00")
	capture.PaymentExternalKey = "order-42"
	captured, err := env.processor.CreateCapture(ctx, capture, env.cc())
	require.NoError(t, err)
	assert.Equal(t, payment.ID, captured.ID)

	view, err := env.processor.GetPaymentByExternalKey(ctx, "order-42", env.account.TenantRecordID, usecase.PaymentQueryOptions{})
	require.NoError(t, err)
	assert.True(t, view.Amounts.CapturedAmount.Equal(decimal.RequireFromString("30")))
}

func TestDirectProcessor_GetPaymentWithPluginInfo(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	payment, err := env.processor.CreatePurchase(ctx, env.request("10.00"), env.cc())
	require.NoError(t, err)

	view, err := env.processor.GetPayment(ctx, payment.ID, usecase.PaymentQueryOptions{WithPluginInfo: true})
	require.NoError(t, err)
	require.Len(t, view.Payment.Transactions, 1)
	info := view.Payment.Transactions[0].PaymentInfoPlugin
	require.NotNil(t, info)
	assert.Equal(t, entity.PluginStatusSuccess, info.Status)

	_, err = env.processor.GetPayment(ctx, uuid.New(), usecase.PaymentQueryOptions{})
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
}

func TestDirectProcessor_NotifyPendingTransaction(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusPending})

	payment, err := env.processor.CreateAuthorization(ctx, env.request("10.00"), env.cc())
	require.NoError(t, err)
	require.Equal(t, "AUTHORIZE_PENDING", payment.StateName)
	txID := payment.Transactions[0].ID

	payment, err = env.processor.NotifyPendingTransactionOfStateChanged(ctx, env.account.ID, txID, true, env.cc())
	require.NoError(t, err)
	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.StateName)
	assert.Equal(t, "AUTHORIZE_SUCCESS", payment.LastSuccessStateName)
	assert.Equal(t, entity.TransactionStatusSuccess, payment.Transactions[0].Status)

	_, err = env.processor.NotifyPendingTransactionOfStateChanged(ctx, env.account.ID, txID, false, env.cc())
	assert.ErrorIs(t, err, errs.ErrTransactionNotPending)

	_, err = env.processor.NotifyPendingTransactionOfStateChanged(ctx, uuid.New(), txID, true, env.cc())
	assert.Error(t, err)
}

func TestDirectProcessor_NotifyPendingTransactionFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.gateway.Enqueue(pluginadapter.Step{Status: entity.PluginStatusPending})

	payment, err := env.processor.CreatePurchase(ctx, env.request("10.00"), env.cc())
	require.NoError(t, err)

	payment, err = env.processor.NotifyPendingTransactionOfStateChanged(ctx, env.account.ID, payment.Transactions[0].ID, false, env.cc())
	require.NoError(t, err)
	assert.Equal(t, "PURCHASE_FAILED", payment.StateName)
	assert.Equal(t, entity.TransactionStatusPaymentFailure, payment.Transactions[0].Status)
}

func TestUnwrapProcessorError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "Nil", err: nil, expected: nil},
		{name: "Business error kept", err: errs.ErrInvoiceAlreadyPaid, expected: errs.ErrInvoiceAlreadyPaid},
		{name: "Unknown error hidden", err: errors.New("disk full"), expected: errs.ErrInternalServer},
		{name: "Database error hidden", err: errs.ErrDatabaseConnection, expected: errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UnwrapProcessorError(tt.err, noopLogger(), nil)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
