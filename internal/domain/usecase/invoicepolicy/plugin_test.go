package invoicepolicy

import (
	"context"
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
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	coremocks "github.com/amirhossein-jamali/payment-engine/mocks/port/core"
	externalmocks "github.com/amirhossein-jamali/payment-engine/mocks/port/external"
	persistencemocks "github.com/amirhossein-jamali/payment-engine/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func transactions(statuses ...entity.TransactionStatus) []*entity.PaymentTransaction {
	out := make([]*entity.PaymentTransaction, len(statuses))
	for i, s := range statuses {
		out[i] = &entity.PaymentTransaction{ID: uuid.New(), ExternalKey: "tx-key", Status: s}
	}
	return out
}

func withTenant(tenant int64) context.Context {
	return entity.ContextWithCallContext(context.Background(), entity.CallContext{TenantRecordID: tenant})
}

func TestPlugin_GetNextRetryDate(t *testing.T) {
	config := Config{
		PluginFailureSeed:        10 * time.Minute,
		PluginFailureMultiplier:  3,
		PluginFailureMaxAttempts: 2,
		PaymentFailureRetryDays:  []int{1, 3},
	}

	tests := []struct {
		name     string
		history  []*entity.PaymentTransaction
		expected *time.Time
	}{
		{
			name:     "no transaction",
			history:  nil,
			expected: nil,
		},
		{
			name:     "first payment failure",
			history:  transactions(entity.TransactionStatusPaymentFailure),
			expected: ptr(fixedTime.AddDate(0, 0, 1)),
		},
		{
			name:     "second payment failure",
			history:  transactions(entity.TransactionStatusPaymentFailure, entity.TransactionStatusPaymentFailure),
			expected: ptr(fixedTime.AddDate(0, 0, 3)),
		},
		{
			name: "payment failures exhausted",
			history: transactions(entity.TransactionStatusPaymentFailure, entity.TransactionStatusPaymentFailure,
				entity.TransactionStatusPaymentFailure),
			expected: nil,
		},
		{
			name:     "first plugin failure uses the seed",
			history:  transactions(entity.TransactionStatusPluginFailure),
			expected: ptr(fixedTime.Add(10 * time.Minute)),
		},
		{
			name:     "second plugin failure is multiplied",
			history:  transactions(entity.TransactionStatusPaymentFailure, entity.TransactionStatusPluginFailure, entity.TransactionStatusPluginFailure),
			expected: ptr(fixedTime.Add(30 * time.Minute)),
		},
		{
			name: "plugin failures exhausted",
			history: transactions(entity.TransactionStatusPluginFailure, entity.TransactionStatusPluginFailure,
				entity.TransactionStatusPluginFailure),
			expected: nil,
		},
		{
			name:     "last transaction succeeded",
			history:  transactions(entity.TransactionStatusPaymentFailure, entity.TransactionStatusSuccess),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := persistencemocks.NewMockPaymentRepository(t)
			mockTime := coremocks.NewMockTimeProvider(t)
			mockLogger := coremocks.NewMockLogger(t)

			mockRepo.EXPECT().GetTransactionsByExternalKey(mock.Anything, "tx-key", int64(7)).Return(tt.history, nil).Times(2)
			mockTime.EXPECT().Now().Return(fixedTime).Maybe()

			p := NewPlugin(mockRepo, externalmocks.NewMockInvoiceLookup(t), mockTime, mockLogger, config)

			next, err := p.GetNextRetryDate(withTenant(7), "tx-key")
			require.NoError(t, err)

			aborted, err := p.IsRetryAborted(withTenant(7), "tx-key")
			require.NoError(t, err)

			if tt.expected == nil {
				assert.Nil(t, next)
				assert.True(t, aborted)
				return
			}
			require.NotNil(t, next)
			assert.True(t, tt.expected.Equal(*next), "expected %v, got %v", tt.expected, next)
			assert.False(t, aborted)
		})
	}
}

func TestPlugin_GetNextRetryDate_Errors(t *testing.T) {
	t.Run("Missing call context", func(t *testing.T) {
		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), externalmocks.NewMockInvoiceLookup(t),
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		next, err := p.GetNextRetryDate(context.Background(), "tx-key")

		assert.Nil(t, next)
		assert.ErrorIs(t, err, errs.ErrPluginUnavailable)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockPaymentRepository(t)
		mockRepo.EXPECT().GetTransactionsByExternalKey(mock.Anything, "tx-key", int64(1)).
			Return(nil, errs.ErrDatabaseConnection).Once()

		p := NewPlugin(mockRepo, externalmocks.NewMockInvoiceLookup(t),
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		aborted, err := p.IsRetryAborted(withTenant(1), "tx-key")

		assert.False(t, aborted)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestPlugin_PriorCall(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()
	invoiceID := uuid.New()

	priorCall := func(transactionType entity.TransactionType, amount string, properties map[string]any) plugin.PriorCallContext {
		return plugin.PriorCallContext{
			AccountID:              accountID,
			TransactionExternalKey: "tx-key",
			TransactionType:        transactionType,
			Amount:                 decimal.RequireFromString(amount),
			Currency:               "USD",
			Properties:             properties,
		}
	}
	invoiceProps := map[string]any{PropertyInvoiceID: invoiceID.String()}

	t.Run("Other transaction types pass through", func(t *testing.T) {
		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), externalmocks.NewMockInvoiceLookup(t),
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionRefund, "10", invoiceProps))

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("Payment without invoice passes through", func(t *testing.T) {
		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), externalmocks.NewMockInvoiceLookup(t),
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionPurchase, "10", nil))

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("Paid invoice aborts", func(t *testing.T) {
		mockInvoices := externalmocks.NewMockInvoiceLookup(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockInvoices.EXPECT().ConsumeExistingCredit(mock.Anything, accountID).Return(nil).Once()
		mockInvoices.EXPECT().GetInvoiceBalance(mock.Anything, invoiceID).Return(decimal.Zero, nil).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), mockInvoices,
			coremocks.NewMockTimeProvider(t), mockLogger, DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionPurchase, "10", invoiceProps))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.Aborted)
		require.NotNil(t, res.AdjustedAmount)
		assert.True(t, res.AdjustedAmount.IsZero())
		assert.ErrorIs(t, res.Reason, errs.ErrInvoiceAlreadyPaid)
	})

	t.Run("Amount above balance is clamped", func(t *testing.T) {
		mockInvoices := externalmocks.NewMockInvoiceLookup(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockInvoices.EXPECT().ConsumeExistingCredit(mock.Anything, accountID).Return(nil).Once()
		mockInvoices.EXPECT().GetInvoiceBalance(mock.Anything, invoiceID).Return(decimal.RequireFromString("12.50"), nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), mockInvoices,
			coremocks.NewMockTimeProvider(t), mockLogger, DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionAuthorize, "20", map[string]any{PropertyInvoiceID: invoiceID}))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, res.Aborted)
		require.NotNil(t, res.AdjustedAmount)
		assert.Equal(t, "12.5", res.AdjustedAmount.String())
	})

	t.Run("Amount within balance is kept", func(t *testing.T) {
		mockInvoices := externalmocks.NewMockInvoiceLookup(t)

		mockInvoices.EXPECT().ConsumeExistingCredit(mock.Anything, accountID).Return(nil).Once()
		mockInvoices.EXPECT().GetInvoiceBalance(mock.Anything, invoiceID).Return(decimal.RequireFromString("50"), nil).Once()

		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), mockInvoices,
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionPurchase, "20", invoiceProps))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, res.Aborted)
		assert.Nil(t, res.AdjustedAmount)
	})

	t.Run("Unknown invoice aborts", func(t *testing.T) {
		mockInvoices := externalmocks.NewMockInvoiceLookup(t)

		mockInvoices.EXPECT().ConsumeExistingCredit(mock.Anything, accountID).Return(nil).Once()
		mockInvoices.EXPECT().GetInvoiceBalance(mock.Anything, invoiceID).Return(decimal.Zero, errs.ErrInvoiceNotFound).Once()

		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), mockInvoices,
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionPurchase, "20", invoiceProps))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.Aborted)
		assert.ErrorIs(t, res.Reason, errs.ErrAbortedByControlPlugin)
	})

	t.Run("Credit failure is returned", func(t *testing.T) {
		mockInvoices := externalmocks.NewMockInvoiceLookup(t)
		creditErr := errors.New("invoice service down")

		mockInvoices.EXPECT().ConsumeExistingCredit(mock.Anything, accountID).Return(creditErr).Once()

		p := NewPlugin(persistencemocks.NewMockPaymentRepository(t), mockInvoices,
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t), DefaultConfig())

		res, err := p.PriorCall(ctx, priorCall(entity.TransactionPurchase, "20", invoiceProps))

		assert.Nil(t, res)
		assert.ErrorIs(t, err, creditErr)
	})
}

func ptr(t time.Time) *time.Time {
	return &t
}
