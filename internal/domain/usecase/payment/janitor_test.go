package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
)

// infoPlugin reports a fixed status for every transaction it is asked about
type infoPlugin struct {
	*pluginadapter.ScriptedPlugin
	status entity.PluginStatus
	known  map[uuid.UUID]bool
}

func (p *infoPlugin) GetPaymentInfo(ctx context.Context, accountID, paymentID uuid.UUID, properties map[string]any) ([]*entity.PluginResult, error) {
	var out []*entity.PluginResult
	for id := range p.known {
		out = append(out, &entity.PluginResult{
			TransactionID:   id,
			Status:          p.status,
			ProcessedAmount: decimal.RequireFromString("10"),
		})
	}
	return out, nil
}

// seedUnknownTransaction stores a payment whose only transaction never completed
func seedUnknownTransaction(t *testing.T, env *testEnv, method *entity.PaymentMethod) (*entity.Payment, *entity.PaymentTransaction) {
	t.Helper()

	now := env.clock.Now()
	payment := &entity.Payment{
		ID:              uuid.New(),
		AccountID:       env.account.ID,
		PaymentMethodID: method.ID,
		ExternalKey:     uuid.NewString(),
		StateName:       InitialState,
		CreatedDate:     now,
		UpdatedDate:     now,
		TenantRecordID:  env.account.TenantRecordID,
	}
	tx, err := entity.NewUnknownTransaction(payment.ID, uuid.NewString(), entity.TransactionAuthorize,
		decimal.RequireFromString("10"), "USD", now, now)
	require.NoError(t, err)
	tx.TenantRecordID = env.account.TenantRecordID

	_, err = env.payments.CreatePaymentWithFirstTransaction(context.Background(), payment, tx)
	require.NoError(t, err)
	return payment, tx
}

func TestJanitor_Sweep(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		gatewayStatus  entity.PluginStatus
		gatewayKnows   bool
		expectedStatus entity.TransactionStatus
		expectedState  string
	}{
		{
			name:           "Gateway has no record",
			expectedStatus: entity.TransactionStatusPluginFailure,
			expectedState:  "AUTHORIZE_ERRORED",
		},
		{
			name:           "Gateway confirms success",
			gatewayStatus:  entity.PluginStatusSuccess,
			gatewayKnows:   true,
			expectedStatus: entity.TransactionStatusSuccess,
			expectedState:  "AUTHORIZE_SUCCESS",
		},
		{
			name:           "Gateway reports decline",
			gatewayStatus:  entity.PluginStatusFailure,
			gatewayKnows:   true,
			expectedStatus: entity.TransactionStatusPaymentFailure,
			expectedState:  "AUTHORIZE_FAILED",
		},
		{
			name:           "Gateway reports error",
			gatewayStatus:  entity.PluginStatusError,
			gatewayKnows:   true,
			expectedStatus: entity.TransactionStatusPluginFailure,
			expectedState:  "AUTHORIZE_ERRORED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			gateway := &infoPlugin{
				ScriptedPlugin: pluginadapter.NewScriptedPlugin(entity.PluginStatusSuccess),
				status:         tt.gatewayStatus,
				known:          make(map[uuid.UUID]bool),
			}
			env.plugins.Register("__INFO__", gateway)
			method := entity.NewPaymentMethod(env.account.ID, "", "__INFO__", nil, env.clock.Now())
			require.NoError(t, env.methods.Create(ctx, method))

			payment, tx := seedUnknownTransaction(t, env, method)
			if tt.gatewayKnows {
				gateway.known[tx.ID] = true
			}

			janitor := NewJanitor(env.payments, env.methods, env.plugins, env.locker, env.clock, noopLogger(), DefaultJanitorConfig())

			resolved, err := janitor.Sweep(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, resolved, "fresh transactions are left alone")

			env.clock.Advance(10 * time.Minute)
			resolved, err = janitor.Sweep(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, resolved)

			view, err := env.processor.GetPayment(ctx, payment.ID, usecase.PaymentQueryOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedState, view.Payment.StateName)
			assert.Equal(t, tt.expectedStatus, view.Payment.Transactions[0].Status)

			resolved, err = janitor.Sweep(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, resolved)
		})
	}
}

func TestJanitor_RunStopsOnCancel(t *testing.T) {
	env := newTestEnv(t)
	janitor := NewJanitor(env.payments, env.methods, env.plugins, env.locker, env.clock, noopLogger(), DefaultJanitorConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, janitor.Run(ctx))
}
