package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	pluginport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/memory"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
)

var testStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires the payment automaton to in-memory adapters and a scripted gateway
type testEnv struct {
	clock      *faketime.FakeTimeProvider
	payments   *memory.PaymentRepository
	attempts   *memory.AttemptRepository
	methods    *memory.PaymentMethodRepository
	accounts   *memory.AccountStore
	plugins    *pluginadapter.Registry[pluginport.PaymentPlugin]
	gateway    *pluginadapter.ScriptedPlugin
	locker     *lock.Locker
	dispatcher *PluginDispatcher
	runner     *AutomatonRunner
	processor  *DirectProcessor
	account    *entity.Account
	method     *entity.PaymentMethod
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNoopLogger()
	env := &testEnv{
		clock:    faketime.NewFakeTimeProvider(testStart),
		payments: memory.NewPaymentRepository(),
		attempts: memory.NewAttemptRepository(),
		methods:  memory.NewPaymentMethodRepository(),
		accounts: memory.NewAccountStore(),
		plugins:  pluginadapter.NewPaymentPluginRegistry(),
		gateway:  pluginadapter.NewScriptedPlugin(entity.PluginStatusSuccess),
	}
	env.plugins.Register(pluginadapter.ScriptedPluginName, env.gateway)

	env.locker = lock.NewLocker(memory.NewAccountLockRepository(env.clock), env.clock, log, lock.DefaultConfig())
	env.dispatcher = NewPluginDispatcher(log, env.clock, 4, 2*time.Second)
	t.Cleanup(env.dispatcher.Shutdown)

	env.runner = NewAutomatonRunner(env.payments, env.methods, env.accounts, env.plugins, env.locker, env.dispatcher, env.clock, log)
	pending := NewPendingTransactionResolver(env.payments, env.locker, env.clock, log)
	env.processor = NewDirectProcessor(env.runner, env.payments, env.attempts, env.methods, env.plugins, pending, log)

	env.account, env.method = env.addAccount(t, "USD", pluginadapter.ScriptedPluginName)
	return env
}

// addAccount creates an account with a default payment method on the given plugin
func (e *testEnv) addAccount(t *testing.T, currency, pluginName string) (*entity.Account, *entity.PaymentMethod) {
	t.Helper()

	account := e.accounts.AddAccount(&entity.Account{
		ExternalKey:    uuid.NewString(),
		Currency:       currency,
		TenantRecordID: 1,
	})
	if pluginName == "" {
		return account, nil
	}

	method := entity.NewPaymentMethod(account.ID, "", pluginName, nil, e.clock.Now())
	method.AccountRecordID = account.RecordID
	method.TenantRecordID = account.TenantRecordID
	require.NoError(t, e.methods.Create(context.Background(), method))
	require.NoError(t, e.accounts.SetDefaultPaymentMethod(context.Background(), account.ID, &method.ID))

	account.PaymentMethodID = &method.ID
	return account, method
}

func (e *testEnv) request(amount string) usecase.PaymentRequest {
	req := usecase.PaymentRequest{
		AccountID:              e.account.ID,
		TransactionExternalKey: uuid.NewString(),
	}
	if amount != "" {
		d := decimal.RequireFromString(amount)
		req.Amount = &d
	}
	return req
}

func (e *testEnv) followUp(payment *entity.Payment, amount string) usecase.PaymentRequest {
	req := e.request(amount)
	req.PaymentID = &payment.ID
	return req
}

func (e *testEnv) cc() entity.CallContext {
	return entity.NewCallContext("test", "", e.account, e.clock.Now())
}

func noopLogger() coreport.Logger {
	return logger.NewNoopLogger()
}

func pluginStep(status entity.PluginStatus, delay time.Duration) pluginadapter.Step {
	return pluginadapter.Step{Status: status, Delay: delay}
}
