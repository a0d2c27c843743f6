package retry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	pluginport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/memory"
	pluginadapter "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/plugin"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
)

var testStart = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	clock         *faketime.FakeTimeProvider
	payments      *memory.PaymentRepository
	attempts      *memory.AttemptRepository
	accounts      *memory.AccountStore
	notifications *memory.NotificationQueue
	gateway       *pluginadapter.ScriptedPlugin
	retryPlugins  *pluginadapter.Registry[pluginport.RetryPolicyPlugin]
	controlled    *PluginControlledProcessor
	retryable     *RetryableProcessor
	account       *entity.Account
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNoopLogger()
	env := &testEnv{
		clock:         faketime.NewFakeTimeProvider(testStart),
		payments:      memory.NewPaymentRepository(),
		attempts:      memory.NewAttemptRepository(),
		accounts:      memory.NewAccountStore(),
		notifications: memory.NewNotificationQueue(),
		gateway:       pluginadapter.NewScriptedPlugin(entity.PluginStatusSuccess),
		retryPlugins:  pluginadapter.NewRetryPluginRegistry(),
	}

	methods := memory.NewPaymentMethodRepository()
	paymentPlugins := pluginadapter.NewPaymentPluginRegistry()
	paymentPlugins.Register(pluginadapter.ScriptedPluginName, env.gateway)

	locker := lock.NewLocker(memory.NewAccountLockRepository(env.clock), env.clock, log, lock.DefaultConfig())
	dispatcher := payment.NewPluginDispatcher(log, env.clock, 4, 2*time.Second)
	t.Cleanup(dispatcher.Shutdown)

	paymentRunner := payment.NewAutomatonRunner(env.payments, methods, env.accounts, paymentPlugins, locker, dispatcher, env.clock, log)
	uow := memory.NewUnitOfWork(env.payments, env.attempts, env.notifications)
	runner := NewAutomatonRunner(paymentRunner, env.payments, env.attempts, uow, env.accounts, env.accounts, env.retryPlugins, locker, env.clock, log)

	env.controlled = NewPluginControlledProcessor(runner, env.attempts, log)
	env.retryable = NewRetryableProcessor(runner, env.attempts, env.accounts, env.clock, log)

	env.account = env.accounts.AddAccount(&entity.Account{
		ExternalKey:    uuid.NewString(),
		Currency:       "USD",
		TenantRecordID: 1,
	})
	method := entity.NewPaymentMethod(env.account.ID, "", pluginadapter.ScriptedPluginName, nil, env.clock.Now())
	method.AccountRecordID = env.account.RecordID
	method.TenantRecordID = env.account.TenantRecordID
	require.NoError(t, methods.Create(context.Background(), method))
	require.NoError(t, env.accounts.SetDefaultPaymentMethod(context.Background(), env.account.ID, &method.ID))
	env.account.PaymentMethodID = &method.ID

	return env
}

func (e *testEnv) request(amount string) usecase.PaymentRequest {
	d := decimal.RequireFromString(amount)
	return usecase.PaymentRequest{
		AccountID:              e.account.ID,
		TransactionExternalKey: uuid.NewString(),
		Amount:                 &d,
	}
}

func (e *testEnv) cc() entity.CallContext {
	return entity.NewCallContext("test", "", e.account, e.clock.Now())
}

// deliver hands a queued notification to the retry handler the way the poller does
func (e *testEnv) deliver(t *testing.T, n *entity.Notification) error {
	t.Helper()
	return e.retryable.HandleReadyNotification(context.Background(), n.Event, n.EffectiveDate,
		n.UserToken, n.AccountRecordID, n.TenantRecordID)
}

func (e *testEnv) onlyAttempt(t *testing.T, paymentExternalKey string) *entity.PaymentAttempt {
	t.Helper()
	attempts, err := e.controlled.GetAttempts(context.Background(), paymentExternalKey, e.account.TenantRecordID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	return attempts[0]
}

// stubPolicy answers the retry protocol with fixed values
type stubPolicy struct {
	aborted    bool
	abortedErr error
	next       *time.Time
	nextErr    error
}

func (s *stubPolicy) IsRetryAborted(ctx context.Context, transactionExternalKey string) (bool, error) {
	return s.aborted, s.abortedErr
}

func (s *stubPolicy) GetNextRetryDate(ctx context.Context, transactionExternalKey string) (*time.Time, error) {
	return s.next, s.nextErr
}

func at(d time.Duration) *time.Time {
	t := testStart.Add(d)
	return &t
}
