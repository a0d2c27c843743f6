package payment

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
)

func TestNewPluginDispatcher(t *testing.T) {
	clock := faketime.NewFakeTimeProvider(testStart)

	t.Run("Valid pool size", func(t *testing.T) {
		d := NewPluginDispatcher(noopLogger(), clock, 2, time.Second)
		defer d.Shutdown()
		assert.NotNil(t, d)
	})

	t.Run("Invalid pool size panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewPluginDispatcher(noopLogger(), clock, 0, time.Second)
		})
	})
}

func TestPluginDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	clock := faketime.NewFakeTimeProvider(testStart)

	tests := []struct {
		name           string
		timeout        time.Duration
		call           PluginCallFunc
		expectedStatus entity.PluginStatus
		expectedErr    error
	}{
		{
			name:    "Result returned",
			timeout: time.Second,
			call: func(ctx context.Context) (*entity.PluginResult, error) {
				return &entity.PluginResult{Status: entity.PluginStatusSuccess}, nil
			},
			expectedStatus: entity.PluginStatusSuccess,
		},
		{
			name:    "Plugin error returned",
			timeout: time.Second,
			call: func(ctx context.Context) (*entity.PluginResult, error) {
				return nil, errors.New("gateway unavailable")
			},
		},
		{
			name:    "Slow plugin times out",
			timeout: 20 * time.Millisecond,
			call: func(ctx context.Context) (*entity.PluginResult, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			expectedErr: errs.ErrPluginTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewPluginDispatcher(noopLogger(), clock, 1, tt.timeout)
			defer d.Shutdown()

			result, err := d.Dispatch(ctx, "test", tt.call)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}
			if tt.expectedStatus == "" {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, result.Status)
		})
	}
}

func TestPluginDispatcher_CallerCancellation(t *testing.T) {
	clock := faketime.NewFakeTimeProvider(testStart)
	d := NewPluginDispatcher(noopLogger(), clock, 1, time.Minute)
	defer d.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Dispatch(ctx, "test", func(ctx context.Context) (*entity.PluginResult, error) {
		return &entity.PluginResult{Status: entity.PluginStatusSuccess}, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, errs.ErrPluginTimeout)
}

func TestPluginDispatcher_Shutdown(t *testing.T) {
	clock := faketime.NewFakeTimeProvider(testStart)
	d := NewPluginDispatcher(noopLogger(), clock, 2, time.Second)

	var completed atomic.Int32
	_, err := d.Dispatch(context.Background(), "test", func(ctx context.Context) (*entity.PluginResult, error) {
		completed.Add(1)
		return &entity.PluginResult{Status: entity.PluginStatusSuccess}, nil
	})
	require.NoError(t, err)

	d.Shutdown()
	d.Shutdown() // second call is a no-op

	_, err = d.Dispatch(context.Background(), "test", func(ctx context.Context) (*entity.PluginResult, error) {
		completed.Add(1)
		return nil, nil
	})
	assert.ErrorIs(t, err, errs.ErrDispatcherClosed)
	assert.Equal(t, int32(1), completed.Load())
}

func TestPluginDispatcher_TimeoutRecordedAsPluginFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.dispatcher = NewPluginDispatcher(noopLogger(), env.clock, 1, 20*time.Millisecond)
	t.Cleanup(env.dispatcher.Shutdown)
	env.runner.dispatcher = env.dispatcher
	env.gateway.Enqueue(pluginStep(entity.PluginStatusSuccess, time.Second))

	req := env.request("10.00")
	req.PropagatePluginFailure = true
	payment, err := env.processor.CreateAuthorization(ctx, req, env.cc())

	assert.ErrorIs(t, err, errs.ErrPluginTimeout)
	require.NotNil(t, payment)
	assert.Equal(t, "AUTHORIZE_ERRORED", payment.StateName)
	assert.Equal(t, entity.TransactionStatusPluginFailure, payment.Transactions[0].Status)
}
