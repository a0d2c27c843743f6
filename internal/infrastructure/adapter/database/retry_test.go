package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
)

var retryTestConfig = RetryConfig{
	MaxRetries:    3,
	RetryInterval: 100 * time.Millisecond,
	MaxInterval:   time.Second,
}

func TestRetryOnTransientError(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Transient errors are retried until success", func(t *testing.T) {
		clock := faketime.NewFakeTimeProvider(start)
		calls := 0

		err := RetryOnTransientError(context.Background(), retryTestConfig, clock, logger.NewNoopLogger(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("read: connection reset by peer")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 300*time.Millisecond, clock.Since(start), "100ms then 200ms backoff")
	})

	t.Run("Permanent errors are returned at once", func(t *testing.T) {
		clock := faketime.NewFakeTimeProvider(start)
		calls := 0
		permanent := errors.New("syntax error at or near SELECT")

		err := RetryOnTransientError(context.Background(), retryTestConfig, clock, logger.NewNoopLogger(), func(ctx context.Context) error {
			calls++
			return permanent
		})

		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("Last error is returned when attempts run out", func(t *testing.T) {
		clock := faketime.NewFakeTimeProvider(start)
		calls := 0

		err := RetryOnTransientError(context.Background(), retryTestConfig, clock, logger.NewNoopLogger(), func(ctx context.Context) error {
			calls++
			return errors.New("deadlock detected")
		})

		assert.ErrorContains(t, err, "deadlock")
		assert.Equal(t, 3, calls)
	})

	t.Run("Canceled context stops the retries", func(t *testing.T) {
		clock := faketime.NewFakeTimeProvider(start)
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := RetryOnTransientError(ctx, retryTestConfig, clock, logger.NewNoopLogger(), func(ctx context.Context) error {
			calls++
			cancel()
			return errors.New("connection refused")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: 250 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 200*time.Millisecond, calculateBackoffWithJitter(1, config))
	assert.Equal(t, 250*time.Millisecond, calculateBackoffWithJitter(5, config), "capped")

	config.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, config)
	assert.GreaterOrEqual(t, backoff, 100*time.Millisecond)
	assert.LessOrEqual(t, backoff, 150*time.Millisecond)
}
