package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/repository"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnError runs the operation until it succeeds, fails with an error shouldRetry rejects,
// or runs out of attempts
func RetryOnError(
	ctx context.Context,
	config RetryConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	shouldRetry func(error) bool,
	operation func(ctx context.Context) error,
) error {
	var err error
	attempts := max(config.MaxRetries, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		err = operation(ctx)
		if err == nil {
			return nil
		}
		if !shouldRetry(err) || attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		if sleepErr := timeProvider.Sleep(ctx, backoff); sleepErr != nil {
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    sleepErr.Error(),
			})
			return sleepErr
		}
	}

	return err
}

// RetryOnTransientError retries an operation when the error classifier reports a transient error
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	operation func(ctx context.Context) error,
) error {
	classifier := repository.NewErrorClassifier()
	return RetryOnError(ctx, config, timeProvider, logger, func(err error) bool {
		return classifier.IsTransientError(err) || classifier.IsLockError(err)
	}, operation)
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
