package payment

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/lock"
)

// JanitorConfig holds the settings of the UNKNOWN transaction sweep
type JanitorConfig struct {
	Interval  time.Duration
	Threshold time.Duration // minimum age of a transaction before it is swept
	BatchSize int
}

// DefaultJanitorConfig returns the default sweep settings
func DefaultJanitorConfig() JanitorConfig {
	return JanitorConfig{
		Interval:  time.Minute,
		Threshold: 5 * time.Minute,
		BatchSize: 100,
	}
}

// Janitor resolves transactions left UNKNOWN by a crash between the write-ahead and the completion
type Janitor struct {
	dao          *daoHelper
	methods      persistence.PaymentMethodRepository
	plugins      plugin.PaymentPluginRegistry
	locker       *lock.Locker
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       JanitorConfig
}

// NewJanitor creates a new Janitor
func NewJanitor(
	payments persistence.PaymentRepository,
	methods persistence.PaymentMethodRepository,
	plugins plugin.PaymentPluginRegistry,
	locker *lock.Locker,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config JanitorConfig,
) *Janitor {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultJanitorConfig().BatchSize
	}
	return &Janitor{
		dao:          newDaoHelper(payments, logger),
		methods:      methods,
		plugins:      plugins,
		locker:       locker,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// Run sweeps every interval until ctx is canceled
func (j *Janitor) Run(ctx context.Context) error {
	j.logger.Info("Janitor started", map[string]any{
		"interval":  j.config.Interval.String(),
		"threshold": j.config.Threshold.String(),
	})

	for {
		if _, err := j.Sweep(ctx); err != nil && ctx.Err() == nil {
			j.logger.Error("Janitor sweep failed", map[string]any{"error": err.Error()})
		}
		if err := j.timeProvider.Sleep(ctx, j.config.Interval); err != nil {
			j.logger.Info("Janitor stopped", nil)
			return nil
		}
	}
}

// Sweep resolves one batch of stale UNKNOWN transactions and returns how many were updated
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	cutoff := j.timeProvider.Now().Add(-j.config.Threshold)
	stale, err := j.dao.repo.GetTransactionsByStatus(ctx, entity.TransactionStatusUnknown, cutoff, j.config.BatchSize)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, tx := range stale {
		if ctx.Err() != nil {
			return resolved, ctx.Err()
		}

		updated, err := j.resolve(ctx, tx)
		if err != nil {
			j.logger.Warn("Failed to resolve UNKNOWN transaction", map[string]any{
				"transaction_id": tx.ID.String(),
				"payment_id":     tx.PaymentID.String(),
				"error":          err.Error(),
			})
			continue
		}
		if updated {
			resolved++
		}
	}

	if resolved > 0 {
		j.logger.Info("Janitor sweep finished", map[string]any{
			"candidates": len(stale),
			"resolved":   resolved,
		})
	}
	return resolved, nil
}

func (j *Janitor) resolve(ctx context.Context, stale *entity.PaymentTransaction) (bool, error) {
	payment, err := j.dao.getPayment(ctx, stale.PaymentID)
	if err != nil {
		return false, err
	}

	updated := false
	err = j.locker.WithAccountLock(ctx, payment.AccountID, func(ctx context.Context) error {
		// reload under the lock, a running transaction may have completed it
		payment, err := j.dao.getPayment(ctx, stale.PaymentID)
		if err != nil {
			return err
		}
		tx := payment.FindTransaction(stale.ID)
		if tx == nil || tx.Status != entity.TransactionStatusUnknown {
			return nil
		}

		status, info := j.gatewayStatus(ctx, payment, tx)
		tx.ApplyResult(status, info, j.timeProvider.Now())

		stateName := payment.StateName
		lastSuccessState := ""
		if last := payment.LastTransaction(); last != nil && last.ID == tx.ID {
			stateName = StateNameFor(tx.TransactionType, OutcomeForStatus(tx.Status))
			if tx.IsSuccess() {
				lastSuccessState = stateName
			}
		}

		if err := j.dao.updateOnCompletion(ctx, payment.ID, stateName, lastSuccessState, tx); err != nil {
			return err
		}

		j.logger.Info("UNKNOWN transaction resolved", map[string]any{
			"payment_id":     payment.ID.String(),
			"transaction_id": tx.ID.String(),
			"status":         string(tx.Status),
			"state":          stateName,
		})
		updated = true
		return nil
	})
	return updated, err
}

// gatewayStatus asks the plugin what happened to the transaction
// Anything the gateway cannot confirm is recorded as a plugin failure.
func (j *Janitor) gatewayStatus(ctx context.Context, payment *entity.Payment, tx *entity.PaymentTransaction) (entity.PaymentStatus, *entity.PluginResult) {
	method, err := j.methods.GetByID(ctx, payment.PaymentMethodID, true)
	if err != nil {
		return entity.PaymentStatusPluginFailure, nil
	}
	gateway, err := j.plugins.Get(method.PluginName)
	if err != nil {
		return entity.PaymentStatusPluginFailure, nil
	}

	infos, err := gateway.GetPaymentInfo(ctx, payment.AccountID, payment.ID, nil)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			j.logger.Debug("Plugin could not report payment info", map[string]any{
				"plugin_name": method.PluginName,
				"payment_id":  payment.ID.String(),
				"error":       err.Error(),
			})
		}
		return entity.PaymentStatusPluginFailure, nil
	}

	for _, info := range infos {
		if info.TransactionID != tx.ID {
			continue
		}
		switch status := info.ToPaymentStatus(); status {
		case entity.PaymentStatusSuccess, entity.PaymentStatusPending, entity.PaymentStatusPaymentFailureAborted:
			return status, info
		}
	}
	return entity.PaymentStatusPluginFailure, nil
}
