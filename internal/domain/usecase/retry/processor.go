package retry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/usecase/payment"
)

// RetryServiceUserName is recorded on the call context of redelivered retries
const RetryServiceUserName = "PaymentRetryService"

// PluginControlledProcessor runs payment transactions through the retry automaton
type PluginControlledProcessor struct {
	runner   *AutomatonRunner
	attempts persistence.PaymentAttemptRepository
	logger   coreport.Logger
}

var _ usecase.PluginControlledPaymentProcessor = (*PluginControlledProcessor)(nil)

// NewPluginControlledProcessor creates a new PluginControlledProcessor
func NewPluginControlledProcessor(
	runner *AutomatonRunner,
	attempts persistence.PaymentAttemptRepository,
	logger coreport.Logger,
) *PluginControlledProcessor {
	return &PluginControlledProcessor{runner: runner, attempts: attempts, logger: logger}
}

// CreateAuthorization authorizes an amount under the given retry policies
func (p *PluginControlledProcessor) CreateAuthorization(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionAuthorize, req, pluginNames, cc)
}

// CreateCapture captures an authorization under the given retry policies
func (p *PluginControlledProcessor) CreateCapture(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionCapture, req, pluginNames, cc)
}

// CreatePurchase authorizes and captures under the given retry policies
func (p *PluginControlledProcessor) CreatePurchase(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionPurchase, req, pluginNames, cc)
}

// CreateVoid cancels an authorization under the given retry policies
func (p *PluginControlledProcessor) CreateVoid(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionVoid, req, pluginNames, cc)
}

// CreateRefund refunds under the given retry policies
func (p *PluginControlledProcessor) CreateRefund(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionRefund, req, pluginNames, cc)
}

// CreateCredit credits the account under the given retry policies
func (p *PluginControlledProcessor) CreateCredit(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error) {
	return p.process(ctx, entity.TransactionCredit, req, pluginNames, cc)
}

// GetAttempts lists the retry attempts recorded for a payment external key
func (p *PluginControlledProcessor) GetAttempts(ctx context.Context, paymentExternalKey string, tenantRecordID int64) ([]*entity.PaymentAttempt, error) {
	attempts, err := p.attempts.GetByPaymentExternalKey(ctx, paymentExternalKey, tenantRecordID)
	if err != nil {
		return nil, payment.UnwrapProcessorError(err, p.logger, map[string]any{"payment_external_key": paymentExternalKey})
	}
	return attempts, nil
}

func (p *PluginControlledProcessor) process(
	ctx context.Context,
	transactionType entity.TransactionType,
	req usecase.PaymentRequest,
	pluginNames []string,
	cc entity.CallContext,
) (*entity.Payment, error) {
	result, err := p.runner.Run(ctx, RunRequest{
		TransactionType:        transactionType,
		AccountID:              req.AccountID,
		PaymentID:              req.PaymentID,
		PaymentMethodID:        req.PaymentMethodID,
		PaymentExternalKey:     req.PaymentExternalKey,
		TransactionExternalKey: req.TransactionExternalKey,
		Amount:                 req.Amount,
		Currency:               req.Currency,
		Properties:             req.Properties,
		PluginNames:            pluginNames,
		CallContext:            cc,
	})

	var paid *entity.Payment
	if result != nil {
		paid = result.Payment
	}
	if err != nil {
		return paid, payment.UnwrapProcessorError(err, p.logger, map[string]any{
			"account_id":               req.AccountID.String(),
			"transaction_type":         string(transactionType),
			"transaction_external_key": req.TransactionExternalKey,
		})
	}
	return paid, nil
}

// RetryableProcessor re-drives attempts scheduled for retry
//
// It is the handler of the payment-retry notification queue.
type RetryableProcessor struct {
	runner       *AutomatonRunner
	attempts     persistence.PaymentAttemptRepository
	accounts     external.AccountLookup
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var (
	_ usecase.RetryableProcessor  = (*RetryableProcessor)(nil)
	_ usecase.NotificationHandler = (*RetryableProcessor)(nil)
)

// NewRetryableProcessor creates a new RetryableProcessor
func NewRetryableProcessor(
	runner *AutomatonRunner,
	attempts persistence.PaymentAttemptRepository,
	accounts external.AccountLookup,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *RetryableProcessor {
	return &RetryableProcessor{
		runner:       runner,
		attempts:     attempts,
		accounts:     accounts,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RetryPaymentTransaction runs a RETRIED attempt again from INIT
//
// A delivery for an attempt that is no longer RETRIED is a duplicate and is ignored.
// Business failures end the attempt; other errors put it back to RETRIED and are
// returned so the delivery is retried.
func (p *RetryableProcessor) RetryPaymentTransaction(ctx context.Context, attemptID uuid.UUID, pluginNames []string, cc entity.CallContext) error {
	attempt, err := p.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return err
	}

	moved, err := p.attempts.CompareAndSetState(ctx, attempt.ID, entity.AttemptStateRetried, entity.AttemptStateInit)
	if err != nil {
		return err
	}
	if !moved {
		p.logger.Info("Ignoring duplicate retry delivery", map[string]any{
			"attempt_id": attempt.ID.String(),
			"state":      attempt.StateName,
		})
		return nil
	}

	attempt.StateName = entity.AttemptStateInit
	if len(pluginNames) > 0 {
		attempt.PluginNames = pluginNames
	}

	result, err := p.runner.Run(ctx, RunRequest{
		TransactionType: attempt.TransactionType,
		AccountID:       attempt.AccountID,
		PluginNames:     attempt.PluginNames,
		CallContext:     cc,
		Attempt:         attempt,
	})
	if err == nil {
		p.logger.Info("Payment retried", map[string]any{
			"attempt_id": attempt.ID.String(),
			"state":      result.State,
		})
		return nil
	}

	if errs.IsBusinessError(err) && !errs.IsAccountLockedError(err) {
		p.logger.Info("Payment retry ended", map[string]any{
			"attempt_id": attempt.ID.String(),
			"error":      err.Error(),
		})
		return nil
	}

	if _, casErr := p.attempts.CompareAndSetState(ctx, attempt.ID, entity.AttemptStateInit, entity.AttemptStateRetried); casErr != nil {
		p.logger.Error("Failed to reschedule payment attempt", map[string]any{
			"attempt_id": attempt.ID.String(),
			"error":      casErr.Error(),
		})
	}
	return fmt.Errorf("retry attempt %s: %w", attempt.ID, err)
}

// HandleReadyNotification decodes a payment-retry notification and re-drives its attempt
func (p *RetryableProcessor) HandleReadyNotification(
	ctx context.Context,
	event []byte,
	eventDateTime time.Time,
	userToken uuid.UUID,
	accountRecordID int64,
	tenantRecordID int64,
) error {
	var payload Event
	if err := json.Unmarshal(event, &payload); err != nil {
		return fmt.Errorf("%w: decode retry event: %v", errs.ErrInvalidRequest, err)
	}
	attemptID, err := uuid.Parse(payload.AttemptID)
	if err != nil {
		return fmt.Errorf("%w: retry event attempt id %q", errs.ErrInvalidRequest, payload.AttemptID)
	}

	account, err := p.accounts.GetAccountByRecordID(ctx, accountRecordID)
	if err != nil {
		return err
	}

	cc := entity.CallContext{
		UserToken:       userToken,
		UserName:        RetryServiceUserName,
		Reason:          "scheduled payment retry",
		AccountRecordID: account.RecordID,
		TenantRecordID:  tenantRecordID,
		CreatedDate:     p.timeProvider.Now(),
	}

	p.logger.Debug("Handling payment retry notification", map[string]any{
		"attempt_id":      attemptID.String(),
		"account_id":      account.ID.String(),
		"event_date_time": eventDateTime.Format(time.RFC3339),
	})
	return p.RetryPaymentTransaction(ctx, attemptID, payload.PluginNames, cc)
}
