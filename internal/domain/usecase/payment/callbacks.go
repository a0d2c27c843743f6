package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/plugin"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/statemachine"
)

// pluginCall invokes the plugin method matching one transaction type
type pluginCall func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error)

// pluginCalls is the closed set of operation strategies
var pluginCalls = map[entity.TransactionType]pluginCall{
	entity.TransactionAuthorize: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.AuthorizePayment(ctx, req)
	},
	entity.TransactionCapture: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.CapturePayment(ctx, req)
	},
	entity.TransactionPurchase: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.PurchasePayment(ctx, req)
	},
	entity.TransactionVoid: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.VoidPayment(ctx, req)
	},
	entity.TransactionRefund: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.RefundPayment(ctx, req)
	},
	entity.TransactionCredit: func(ctx context.Context, p plugin.PaymentPlugin, req plugin.PaymentRequest) (*entity.PluginResult, error) {
		return p.CreditPayment(ctx, req)
	},
}

// leavingCallback writes the UNKNOWN transaction before the plugin is called
type leavingCallback struct {
	runner *AutomatonRunner
	sc     *stateContext
}

// LeavingState implements statemachine.LeavingStateCallback
func (c *leavingCallback) LeavingState(ctx context.Context, state string) error {
	sc := c.sc
	now := c.runner.timeProvider.Now()

	paymentID := uuid.New()
	if sc.payment != nil {
		paymentID = sc.payment.ID
	}

	tx, err := entity.NewUnknownTransaction(
		paymentID,
		sc.request.TransactionExternalKey,
		sc.request.TransactionType,
		sc.amount,
		sc.currency,
		now,
		now,
	)
	if err != nil {
		return err
	}
	tx.AttemptID = sc.request.AttemptID
	tx.AccountRecordID = sc.account.RecordID
	tx.TenantRecordID = sc.account.TenantRecordID

	if sc.payment == nil {
		externalKey := sc.request.PaymentExternalKey
		if externalKey == "" {
			externalKey = paymentID.String()
		}
		payment := &entity.Payment{
			ID:              paymentID,
			AccountID:       sc.account.ID,
			PaymentMethodID: sc.paymentMethod.ID,
			ExternalKey:     externalKey,
			StateName:       state,
			CreatedDate:     now,
			UpdatedDate:     now,
			AccountRecordID: sc.account.RecordID,
			TenantRecordID:  sc.account.TenantRecordID,
		}

		created, err := c.runner.dao.createPaymentWithFirstTransaction(ctx, payment, tx)
		if err != nil {
			return err
		}
		sc.payment = created
		sc.transaction = tx
		return nil
	}

	appended, err := c.runner.dao.appendTransaction(ctx, sc.payment.ID, tx)
	if err != nil {
		return err
	}
	sc.transaction = appended
	return nil
}

// operationCallback calls the plugin and turns its answer into an outcome
type operationCallback struct {
	runner *AutomatonRunner
	sc     *stateContext
}

// DoOperation implements statemachine.OperationCallback
//
// Plugin errors and timeouts are reported as an aborted outcome, never as a hard error.
func (c *operationCallback) DoOperation(ctx context.Context) (statemachine.Outcome, error) {
	sc := c.sc
	call, ok := pluginCalls[sc.request.TransactionType]
	if !ok {
		return statemachine.Outcome{}, fmt.Errorf("%w: no plugin call for %s", errs.ErrConfiguration, sc.request.TransactionType)
	}

	req := plugin.PaymentRequest{
		AccountID:       sc.account.ID,
		PaymentID:       sc.payment.ID,
		TransactionID:   sc.transaction.ID,
		PaymentMethodID: sc.paymentMethod.ID,
		Amount:          entity.RoundToCurrency(sc.amount, sc.currency),
		Currency:        sc.currency,
		Properties:      sc.request.Properties,
		CallContext:     sc.request.CallContext,
	}

	pluginName := sc.paymentMethod.PluginName
	invoke := func(callCtx context.Context) (*entity.PluginResult, error) {
		return call(callCtx, sc.plugin, req)
	}

	var (
		result *entity.PluginResult
		err    error
	)
	if sc.request.Dispatch && c.runner.dispatcher != nil {
		result, err = c.runner.dispatcher.Dispatch(ctx, pluginName, invoke)
	} else {
		result, err = invoke(ctx)
	}

	if err != nil {
		sc.pluginErr = errs.NewPluginError(pluginName, string(sc.request.TransactionType), err)
		c.runner.logger.Warn("Plugin call failed", map[string]any{
			"plugin_name":    pluginName,
			"payment_id":     sc.payment.ID.String(),
			"transaction_id": sc.transaction.ID.String(),
			"error":          err.Error(),
		})
		return statemachine.Aborted(sc.pluginErr), nil
	}

	sc.pluginResult = result
	switch result.ToPaymentStatus() {
	case entity.PaymentStatusSuccess:
		return statemachine.Success(), nil
	case entity.PaymentStatusPending:
		return statemachine.Pending(), nil
	case entity.PaymentStatusPaymentFailureAborted:
		return statemachine.Failure(fmt.Errorf("gateway declined %s: %s %s",
			sc.request.TransactionType, result.GatewayErrorCode, result.GatewayError)), nil
	default:
		sc.pluginErr = errs.NewPluginError(pluginName, string(sc.request.TransactionType),
			fmt.Errorf("unexpected plugin status %q", result.Status))
		return statemachine.Aborted(sc.pluginErr), nil
	}
}

// enteringCallback records the outcome on the transaction and the new state on the payment
type enteringCallback struct {
	runner *AutomatonRunner
	sc     *stateContext
}

// EnteringState implements statemachine.EnteringStateCallback
func (c *enteringCallback) EnteringState(ctx context.Context, newState, operation string, outcome statemachine.Outcome) error {
	sc := c.sc
	now := c.runner.timeProvider.Now()

	sc.paymentStatus = PaymentStatusFor(outcome)
	sc.transaction.ApplyResult(sc.paymentStatus, sc.pluginResult, now)

	lastSuccessState := ""
	if outcome.IsSuccess() {
		lastSuccessState = newState
	}

	if err := c.runner.dao.updateOnCompletion(ctx, sc.payment.ID, newState, lastSuccessState, sc.transaction); err != nil {
		return err
	}

	sc.payment.StateName = newState
	if lastSuccessState != "" {
		sc.payment.LastSuccessStateName = lastSuccessState
	}
	return nil
}
