package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/external"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
)

type directCall func(ctx context.Context, req usecase.PaymentRequest, cc entity.CallContext) (*entity.Payment, error)

type controlledCall func(ctx context.Context, req usecase.PaymentRequest, pluginNames []string, cc entity.CallContext) (*entity.Payment, error)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	payments     usecase.PaymentProcessor
	controlled   usecase.PluginControlledPaymentProcessor
	accounts     external.AccountLookup
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	direct    map[entity.TransactionType]directCall
	withRetry map[entity.TransactionType]controlledCall
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(
	payments usecase.PaymentProcessor,
	controlled usecase.PluginControlledPaymentProcessor,
	accounts external.AccountLookup,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		payments:     payments,
		controlled:   controlled,
		accounts:     accounts,
		timeProvider: timeProvider,
		logger:       logger,
		direct: map[entity.TransactionType]directCall{
			entity.TransactionAuthorize: payments.CreateAuthorization,
			entity.TransactionCapture:   payments.CreateCapture,
			entity.TransactionPurchase:  payments.CreatePurchase,
			entity.TransactionVoid:      payments.CreateVoid,
			entity.TransactionRefund:    payments.CreateRefund,
			entity.TransactionCredit:    payments.CreateCredit,
		},
		withRetry: map[entity.TransactionType]controlledCall{
			entity.TransactionAuthorize: controlled.CreateAuthorization,
			entity.TransactionCapture:   controlled.CreateCapture,
			entity.TransactionPurchase:  controlled.CreatePurchase,
			entity.TransactionVoid:      controlled.CreateVoid,
			entity.TransactionRefund:    controlled.CreateRefund,
			entity.TransactionCredit:    controlled.CreateCredit,
		},
	}
}

// CreateTransaction handles the POST /accounts/{accountId}/payments endpoint
//
// Requests naming control plugins run under the retry automaton.
func (h *PaymentHandler) CreateTransaction(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	var req dto.PaymentTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("invalid request format: %s", err.Error()))
		return
	}

	transactionType, err := entity.ParseTransactionType(req.TransactionType)
	if err != nil {
		abortWithError(c, err)
		return
	}

	paymentReq, err := toPaymentRequest(accountID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	account, err := h.accounts.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cc := callContext(c, account, h.timeProvider)
	ctx := entity.ContextWithCallContext(c.Request.Context(), cc)

	var payment *entity.Payment
	if len(req.ControlPluginNames) > 0 {
		payment, err = h.withRetry[transactionType](ctx, paymentReq, req.ControlPluginNames, cc)
	} else {
		payment, err = h.direct[transactionType](ctx, paymentReq, cc)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("Payment transaction processed", map[string]any{
		"account_id":               accountID.String(),
		"payment_id":               payment.ID.String(),
		"transaction_type":         string(transactionType),
		"transaction_external_key": paymentReq.TransactionExternalKey,
		"state":                    payment.StateName,
		"user_token":               cc.UserToken.String(),
	})

	c.JSON(statusForPayment(payment), dto.NewPaymentResponse(payment, payment.Amounts(), nil))
}

// NotifyPendingTransaction handles the POST /accounts/{accountId}/transactions/{transactionId} endpoint
func (h *PaymentHandler) NotifyPendingTransaction(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	transactionID, ok := uuidParam(c, "transactionId")
	if !ok {
		return
	}

	var req dto.PendingTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("invalid request format: %s", err.Error()))
		return
	}

	account, err := h.accounts.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	cc := callContext(c, account, h.timeProvider)
	ctx := entity.ContextWithCallContext(c.Request.Context(), cc)

	payment, err := h.payments.NotifyPendingTransactionOfStateChanged(ctx, accountID, transactionID, *req.Success, cc)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponse(payment, payment.Amounts(), nil))
}

// GetPayment handles the GET /payments/{paymentId} endpoint
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID, ok := uuidParam(c, "paymentId")
	if !ok {
		return
	}
	opts, ok := queryOptions(c)
	if !ok {
		return
	}

	view, err := h.payments.GetPayment(c.Request.Context(), paymentID, opts)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponse(view.Payment, view.Amounts, view.Attempts))
}

// GetPaymentByExternalKey handles the GET /payments?externalKey= endpoint
func (h *PaymentHandler) GetPaymentByExternalKey(c *gin.Context) {
	externalKey := c.Query("externalKey")
	if externalKey == "" {
		abortWithError(c, invalidRequest("externalKey is required"))
		return
	}
	tenant, ok := tenantQuery(c)
	if !ok {
		return
	}
	opts, ok := queryOptions(c)
	if !ok {
		return
	}

	view, err := h.payments.GetPaymentByExternalKey(c.Request.Context(), externalKey, tenant, opts)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponse(view.Payment, view.Amounts, view.Attempts))
}

// GetAccountPayments handles the GET /accounts/{accountId}/payments endpoint
func (h *PaymentHandler) GetAccountPayments(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	payments, err := h.payments.GetAccountPayments(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentListResponse(payments))
}

func queryOptions(c *gin.Context) (usecase.PaymentQueryOptions, bool) {
	withPluginInfo, ok := queryBool(c, "withPluginInfo")
	if !ok {
		return usecase.PaymentQueryOptions{}, false
	}
	withAttempts, ok := queryBool(c, "withAttempts")
	if !ok {
		return usecase.PaymentQueryOptions{}, false
	}
	return usecase.PaymentQueryOptions{WithPluginInfo: withPluginInfo, WithAttempts: withAttempts}, true
}

// toPaymentRequest maps the API request onto the processor request
// A missing transaction external key is generated
func toPaymentRequest(accountID uuid.UUID, req dto.PaymentTransactionRequest) (usecase.PaymentRequest, error) {
	out := usecase.PaymentRequest{
		AccountID:              accountID,
		PaymentExternalKey:     req.PaymentExternalKey,
		TransactionExternalKey: req.TransactionExternalKey,
		Currency:               req.Currency,
		Properties:             req.Properties,
		PropagatePluginFailure: req.PropagatePluginFailure,
	}
	if out.TransactionExternalKey == "" {
		out.TransactionExternalKey = uuid.NewString()
	}

	if req.PaymentID != "" {
		id, err := uuid.Parse(req.PaymentID)
		if err != nil {
			return usecase.PaymentRequest{}, invalidRequest("invalid paymentId")
		}
		out.PaymentID = &id
	}
	if req.PaymentMethodID != "" {
		id, err := uuid.Parse(req.PaymentMethodID)
		if err != nil {
			return usecase.PaymentRequest{}, invalidRequest("invalid paymentMethodId")
		}
		out.PaymentMethodID = &id
	}
	if req.Amount != "" {
		amount, err := entity.ParseAmount(req.Amount, req.Currency)
		if err != nil {
			return usecase.PaymentRequest{}, err
		}
		out.Amount = &amount
	}
	return out, nil
}

// statusForPayment reports the gateway outcome of the latest transaction
func statusForPayment(payment *entity.Payment) int {
	last := payment.LastTransaction()
	if last == nil {
		return http.StatusCreated
	}
	switch last.Status {
	case entity.TransactionStatusSuccess:
		return http.StatusCreated
	case entity.TransactionStatusPaymentFailure:
		return http.StatusPaymentRequired
	case entity.TransactionStatusPluginFailure:
		return http.StatusBadGateway
	default:
		return http.StatusAccepted
	}
}
