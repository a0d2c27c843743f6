package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
)

// AttemptHandler handles the HTTP requests on retry attempts
type AttemptHandler struct {
	controlled   usecase.PluginControlledPaymentProcessor
	retryable    usecase.RetryableProcessor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAttemptHandler creates a new attempt handler instance
func NewAttemptHandler(
	controlled usecase.PluginControlledPaymentProcessor,
	retryable usecase.RetryableProcessor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AttemptHandler {
	return &AttemptHandler{
		controlled:   controlled,
		retryable:    retryable,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAttempts handles the GET /attempts?paymentExternalKey= endpoint
func (h *AttemptHandler) GetAttempts(c *gin.Context) {
	externalKey := c.Query("paymentExternalKey")
	if externalKey == "" {
		abortWithError(c, invalidRequest("paymentExternalKey is required"))
		return
	}
	tenant, ok := tenantQuery(c)
	if !ok {
		return
	}

	attempts, err := h.controlled.GetAttempts(c.Request.Context(), externalKey, tenant)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAttemptListResponse(attempts))
}

// RetryAttempt handles the POST /attempts/{attemptId}/retry endpoint
//
// The retry runs synchronously; the attempt state afterwards is read with GetAttempts.
func (h *AttemptHandler) RetryAttempt(c *gin.Context) {
	attemptID, ok := uuidParam(c, "attemptId")
	if !ok {
		return
	}

	var req dto.RetryAttemptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, invalidRequest("invalid request format: %s", err.Error()))
			return
		}
	}

	cc := callContext(c, nil, h.timeProvider)
	ctx := entity.ContextWithCallContext(c.Request.Context(), cc)
	if err := h.retryable.RetryPaymentTransaction(ctx, attemptID, req.PluginNames, cc); err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("Payment attempt retried on request", map[string]any{
		"attempt_id": attemptID.String(),
		"user_token": cc.UserToken.String(),
	})
	c.Status(http.StatusNoContent)
}
