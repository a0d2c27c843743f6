package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	methods usecase.PaymentMethodUseCase
	logger  coreport.Logger
}

// NewPaymentMethodHandler creates a new payment method handler instance
func NewPaymentMethodHandler(methods usecase.PaymentMethodUseCase, logger coreport.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		methods: methods,
		logger:  logger,
	}
}

// AddPaymentMethod handles the POST /accounts/{accountId}/paymentMethods endpoint
func (h *PaymentMethodHandler) AddPaymentMethod(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, invalidRequest("invalid request format: %s", err.Error()))
		return
	}

	method, err := h.methods.AddPaymentMethod(c.Request.Context(), accountID, req.ExternalKey, req.PluginName, req.Properties, req.IsDefault)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPaymentMethodResponse(method))
}

// GetPaymentMethods handles the GET /accounts/{accountId}/paymentMethods endpoint
func (h *PaymentMethodHandler) GetPaymentMethods(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}

	methods, err := h.methods.GetAccountPaymentMethods(c.Request.Context(), accountID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		resp = append(resp, dto.NewPaymentMethodResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePaymentMethod handles the DELETE /accounts/{accountId}/paymentMethods/{paymentMethodId} endpoint
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	paymentMethodID, ok := uuidParam(c, "paymentMethodId")
	if !ok {
		return
	}
	deleteDefault, ok := queryBool(c, "deleteDefaultPmWithAutoPayOff")
	if !ok {
		return
	}

	if err := h.methods.DeletePaymentMethod(c.Request.Context(), accountID, paymentMethodID, deleteDefault); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
