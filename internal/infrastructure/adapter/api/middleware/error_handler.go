package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and renders errors attached by handlers
//
// Handlers report failures with c.Error and abort; the last attached error decides the response.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader(RequestIDHeader),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := HTTPStatus(err)

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"status":     status,
			"request_id": c.GetHeader(RequestIDHeader),
			"error":      err.Error(),
		}
		var detailed interface{ LogFields() map[string]any }
		if errors.As(err, &detailed) {
			for k, v := range detailed.LogFields() {
				fields[k] = v
			}
		}

		message := err.Error()
		if status >= http.StatusInternalServerError {
			logger.Error("API request failed", fields)
			if !domainerr.IsBusinessError(err) {
				message = "Internal server error"
			}
		} else {
			logger.Warn("API request rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
	}
}

// HTTPStatus maps a domain error to the status returned to API callers
func HTTPStatus(err error) int {
	if domainerr.IsNotFoundError(err) {
		return http.StatusNotFound
	}

	switch code := domainerr.ErrorCode(err); code {
	case domainerr.CodeDuplicateTransaction, domainerr.CodeTransactionNotPending:
		return http.StatusConflict
	case domainerr.CodeAccountLocked:
		return http.StatusLocked
	case domainerr.CodeOperationNotAllowed, domainerr.CodeAbortedByControlPlugin,
		domainerr.CodeAutoPayOff, domainerr.CodeInvoiceAlreadyPaid:
		return http.StatusUnprocessableEntity
	case domainerr.CodePluginFailure:
		return http.StatusBadGateway
	case domainerr.CodePluginTimeout:
		return http.StatusGatewayTimeout
	case domainerr.CodeDatabaseFailure:
		return http.StatusServiceUnavailable
	default:
		if code >= 4000 && code < 5000 {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
