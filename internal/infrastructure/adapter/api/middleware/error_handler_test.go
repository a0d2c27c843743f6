package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Invalid amount", domainerr.ErrInvalidAmount, http.StatusBadRequest},
		{"Wrapped invalid request", fmt.Errorf("bind: %w", domainerr.ErrInvalidRequest), http.StatusBadRequest},
		{"Payment not found", domainerr.ErrPaymentNotFound, http.StatusNotFound},
		{"Attempt not found", domainerr.ErrAttemptNotFound, http.StatusNotFound},
		{"Duplicate transaction", domainerr.NewDuplicateTransactionError("tx", "p"), http.StatusConflict},
		{"Transaction not pending", domainerr.ErrTransactionNotPending, http.StatusConflict},
		{"Account locked", domainerr.ErrAccountLocked, http.StatusLocked},
		{"Aborted by control plugin", domainerr.ErrAbortedByControlPlugin, http.StatusUnprocessableEntity},
		{"Operation not allowed", domainerr.ErrOperationNotAllowed, http.StatusUnprocessableEntity},
		{"Plugin failure", domainerr.NewPluginError("p", "purchase", errors.New("boom")), http.StatusBadGateway},
		{"Plugin timeout", domainerr.ErrPluginTimeout, http.StatusGatewayTimeout},
		{"Database", domainerr.ErrDatabaseConnection, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Logger(logger.NewNoopLogger()), ErrorHandler(logger.NewNoopLogger()))
	router.GET("/locked", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("purchase: %w", domainerr.ErrAccountLocked))
		c.Abort()
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	router.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("ignored"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("Domain error is rendered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locked", nil))

		assert.Equal(t, http.StatusLocked, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, domainerr.CodeAccountLocked, resp.Code)
		assert.Contains(t, resp.Message, "account is locked")
	})

	t.Run("Panic is recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal server error")
	})

	t.Run("Written responses are left alone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/written", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	})

	t.Run("Request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/locked", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	})
}
