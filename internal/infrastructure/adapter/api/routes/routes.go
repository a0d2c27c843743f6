package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Payments       *handler.PaymentHandler
	PaymentMethods *handler.PaymentMethodHandler
	Attempts       *handler.AttemptHandler
	Health         *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)

	accountRoutes := router.Group("/accounts/:accountId")
	{
		// POST /accounts/:accountId/payments
		accountRoutes.POST("/payments", h.Payments.CreateTransaction)
		accountRoutes.GET("/payments", h.Payments.GetAccountPayments)

		// POST /accounts/:accountId/transactions/:transactionId
		accountRoutes.POST("/transactions/:transactionId", h.Payments.NotifyPendingTransaction)

		accountRoutes.POST("/paymentMethods", h.PaymentMethods.AddPaymentMethod)
		accountRoutes.GET("/paymentMethods", h.PaymentMethods.GetPaymentMethods)
		accountRoutes.DELETE("/paymentMethods/:paymentMethodId", h.PaymentMethods.DeletePaymentMethod)
	}

	paymentRoutes := router.Group("/payments")
	{
		paymentRoutes.GET("", h.Payments.GetPaymentByExternalKey)
		paymentRoutes.GET("/:paymentId", h.Payments.GetPayment)
	}

	attemptRoutes := router.Group("/attempts")
	{
		attemptRoutes.GET("", h.Attempts.GetAttempts)
		attemptRoutes.POST("/:attemptId/retry", h.Attempts.RetryAttempt)
	}
}

// SetupMiddlewares configures global middlewares for the API
// The request logger wraps the error handler so it sees the final status
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
}
