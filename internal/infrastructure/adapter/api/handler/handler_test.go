package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	"github.com/amirhossein-jamali/payment-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/logger"
	faketime "github.com/amirhossein-jamali/payment-engine/internal/infrastructure/adapter/time"
	externalmocks "github.com/amirhossein-jamali/payment-engine/mocks/port/external"
	usecasemocks "github.com/amirhossein-jamali/payment-engine/mocks/port/usecase"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type apiFixture struct {
	router     *gin.Engine
	payments   *usecasemocks.MockPaymentProcessor
	controlled *usecasemocks.MockPluginControlledPaymentProcessor
	retryable  *usecasemocks.MockRetryableProcessor
	methods    *usecasemocks.MockPaymentMethodUseCase
	accounts   *externalmocks.MockAccountLookup
	healthErr  error
	account    *entity.Account
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := faketime.NewFakeTimeProvider(now)
	f := &apiFixture{
		router:     gin.New(),
		payments:   usecasemocks.NewMockPaymentProcessor(t),
		controlled: usecasemocks.NewMockPluginControlledPaymentProcessor(t),
		retryable:  usecasemocks.NewMockRetryableProcessor(t),
		methods:    usecasemocks.NewMockPaymentMethodUseCase(t),
		accounts:   externalmocks.NewMockAccountLookup(t),
		account: &entity.Account{
			ID:             uuid.New(),
			ExternalKey:    "acct-1",
			Currency:       "USD",
			RecordID:       7,
			TenantRecordID: 1,
		},
	}

	routes.SetupMiddlewares(f.router, log)
	routes.SetupRoutes(f.router, routes.Handlers{
		Payments:       handler.NewPaymentHandler(f.payments, f.controlled, f.accounts, clock, log),
		PaymentMethods: handler.NewPaymentMethodHandler(f.methods, log),
		Attempts:       handler.NewAttemptHandler(f.controlled, f.retryable, clock, log),
		Health: handler.NewHealthHandler(map[string]handler.HealthProbe{
			"database": func(ctx context.Context) error { return f.healthErr },
		}, log),
	})
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(handler.HeaderCreatedBy, "tester")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) expectAccount() {
	f.accounts.EXPECT().GetAccountByID(mock.Anything, f.account.ID).Return(f.account, nil)
}

func paymentWith(account *entity.Account, txType entity.TransactionType, status entity.TransactionStatus, state string) *entity.Payment {
	paymentID := uuid.New()
	return &entity.Payment{
		ID:              paymentID,
		AccountID:       account.ID,
		PaymentMethodID: uuid.New(),
		ExternalKey:     "pay-1",
		PaymentNumber:   1,
		StateName:       state,
		CreatedDate:     now,
		UpdatedDate:     now,
		Transactions: []*entity.PaymentTransaction{{
			ID:              uuid.New(),
			PaymentID:       paymentID,
			ExternalKey:     "tx-1",
			TransactionType: txType,
			EffectiveDate:   now,
			Status:          status,
			Amount:          decimal.RequireFromString("10"),
			Currency:        "USD",
			ProcessedAmount: decimal.RequireFromString("10"),
		}},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateTransaction_DirectAuthorization(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAccount()

	payment := paymentWith(f.account, entity.TransactionAuthorize, entity.TransactionStatusSuccess, "AUTHORIZE_SUCCESS")
	f.payments.EXPECT().
		CreateAuthorization(mock.Anything, mock.MatchedBy(func(req usecase.PaymentRequest) bool {
			return req.AccountID == f.account.ID &&
				req.TransactionExternalKey == "tx-1" &&
				req.Amount != nil && req.Amount.Equal(decimal.RequireFromString("10.00")) &&
				req.PaymentID == nil
		}), mock.MatchedBy(func(cc entity.CallContext) bool {
			return cc.UserName == "tester" && cc.AccountRecordID == 7
		})).
		Return(payment, nil)

	rec := f.do(t, http.MethodPost, "/accounts/"+f.account.ID.String()+"/payments", dto.PaymentTransactionRequest{
		TransactionType:        "AUTHORIZE",
		TransactionExternalKey: "tx-1",
		Amount:                 "10.00",
		Currency:               "USD",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "AUTHORIZE_SUCCESS", resp.StateName)
	assert.Equal(t, "10.00", resp.AuthAmount)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "SUCCESS", resp.Transactions[0].Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCreateTransaction_ControlPluginsUseRetryAutomaton(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAccount()

	payment := paymentWith(f.account, entity.TransactionPurchase, entity.TransactionStatusPaymentFailure, "PURCHASE_FAILED")
	f.controlled.EXPECT().
		CreatePurchase(mock.Anything, mock.AnythingOfType("usecase.PaymentRequest"), []string{"policy"}, mock.Anything).
		Return(payment, nil)

	rec := f.do(t, http.MethodPost, "/accounts/"+f.account.ID.String()+"/payments", dto.PaymentTransactionRequest{
		TransactionType:    "PURCHASE",
		Amount:             "10",
		ControlPluginNames: []string{"policy"},
	})

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestCreateTransaction_Errors(t *testing.T) {
	accountPath := func(f *apiFixture) string { return "/accounts/" + f.account.ID.String() + "/payments" }

	tests := []struct {
		name         string
		path         func(f *apiFixture) string
		body         any
		setup        func(f *apiFixture)
		expectedCode int
		expectedErr  int
	}{
		{
			name:         "Invalid account id",
			path:         func(f *apiFixture) string { return "/accounts/not-a-uuid/payments" },
			body:         dto.PaymentTransactionRequest{TransactionType: "AUTHORIZE", Amount: "1"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  domainerr.CodeInvalidRequest,
		},
		{
			name:         "Unknown transaction type",
			path:         accountPath,
			body:         map[string]any{"transactionType": "CHARGEBACK"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  domainerr.CodeInvalidRequest,
		},
		{
			name:         "Malformed amount",
			path:         accountPath,
			body:         dto.PaymentTransactionRequest{TransactionType: "PURCHASE", Amount: "ten"},
			expectedCode: http.StatusBadRequest,
			expectedErr:  domainerr.CodeInvalidAmount,
		},
		{
			name: "Unknown account",
			path: accountPath,
			body: dto.PaymentTransactionRequest{TransactionType: "PURCHASE", Amount: "1"},
			setup: func(f *apiFixture) {
				f.accounts.EXPECT().GetAccountByID(mock.Anything, f.account.ID).Return(nil, domainerr.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  domainerr.CodeAccountNotFound,
		},
		{
			name: "Refund above collected amount",
			path: accountPath,
			body: dto.PaymentTransactionRequest{TransactionType: "REFUND", PaymentID: uuid.NewString(), Amount: "20"},
			setup: func(f *apiFixture) {
				f.expectAccount()
				f.payments.EXPECT().CreateRefund(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domainerr.NewAmountExceededError(domainerr.ErrRefundAmountExceeded, "20", "10"))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  domainerr.CodeRefundAmountExceeded,
		},
		{
			name: "Duplicate transaction key",
			path: accountPath,
			body: dto.PaymentTransactionRequest{TransactionType: "CAPTURE", PaymentID: uuid.NewString(), Amount: "5"},
			setup: func(f *apiFixture) {
				f.expectAccount()
				f.payments.EXPECT().CreateCapture(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domainerr.NewDuplicateTransactionError("tx-1", "p"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  domainerr.CodeDuplicateTransaction,
		},
		{
			name: "Account locked",
			path: accountPath,
			body: dto.PaymentTransactionRequest{TransactionType: "VOID", PaymentID: uuid.NewString()},
			setup: func(f *apiFixture) {
				f.expectAccount()
				f.payments.EXPECT().CreateVoid(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("void: %w", domainerr.ErrAccountLocked))
			},
			expectedCode: http.StatusLocked,
			expectedErr:  domainerr.CodeAccountLocked,
		},
		{
			name: "Internal errors are not leaked",
			path: accountPath,
			body: dto.PaymentTransactionRequest{TransactionType: "CREDIT", Amount: "5"},
			setup: func(f *apiFixture) {
				f.expectAccount()
				f.payments.EXPECT().CreateCredit(mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("pq: relation does not exist"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  domainerr.CodeInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := f.do(t, http.MethodPost, tt.path(f), tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.expectedErr, resp.Code)
			if tt.expectedErr == domainerr.CodeInternalServer {
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

func TestGetPayment(t *testing.T) {
	f := newAPIFixture(t)
	payment := paymentWith(f.account, entity.TransactionPurchase, entity.TransactionStatusSuccess, "PURCHASE_SUCCESS")
	attempt := entity.NewPaymentAttempt(f.account.ID, payment.PaymentMethodID, "pay-1", "tx-1",
		entity.TransactionPurchase, decimal.RequireFromString("10"), "USD", []string{"policy"}, nil, now)

	f.payments.EXPECT().
		GetPayment(mock.Anything, payment.ID, usecase.PaymentQueryOptions{WithAttempts: true}).
		Return(&usecase.PaymentView{Payment: payment, Amounts: payment.Amounts(), Attempts: []*entity.PaymentAttempt{attempt}}, nil)

	rec := f.do(t, http.MethodGet, "/payments/"+payment.ID.String()+"?withAttempts=true", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "10.00", resp.PurchasedAmount)
	require.Len(t, resp.Attempts, 1)
	assert.Equal(t, []string{"policy"}, resp.Attempts[0].PluginNames)
}

func TestGetPayment_Errors(t *testing.T) {
	f := newAPIFixture(t)
	missing := uuid.New()
	f.payments.EXPECT().GetPayment(mock.Anything, missing, usecase.PaymentQueryOptions{}).Return(nil, domainerr.ErrPaymentNotFound)

	rec := f.do(t, http.MethodGet, "/payments/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/payments/"+missing.String()+"?withPluginInfo=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/payments", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPaymentByExternalKey(t *testing.T) {
	f := newAPIFixture(t)
	payment := paymentWith(f.account, entity.TransactionAuthorize, entity.TransactionStatusPending, "AUTHORIZE_PENDING")
	f.payments.EXPECT().
		GetPaymentByExternalKey(mock.Anything, "pay-1", int64(3), usecase.PaymentQueryOptions{WithPluginInfo: true}).
		Return(&usecase.PaymentView{Payment: payment, Amounts: payment.Amounts()}, nil)

	rec := f.do(t, http.MethodGet, "/payments?externalKey=pay-1&tenantRecordId=3&withPluginInfo=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotifyPendingTransaction(t *testing.T) {
	f := newAPIFixture(t)
	transactionID := uuid.New()
	path := fmt.Sprintf("/accounts/%s/transactions/%s", f.account.ID, transactionID)

	rec := f.do(t, http.MethodPost, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "success flag is required")

	f.expectAccount()
	payment := paymentWith(f.account, entity.TransactionPurchase, entity.TransactionStatusSuccess, "PURCHASE_SUCCESS")
	f.payments.EXPECT().
		NotifyPendingTransactionOfStateChanged(mock.Anything, f.account.ID, transactionID, true, mock.Anything).
		Return(payment, nil)

	rec = f.do(t, http.MethodPost, path, map[string]any{"success": true})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentMethodEndpoints(t *testing.T) {
	f := newAPIFixture(t)
	base := "/accounts/" + f.account.ID.String() + "/paymentMethods"
	method := entity.NewPaymentMethod(f.account.ID, "card", "__EXTERNAL_PAYMENT__", nil, now)

	f.methods.EXPECT().
		AddPaymentMethod(mock.Anything, f.account.ID, "card", "__EXTERNAL_PAYMENT__", map[string]any(nil), true).
		Return(method, nil)
	rec := f.do(t, http.MethodPost, base, dto.PaymentMethodRequest{ExternalKey: "card", PluginName: "__EXTERNAL_PAYMENT__", IsDefault: true})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, base, map[string]any{"externalKey": "card"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "plugin name is required")

	f.methods.EXPECT().GetAccountPaymentMethods(mock.Anything, f.account.ID).Return([]*entity.PaymentMethod{method}, nil)
	rec = f.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.PaymentMethodResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, method.ID.String(), list[0].PaymentMethodID)

	f.methods.EXPECT().DeletePaymentMethod(mock.Anything, f.account.ID, method.ID, true).Return(nil)
	rec = f.do(t, http.MethodDelete, base+"/"+method.ID.String()+"?deleteDefaultPmWithAutoPayOff=true", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	other := uuid.New()
	f.methods.EXPECT().DeletePaymentMethod(mock.Anything, f.account.ID, other, false).
		Return(fmt.Errorf("%w: default", domainerr.ErrInvalidPaymentMethod))
	rec = f.do(t, http.MethodDelete, base+"/"+other.String(), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttemptEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/attempts", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.controlled.EXPECT().GetAttempts(mock.Anything, "pay-1", int64(1)).Return(nil, nil)
	rec = f.do(t, http.MethodGet, "/attempts?paymentExternalKey=pay-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	attemptID := uuid.New()
	f.retryable.EXPECT().
		RetryPaymentTransaction(mock.Anything, attemptID, []string{"policy"}, mock.Anything).
		Return(nil)
	rec = f.do(t, http.MethodPost, "/attempts/"+attemptID.String()+"/retry", dto.RetryAttemptRequest{PluginNames: []string{"policy"}})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	missing := uuid.New()
	f.retryable.EXPECT().
		RetryPaymentTransaction(mock.Anything, missing, []string(nil), mock.Anything).
		Return(domainerr.ErrAttemptNotFound)
	rec = f.do(t, http.MethodPost, "/attempts/"+missing.String()+"/retry", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.healthErr = errors.New("connection refused")
	rec = f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"down"`)
}
