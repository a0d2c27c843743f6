package dto

import (
	"time"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
)

// PaymentResponse represents a payment and its transactions in API responses
type PaymentResponse struct {
	PaymentID            string                `json:"paymentId"`
	AccountID            string                `json:"accountId"`
	PaymentMethodID      string                `json:"paymentMethodId"`
	PaymentExternalKey   string                `json:"paymentExternalKey"`
	PaymentNumber        int64                 `json:"paymentNumber"`
	StateName            string                `json:"stateName"`
	LastSuccessStateName string                `json:"lastSuccessStateName,omitempty"`
	Currency             string                `json:"currency"`
	AuthAmount           string                `json:"authAmount"`
	CapturedAmount       string                `json:"capturedAmount"`
	PurchasedAmount      string                `json:"purchasedAmount"`
	RefundedAmount       string                `json:"refundedAmount"`
	CreditedAmount       string                `json:"creditedAmount"`
	IsAuthVoided         bool                  `json:"isAuthVoided"`
	CreatedDate          time.Time             `json:"createdDate"`
	Transactions         []TransactionResponse `json:"transactions"`
	Attempts             []AttemptResponse     `json:"paymentAttempts,omitempty"`
}

// NewPaymentResponse maps a payment to its API representation
func NewPaymentResponse(payment *entity.Payment, amounts entity.PaymentAmounts, attempts []*entity.PaymentAttempt) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:            payment.ID.String(),
		AccountID:            payment.AccountID.String(),
		PaymentMethodID:      payment.PaymentMethodID.String(),
		PaymentExternalKey:   payment.ExternalKey,
		PaymentNumber:        payment.PaymentNumber,
		StateName:            payment.StateName,
		LastSuccessStateName: payment.LastSuccessStateName,
		Currency:             amounts.Currency,
		AuthAmount:           entity.FormatAmount(amounts.AuthAmount, amounts.Currency),
		CapturedAmount:       entity.FormatAmount(amounts.CapturedAmount, amounts.Currency),
		PurchasedAmount:      entity.FormatAmount(amounts.PurchasedAmount, amounts.Currency),
		RefundedAmount:       entity.FormatAmount(amounts.RefundedAmount, amounts.Currency),
		CreditedAmount:       entity.FormatAmount(amounts.CreditedAmount, amounts.Currency),
		IsAuthVoided:         amounts.IsAuthVoided,
		CreatedDate:          payment.CreatedDate,
		Transactions:         make([]TransactionResponse, 0, len(payment.Transactions)),
	}
	for _, tx := range payment.Transactions {
		resp.Transactions = append(resp.Transactions, NewTransactionResponse(tx))
	}
	for _, attempt := range attempts {
		resp.Attempts = append(resp.Attempts, NewAttemptResponse(attempt))
	}
	return resp
}

// NewPaymentListResponse maps the payments of an account
func NewPaymentListResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p, p.Amounts(), nil))
	}
	return out
}
