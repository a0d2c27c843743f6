package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the aggregate root grouping the gateway transactions of one payment
type Payment struct {
	ID                   uuid.UUID
	AccountID            uuid.UUID
	PaymentMethodID      uuid.UUID
	ExternalKey          string
	PaymentNumber        int64 // assigned by the store
	StateName            string
	LastSuccessStateName string
	CreatedDate          time.Time
	UpdatedDate          time.Time
	AccountRecordID      int64
	TenantRecordID       int64
	Transactions         []*PaymentTransaction
}

// PaymentAmounts are the totals derived from the successful transactions of a payment
type PaymentAmounts struct {
	Currency        string
	AuthAmount      decimal.Decimal
	CapturedAmount  decimal.Decimal
	PurchasedAmount decimal.Decimal
	RefundedAmount  decimal.Decimal
	CreditedAmount  decimal.Decimal
	IsAuthVoided    bool
}

// SortTransactions orders transactions by effective date, keeping insertion order for ties
func SortTransactions(transactions []*PaymentTransaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].EffectiveDate.Before(transactions[j].EffectiveDate)
	})
}

// Currency returns the currency of the first transaction, the currency of the payment
func (p *Payment) Currency() string {
	if len(p.Transactions) == 0 {
		return ""
	}
	return p.Transactions[0].Currency
}

// LastTransaction returns the most recent transaction or nil
func (p *Payment) LastTransaction() *PaymentTransaction {
	if len(p.Transactions) == 0 {
		return nil
	}
	return p.Transactions[len(p.Transactions)-1]
}

// FindTransaction returns the transaction with the given id or nil
func (p *Payment) FindTransaction(id uuid.UUID) *PaymentTransaction {
	for _, tx := range p.Transactions {
		if tx.ID == id {
			return tx
		}
	}
	return nil
}

// TransactionsByExternalKey returns the transactions recorded under an external key in order
func (p *Payment) TransactionsByExternalKey(externalKey string) []*PaymentTransaction {
	var out []*PaymentTransaction
	for _, tx := range p.Transactions {
		if tx.ExternalKey == externalKey {
			out = append(out, tx)
		}
	}
	return out
}

// Amounts computes the derived totals of the payment
func (p *Payment) Amounts() PaymentAmounts {
	amounts := PaymentAmounts{
		Currency:        p.Currency(),
		AuthAmount:      decimal.Zero,
		CapturedAmount:  decimal.Zero,
		PurchasedAmount: decimal.Zero,
		RefundedAmount:  decimal.Zero,
		CreditedAmount:  decimal.Zero,
	}

	for _, tx := range p.Transactions {
		if !tx.IsSuccess() {
			continue
		}
		switch tx.TransactionType {
		case TransactionAuthorize:
			amounts.AuthAmount = amounts.AuthAmount.Add(tx.Amount)
		case TransactionCapture:
			amounts.CapturedAmount = amounts.CapturedAmount.Add(tx.Amount)
		case TransactionPurchase:
			amounts.PurchasedAmount = amounts.PurchasedAmount.Add(tx.Amount)
		case TransactionRefund:
			amounts.RefundedAmount = amounts.RefundedAmount.Add(tx.Amount)
		case TransactionCredit:
			amounts.CreditedAmount = amounts.CreditedAmount.Add(tx.Amount)
		case TransactionVoid:
			amounts.IsAuthVoided = true
		}
	}

	return amounts
}

// ReservedAmount sums the amounts of one transaction type that are successful or still in flight
func (p *Payment) ReservedAmount(transactionType TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range p.Transactions {
		if tx.TransactionType == transactionType && tx.Status.IsLive() {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
