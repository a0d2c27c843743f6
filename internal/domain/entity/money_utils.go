package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

// DefaultCurrencyDigits is the number of minor-unit digits for currencies not listed below
const DefaultCurrencyDigits int32 = 2

// currencyDigits lists ISO 4217 currencies whose minor unit differs from two digits
var currencyDigits = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0, "KRW": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// NormalizeCurrency upper-cases and trims a currency code
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

// CurrencyDigits returns the number of minor-unit digits of the currency
func CurrencyDigits(currency string) int32 {
	if d, ok := currencyDigits[NormalizeCurrency(currency)]; ok {
		return d
	}
	return DefaultCurrencyDigits
}

// RoundToCurrency rounds an amount to the minor-unit precision of its currency
func RoundToCurrency(amount decimal.Decimal, currency string) decimal.Decimal {
	return amount.Round(CurrencyDigits(currency))
}

// ToMinorUnits converts a major-unit amount to an integer count of minor units
// Example: 10.15 USD becomes 1015, 500 JPY stays 500
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	digits := CurrencyDigits(currency)
	return RoundToCurrency(amount, currency).Shift(digits).IntPart()
}

// FromMinorUnits converts an integer count of minor units back to a major-unit amount
func FromMinorUnits(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -CurrencyDigits(currency))
}

// ParseAmount parses a positive decimal amount in major units
// The amount may carry at most as many fractional digits as the currency allows
func ParseAmount(amount string, currency string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}

	digits := CurrencyDigits(currency)
	if -value.Exponent() > digits && !value.Equal(value.Round(digits)) {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed for %s",
			errs.ErrInvalidAmount, digits, NormalizeCurrency(currency))
	}

	return value, nil
}

// FormatAmount renders an amount with exactly the currency's minor-unit digits
// Example: 10.1 USD becomes "10.10"
func FormatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(CurrencyDigits(currency))
}
