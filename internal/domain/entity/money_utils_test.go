package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
)

func TestCurrencyDigits(t *testing.T) {
	tests := []struct {
		currency string
		expected int32
	}{
		{"USD", 2},
		{"eur", 2},
		{"JPY", 0},
		{" krw ", 0},
		{"KWD", 3},
		{"XYZ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.expected, CurrencyDigits(tt.currency))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		expected int64
	}{
		{"Dollars and cents", "10.15", "USD", 1015},
		{"Whole dollars", "10", "USD", 1000},
		{"Rounded half up", "10.155", "USD", 1016},
		{"Yen has no minor unit", "500", "JPY", 500},
		{"Dinar has three digits", "1.234", "KWD", 1234},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMinorUnits(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.15").Equal(FromMinorUnits(1015, "USD")))
	assert.True(t, decimal.RequireFromString("500").Equal(FromMinorUnits(500, "JPY")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		currency    string
		expected    string
		expectedErr error
	}{
		{"Valid with cents", "10.50", "USD", "10.5", nil},
		{"Valid integer", "42", "USD", "42", nil},
		{"Trailing zeros beyond precision", "10.500", "USD", "10.5", nil},
		{"Too many decimals", "10.505", "USD", "", errs.ErrInvalidAmount},
		{"Decimals on yen", "10.5", "JPY", "", errs.ErrInvalidAmount},
		{"Empty", "  ", "USD", "", errs.ErrInvalidAmount},
		{"Negative", "-1", "USD", "", errs.ErrInvalidAmount},
		{"Zero", "0", "USD", "", errs.ErrInvalidAmount},
		{"Garbage", "abc", "USD", "", errs.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseAmount(tt.amount, tt.currency)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(value), "got %s", value)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.10", FormatAmount(decimal.RequireFromString("10.1"), "USD"))
	assert.Equal(t, "500", FormatAmount(decimal.RequireFromString("500"), "JPY"))
	assert.Equal(t, "1.200", FormatAmount(decimal.RequireFromString("1.2"), "BHD"))
}
