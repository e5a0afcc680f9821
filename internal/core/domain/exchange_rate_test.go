package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewRateKey(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		same bool
	}{
		{
			name: "same calendar day",
			a:    time.Date(2024, 3, 5, 0, 30, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC),
			same: true,
		},
		{
			name: "different days",
			a:    time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 6, 0, 30, 0, 0, time.UTC),
			same: false,
		},
		{
			name: "zone offset folds into the same UTC day",
			a:    time.Date(2024, 3, 6, 1, 30, 0, 0, time.FixedZone("EET", 2*3600)), // 23:30 UTC on the 5th
			b:    time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyA := domain.NewRateKey(tt.a, "EUR")
			keyB := domain.NewRateKey(tt.b, "EUR")
			assert.Equal(t, tt.same, keyA == keyB)
		})
	}
}

func TestNewRateKey_BaseCurrencyDistinguishesKeys(t *testing.T) {
	at := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	assert.NotEqual(t, domain.NewRateKey(at, "EUR"), domain.NewRateKey(at, "USD"))
}

func TestRateTable_Rate(t *testing.T) {
	table := domain.RateTable{
		BaseCurrency: "EUR",
		Rates:        map[string]decimal.Decimal{"USD": decimal.RequireFromString("1.1")},
	}

	rate, ok := table.Rate("USD")
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.1").Equal(rate))

	_, ok = table.Rate("XYZ")
	assert.False(t, ok)
}
