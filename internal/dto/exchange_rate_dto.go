package dto

import (
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse mirrors the rate service's daily table payload.
type ExchangeRateResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ToRateTable converts the wire payload into a domain rate table for the
// given base currency and day.
func (r ExchangeRateResponse) ToRateTable(baseCurrency string, day time.Time) *domain.RateTable {
	return &domain.RateTable{
		BaseCurrency: baseCurrency,
		Day:          day,
		Rates:        r.Rates,
	}
}
