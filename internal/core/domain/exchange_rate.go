package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of one day's exchange rates against a
// base currency. Rates maps a currency code to its conversion rate.
type RateTable struct {
	BaseCurrency string
	Day          time.Time // Truncated to UTC midnight
	Rates        map[string]decimal.Decimal
}

// Rate returns the rate for the given currency code and whether the table
// covers it.
func (t *RateTable) Rate(currencyCode string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[currencyCode]
	return rate, ok
}

// RateKey identifies one rate table within a pipeline run: two timestamps on
// the same UTC calendar day with the same base currency produce equal keys.
type RateKey struct {
	Day          string // YYYY-MM-DD
	BaseCurrency string
}

// NewRateKey builds the cache key for a timestamp and base currency.
func NewRateKey(at time.Time, baseCurrency string) RateKey {
	return RateKey{
		Day:          at.UTC().Format("2006-01-02"),
		BaseCurrency: baseCurrency,
	}
}

func (k RateKey) String() string {
	return k.Day + "|" + k.BaseCurrency
}
