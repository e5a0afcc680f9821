package utils

import (
	"github.com/shopspring/decimal"
)

// ConvertedPrecision is the number of fractional digits retained on converted
// amounts.
const ConvertedPrecision = 4

// RoundConverted rounds a converted amount to the pipeline's fixed precision.
// Decimal.Round rounds half away from zero, so 1.00005 becomes 1.0001 and
// -1.00005 becomes -1.0001.
// Example: amount 90.909090... returns 90.9091
func RoundConverted(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(ConvertedPrecision)
}
