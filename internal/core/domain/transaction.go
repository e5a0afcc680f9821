package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a pending transaction as fetched from the transaction
// service. Immutable once fetched; identified by Checksum.
type Transaction struct {
	CreatedAt time.Time       `json:"createdAt"` // When the transaction happened
	Currency  string          `json:"currency"`  // ISO 4217 code (e.g., "USD")
	Amount    decimal.Decimal `json:"amount"`    // Original amount; precise decimal type
	Checksum  string          `json:"checksum"`  // Identity of the transaction
}

// ConvertedTransaction is the result of converting a Transaction's amount
// into the base currency. Created exactly once per successfully-converted
// Transaction.
type ConvertedTransaction struct {
	CreatedAt       time.Time       `json:"createdAt"`
	Currency        string          `json:"currency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"` // Rounded to 4 fractional digits
	Checksum        string          `json:"checksum"`
}
