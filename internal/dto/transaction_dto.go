package dto

import (
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse mirrors the transaction service's pending transaction
// payload.
type TransactionResponse struct {
	CreatedAt time.Time       `json:"createdAt"`
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Checksum  string          `json:"checksum"`
}

// ToTransaction converts the wire payload into a domain transaction.
func (r TransactionResponse) ToTransaction() domain.Transaction {
	return domain.Transaction{
		CreatedAt: r.CreatedAt,
		Currency:  r.Currency,
		Amount:    r.Amount,
		Checksum:  r.Checksum,
	}
}

// SubmitTransactionsRequest is the POST body for process-transactions.
type SubmitTransactionsRequest struct {
	Transactions []domain.ConvertedTransaction `json:"transactions"`
}

// SubmitTransactionsResponse is the transaction service's processing verdict.
type SubmitTransactionsResponse struct {
	Success bool `json:"success"`
	Failed  int  `json:"failed"`
}
