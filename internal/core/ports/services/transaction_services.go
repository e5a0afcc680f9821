package services

import (
	"context"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
)

// TransactionReaderSvc defines read operations against the transaction service.
type TransactionReaderSvc interface {
	// FetchPending retrieves up to count pending transactions, issuing at
	// most batchSize concurrent requests at a time. Per-request failures are
	// dropped; the returned slice may be shorter than count, possibly empty.
	FetchPending(ctx context.Context, count, batchSize int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations against the transaction service.
type TransactionWriterSvc interface {
	// Submit posts the full converted batch in a single call.
	Submit(ctx context.Context, transactions []domain.ConvertedTransaction) error
}

// TransactionSvcFacade combines all transaction-service operations.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
