// Package transaction proxies the transaction service: fetching pending
// transactions and submitting converted batches.
package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_batch_converter/internal/apperrors"
	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	portssvc "github.com/SscSPs/fx_batch_converter/internal/core/ports/services"
	"github.com/SscSPs/fx_batch_converter/internal/dto"
	"github.com/SscSPs/fx_batch_converter/pkg/httpclient"
	"github.com/SscSPs/fx_batch_converter/pkg/parallel"
)

const (
	getTransactionPath      = "/prod/get-transaction"
	processTransactionsPath = "/prod/process-transactions"
)

// Client is the transaction service proxy.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewClient creates a transaction service client.
func NewClient(http *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: http, logger: logger}
}

// FetchPending retrieves up to count pending transactions. The count is
// partitioned into chunks of batchSize; requests within a chunk run
// concurrently, chunks run sequentially to bound the load on the remote
// service. Per-request failures are logged and dropped, so the result may be
// shorter than count (possibly empty) without the call itself failing.
func (c *Client) FetchPending(ctx context.Context, count, batchSize int) ([]domain.Transaction, error) {
	if count <= 0 {
		return nil, nil
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", apperrors.ErrValidation, batchSize)
	}

	transactions := make([]domain.Transaction, 0, count)
	for remaining := count; remaining > 0; remaining -= batchSize {
		chunk := min(batchSize, remaining)
		ops := make([]parallel.Op[domain.Transaction], chunk)
		for i := range ops {
			ops[i] = c.fetchOne
		}

		successes, failures := parallel.Gather(ctx, ops)
		if len(failures) > 0 {
			c.logger.Error("Failed to retrieve transactions from Transaction Service",
				slog.Int("failed", len(failures)),
				slog.String("first_error", failures[0].Error()),
			)
		}
		transactions = append(transactions, successes...)
	}
	return transactions, nil
}

// fetchOne retrieves a single pending transaction.
func (c *Client) fetchOne(ctx context.Context) (domain.Transaction, error) {
	resp, err := c.http.Get(ctx, getTransactionPath)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to retrieve transaction details: %w", err)
	}

	var payload dto.TransactionResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return payload.ToTransaction(), nil
}

// Submit posts the full converted batch in a single call. When the service
// answers success=false the returned error carries the count of transactions
// it reported as failed.
func (c *Client) Submit(ctx context.Context, transactions []domain.ConvertedTransaction) error {
	payload := dto.SubmitTransactionsRequest{Transactions: transactions}

	resp, err := c.http.Post(ctx, processTransactionsPath, payload)
	if err != nil {
		return fmt.Errorf("failed to post transactions: %w", err)
	}

	var verdict dto.SubmitTransactionsResponse
	if err := json.Unmarshal(resp.Body, &verdict); err != nil {
		return fmt.Errorf("failed to decode process-transactions response: %w", err)
	}
	if !verdict.Success {
		return &apperrors.SubmissionError{Failed: verdict.Failed}
	}

	c.logger.Info("Submitted converted transactions", slog.Int("count", len(transactions)))
	return nil
}

var _ portssvc.TransactionSvcFacade = (*Client)(nil)
