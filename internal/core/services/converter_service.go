package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_batch_converter/internal/apperrors"
	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	portssvc "github.com/SscSPs/fx_batch_converter/internal/core/ports/services"
	"github.com/SscSPs/fx_batch_converter/internal/platform/config"
	"github.com/SscSPs/fx_batch_converter/internal/utils"
	"github.com/SscSPs/fx_batch_converter/pkg/parallel"
)

// ConverterService drives one batch conversion run: fetch pending
// transactions, convert them chunk by chunk against day-scoped rate tables,
// and submit the accumulated successes in a single call.
type ConverterService struct {
	rates  portssvc.ExchangeRateSvcFacade
	txns   portssvc.TransactionSvcFacade
	alerts portssvc.AlertSink

	baseCurrency     string
	transactionCount int
	batchSize        int
	logger           *slog.Logger
}

// NewConverterService creates a ConverterService wired to the given service
// proxies.
func NewConverterService(
	cfg *config.Config,
	rates portssvc.ExchangeRateSvcFacade,
	txns portssvc.TransactionSvcFacade,
	alerts portssvc.AlertSink,
	logger *slog.Logger,
) *ConverterService {
	return &ConverterService{
		rates:            rates,
		txns:             txns,
		alerts:           alerts,
		baseCurrency:     cfg.BaseCurrency,
		transactionCount: cfg.TransactionCount,
		batchSize:        cfg.BatchSize,
		logger:           logger,
	}
}

// Run executes the fetch, convert and submit stages once. The rate cache is
// scoped to this call, so repeated runs never reuse stale tables. A
// submission failure is reported through the alert sink and reflected in the
// summary, but does not fail the run; only a broken fetch does.
func (s *ConverterService) Run(ctx context.Context) (*domain.BatchSummary, error) {
	transactions, err := s.txns.FetchPending(ctx, s.transactionCount, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending transactions: %w", err)
	}
	s.logger.Info("Fetched pending transactions", slog.Int("count", len(transactions)))

	cache := newRateCache(s.rates)
	summary := &domain.BatchSummary{Fetched: len(transactions)}

	// Chunks run sequentially; conversions within a chunk run concurrently.
	// Peak outstanding rate lookups are therefore bounded by the batch size.
	converted := make([]domain.ConvertedTransaction, 0, len(transactions))
	for _, chunk := range utils.Chunk(transactions, s.batchSize) {
		ops := make([]parallel.Op[domain.ConvertedTransaction], len(chunk))
		for i, txn := range chunk {
			ops[i] = func(ctx context.Context) (domain.ConvertedTransaction, error) {
				return s.convert(ctx, cache, txn)
			}
		}

		successes, failures := parallel.Gather(ctx, ops)
		for _, convErr := range failures {
			s.logger.Error("Failed to convert transaction", slog.String("error", convErr.Error()))
		}
		summary.Failed += len(failures)
		converted = append(converted, successes...)
	}
	summary.Converted = len(converted)
	if summary.Failed > 0 {
		s.logger.Warn("Some transactions were not converted", slog.Int("failed", summary.Failed))
	}

	if err := s.txns.Submit(ctx, converted); err != nil {
		s.logger.Error("Failed to submit converted transactions", slog.String("error", err.Error()))
		s.alerts.SubmissionFailed(ctx, err, len(converted))
		return summary, nil
	}

	summary.Submitted = true
	return summary, nil
}

// convert resolves the day's rate table for one transaction and converts its
// amount into the base currency, rounded half away from zero to 4 fractional
// digits. A currency absent from the table (or quoted at zero) is a
// missing-rate failure for that transaction only.
func (s *ConverterService) convert(ctx context.Context, cache *rateCache, txn domain.Transaction) (domain.ConvertedTransaction, error) {
	table, err := cache.get(ctx, txn.CreatedAt, s.baseCurrency)
	if err != nil {
		return domain.ConvertedTransaction{}, fmt.Errorf("transaction %s: %w", txn.Checksum, err)
	}

	rate, ok := table.Rate(txn.Currency)
	if !ok || rate.IsZero() {
		return domain.ConvertedTransaction{}, fmt.Errorf("%w: no %s rate on %s (base %s)",
			apperrors.ErrMissingRate, txn.Currency, table.Day.Format("2006-01-02"), s.baseCurrency)
	}

	return domain.ConvertedTransaction{
		CreatedAt:       txn.CreatedAt,
		Currency:        txn.Currency,
		ConvertedAmount: utils.RoundConverted(txn.Amount.Div(rate)),
		Checksum:        txn.Checksum,
	}, nil
}
