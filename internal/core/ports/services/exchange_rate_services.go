package services

import (
	"context"
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
)

// ExchangeRateSvcFacade resolves a day's rate table against a base currency.
type ExchangeRateSvcFacade interface {
	// GetRate retrieves the rate table for the UTC calendar day of at. Two
	// timestamps on the same calendar day resolve to the same remote request.
	GetRate(ctx context.Context, at time.Time, baseCurrency string) (*domain.RateTable, error)
}
