// Package exchangerate proxies the historical exchange-rate service.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/apperrors"
	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	portssvc "github.com/SscSPs/fx_batch_converter/internal/core/ports/services"
	"github.com/SscSPs/fx_batch_converter/internal/dto"
	"github.com/SscSPs/fx_batch_converter/pkg/httpclient"
)

// Client fetches day-scoped rate tables from the exchange-rate service.
// It does not cache; the pipeline owns the run-scoped cache.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// NewClient creates an exchange-rate service client.
func NewClient(http *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: http, logger: logger}
}

// GetRate retrieves the rate table for the UTC calendar day of at against
// baseCurrency. Transport and HTTP failures are wrapped as a rate lookup
// failure carrying the original cause.
func (c *Client) GetRate(ctx context.Context, at time.Time, baseCurrency string) (*domain.RateTable, error) {
	day := truncateToDay(at)
	path := fmt.Sprintf("/%s?base=%s", day.Format("2006-01-02"), baseCurrency)

	resp, err := c.http.Get(ctx, path)
	if err != nil {
		c.logger.Error("Failed to retrieve exchange rate from Exchange Rate Service",
			slog.String("day", day.Format("2006-01-02")),
			slog.String("base", baseCurrency),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: rates for %s (base %s): %w",
			apperrors.ErrRateLookup, day.Format("2006-01-02"), baseCurrency, err)
	}

	var payload dto.ExchangeRateResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate table: %w", apperrors.ErrRateLookup, err)
	}
	return payload.ToRateTable(baseCurrency, day), nil
}

// truncateToDay normalizes a timestamp to UTC midnight of its calendar day.
func truncateToDay(at time.Time) time.Time {
	utc := at.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

var _ portssvc.ExchangeRateSvcFacade = (*Client)(nil)
