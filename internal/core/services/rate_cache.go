package services

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/core/domain"
	portssvc "github.com/SscSPs/fx_batch_converter/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// rateCache memoizes rate tables for the lifetime of one pipeline run, keyed
// by (UTC calendar day, base currency). Concurrent first accesses for the
// same key are coalesced through singleflight, so the rate service is called
// at most once per distinct day in the run.
type rateCache struct {
	rates portssvc.ExchangeRateSvcFacade

	mu     sync.RWMutex
	tables map[domain.RateKey]*domain.RateTable
	group  singleflight.Group
}

func newRateCache(rates portssvc.ExchangeRateSvcFacade) *rateCache {
	return &rateCache{
		rates:  rates,
		tables: make(map[domain.RateKey]*domain.RateTable),
	}
}

// get returns the cached rate table for the transaction's day, fetching and
// populating the cache on a miss. Lookup failures are not cached; a later
// transaction on the same day will trigger a fresh fetch.
func (c *rateCache) get(ctx context.Context, at time.Time, baseCurrency string) (*domain.RateTable, error) {
	key := domain.NewRateKey(at, baseCurrency)

	c.mu.RLock()
	table, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return table, nil
	}

	value, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Re-check under the singleflight barrier: a sibling may have
		// populated the key between our read miss and this call.
		c.mu.RLock()
		table, ok := c.tables[key]
		c.mu.RUnlock()
		if ok {
			return table, nil
		}

		fetched, err := c.rates.GetRate(ctx, at, baseCurrency)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tables[key] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.RateTable), nil
}
