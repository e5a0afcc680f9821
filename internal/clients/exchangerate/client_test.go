package exchangerate_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fx_batch_converter/internal/apperrors"
	"github.com/SscSPs/fx_batch_converter/internal/clients/exchangerate"
	"github.com/SscSPs/fx_batch_converter/pkg/httpclient"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) *exchangerate.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	httpc := httpclient.New(baseURL,
		httpclient.WithRetries(0),
		httpclient.WithLogger(logger),
	)
	return exchangerate.NewClient(httpc, logger)
}

func TestGetRate_BuildsDayScopedRequest(t *testing.T) {
	var gotPath, gotBase string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBase = r.URL.Query().Get("base")
		w.Write([]byte(`{"rates":{"USD":1.1,"GBP":0.85}}`))
	}))
	defer server.Close()

	// 23:30 in UTC+2 is 21:30 UTC, still the 5th.
	at := time.Date(2024, 3, 5, 23, 30, 0, 0, time.FixedZone("EET", 2*3600))
	table, err := newClient(server.URL).GetRate(context.Background(), at, "EUR")

	require.NoError(t, err)
	assert.Equal(t, "/2024-03-05", gotPath)
	assert.Equal(t, "EUR", gotBase)
	assert.Equal(t, "EUR", table.BaseCurrency)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), table.Day)

	rate, ok := table.Rate("USD")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.1").Equal(rate))

	_, ok = table.Rate("JPY")
	assert.False(t, ok)
}

func TestGetRate_SameCalendarDayResolvesToSamePath(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"rates":{}}`))
	}))
	defer server.Close()

	client := newClient(server.URL)
	morning := time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)

	_, err := client.GetRate(context.Background(), morning, "EUR")
	require.NoError(t, err)
	_, err = client.GetRate(context.Background(), evening, "EUR")
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, paths[0], paths[1])
}

func TestGetRate_WrapsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newClient(server.URL).GetRate(context.Background(), time.Now(), "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateLookup))
	var httpErr *apperrors.HTTPError
	assert.True(t, errors.As(err, &httpErr), "original cause should remain in the chain")
}

func TestGetRate_WrapsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).GetRate(context.Background(), time.Now(), "EUR")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateLookup))
}
