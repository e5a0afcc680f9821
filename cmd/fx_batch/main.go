package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fx_batch_converter/internal/clients/exchangerate"
	"github.com/SscSPs/fx_batch_converter/internal/clients/transaction"
	"github.com/SscSPs/fx_batch_converter/internal/core/services"
	"github.com/SscSPs/fx_batch_converter/internal/platform/config"
	"github.com/SscSPs/fx_batch_converter/pkg/httpclient"
	"github.com/google/uuid"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// One logger per run so every entry of a run is correlatable.
	runLogger := logger.With(slog.String("run_id", uuid.NewString()))

	rateHTTP := httpclient.New(cfg.ExchangeRateServiceURL,
		httpclient.WithTimeout(cfg.HTTPTimeout),
		httpclient.WithRetries(cfg.HTTPRetries),
		httpclient.WithLogger(runLogger),
	)
	txnHTTP := httpclient.New(cfg.TransactionServiceURL,
		httpclient.WithTimeout(cfg.HTTPTimeout),
		httpclient.WithRetries(cfg.HTTPRetries),
		httpclient.WithLogger(runLogger),
	)

	converter := services.NewConverterService(
		cfg,
		exchangerate.NewClient(rateHTTP, runLogger),
		transaction.NewClient(txnHTTP, runLogger),
		services.NewLogAlertSink(runLogger),
		runLogger,
	)

	summary, err := converter.Run(context.Background())
	if err != nil {
		runLogger.Error("Pipeline run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runLogger.Info("Pipeline run finished",
		slog.Int("fetched", summary.Fetched),
		slog.Int("converted", summary.Converted),
		slog.Int("failed", summary.Failed),
		slog.Bool("submitted", summary.Submitted),
	)
}
