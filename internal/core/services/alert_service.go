package services

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/fx_batch_converter/internal/core/ports/services"
)

// LogAlertSink reports submission failures to the structured log. It stands
// in until a real alerting channel (pager, queue) is wired up.
type LogAlertSink struct {
	logger *slog.Logger
}

// NewLogAlertSink creates a log-backed alert sink.
func NewLogAlertSink(logger *slog.Logger) *LogAlertSink {
	return &LogAlertSink{logger: logger}
}

// SubmissionFailed logs the failed submission; the batch is lost for this run
// and must be retried by the caller.
func (s *LogAlertSink) SubmissionFailed(ctx context.Context, err error, count int) {
	s.logger.ErrorContext(ctx, "ALERT: batch submission failed",
		slog.Int("transactions", count),
		slog.String("error", err.Error()),
	)
}

var _ portssvc.AlertSink = (*LogAlertSink)(nil)
