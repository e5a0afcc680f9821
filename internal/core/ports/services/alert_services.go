package services

import "context"

// AlertSink receives run-level failures that must not crash the process,
// such as a failed submission of an otherwise completed batch.
type AlertSink interface {
	// SubmissionFailed is invoked when the final batch submission fails;
	// count is the number of converted transactions that were not accepted.
	SubmissionFailed(ctx context.Context, err error, count int)
}
