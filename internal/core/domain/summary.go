package domain

// BatchSummary reports the outcome of one pipeline run.
type BatchSummary struct {
	Fetched   int  // Transactions successfully fetched
	Converted int  // Transactions successfully converted
	Failed    int  // Transactions that failed conversion
	Submitted bool // Whether the final submission succeeded
}
