// Package parallel provides a fan-out/fan-in primitive that runs independent
// operations concurrently and separates their outcomes into successes and
// failures, so one bad operation never aborts its siblings.
package parallel

import (
	"context"
	"sync"
)

// Op is a single unit of concurrent work producing a value or an error.
type Op[T any] func(ctx context.Context) (T, error)

// Gather runs every op concurrently to completion and splits the outcomes
// into successes and failures. Gather itself never fails and never cancels
// an op; latency must be bounded by the ops themselves (e.g., per-request
// HTTP timeouts). Every op is observed exactly once. Both result slices
// follow completion order, not input order.
func Gather[T any](ctx context.Context, ops []Op[T]) ([]T, []error) {
	if len(ops) == 0 {
		return nil, nil
	}

	type outcome struct {
		value T
		err   error
	}

	results := make(chan outcome, len(ops))
	var wg sync.WaitGroup
	for _, op := range ops {
		wg.Add(1)
		go func(op Op[T]) {
			defer wg.Done()
			value, err := op(ctx)
			results <- outcome{value: value, err: err}
		}(op)
	}
	wg.Wait()
	close(results)

	successes := make([]T, 0, len(ops))
	var failures []error
	for res := range results {
		if res.err != nil {
			failures = append(failures, res.err)
			continue
		}
		successes = append(successes, res.value)
	}
	return successes, failures
}
