package parallel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fx_batch_converter/pkg/parallel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather_SplitsSuccessesAndFailures(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		failing  int
	}{
		{name: "no failures", total: 5, failing: 0},
		{name: "some failures", total: 10, failing: 4},
		{name: "all failures", total: 3, failing: 3},
		{name: "single success", total: 1, failing: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := make([]parallel.Op[int], tt.total)
			for i := 0; i < tt.total; i++ {
				i := i
				ops[i] = func(ctx context.Context) (int, error) {
					if i < tt.failing {
						return 0, fmt.Errorf("op %d failed", i)
					}
					return i, nil
				}
			}

			successes, failures := parallel.Gather(context.Background(), ops)

			assert.Len(t, successes, tt.total-tt.failing)
			assert.Len(t, failures, tt.failing)
		})
	}
}

func TestGather_EmptyInput(t *testing.T) {
	successes, failures := parallel.Gather[int](context.Background(), nil)
	assert.Empty(t, successes)
	assert.Empty(t, failures)
}

func TestGather_EveryOpObservedOnce(t *testing.T) {
	const total = 20
	ops := make([]parallel.Op[int], total)
	for i := 0; i < total; i++ {
		i := i
		ops[i] = func(ctx context.Context) (int, error) {
			if i%3 == 0 {
				return 0, errors.New("boom")
			}
			return i, nil
		}
	}

	successes, failures := parallel.Gather(context.Background(), ops)

	require.Equal(t, total, len(successes)+len(failures))
	seen := make(map[int]bool, len(successes))
	for _, v := range successes {
		assert.False(t, seen[v], "value %d returned twice", v)
		seen[v] = true
		assert.NotZero(t, v%3, "failing op %d appeared as a success", v)
	}
}

func TestGather_FollowsCompletionOrder(t *testing.T) {
	ops := []parallel.Op[string]{
		func(ctx context.Context) (string, error) {
			time.Sleep(80 * time.Millisecond)
			return "slow", nil
		},
		func(ctx context.Context) (string, error) {
			return "fast", nil
		},
	}

	successes, failures := parallel.Gather(context.Background(), ops)

	require.Empty(t, failures)
	require.Len(t, successes, 2)
	assert.Equal(t, []string{"fast", "slow"}, successes)
}

func TestGather_FailureDoesNotAbortSiblings(t *testing.T) {
	done := make(chan struct{})
	ops := []parallel.Op[int]{
		func(ctx context.Context) (int, error) {
			return 0, errors.New("immediate failure")
		},
		func(ctx context.Context) (int, error) {
			time.Sleep(30 * time.Millisecond)
			close(done)
			return 42, nil
		},
	}

	successes, failures := parallel.Gather(context.Background(), ops)

	select {
	case <-done:
	default:
		t.Fatal("sibling op did not run to completion")
	}
	assert.Equal(t, []int{42}, successes)
	assert.Len(t, failures, 1)
}
