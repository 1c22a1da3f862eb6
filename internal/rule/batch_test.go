package rule

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestBatchProcessorNew tests the BatchProcessor constructor.
func TestBatchProcessorNew(t *testing.T) {
	t.Parallel()

	upper := func(_ context.Context, s string) string { return strings.ToUpper(s) }

	t.Run("creates processor with defaults", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(upper)
		if bp.Concurrency() != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, bp.Concurrency())
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(upper, WithConcurrency(5))
		if bp.Concurrency() != 5 {
			t.Errorf("expected concurrency 5, got %d", bp.Concurrency())
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(upper, WithConcurrency(0))
		if bp.Concurrency() != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, bp.Concurrency())
		}
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(upper, WithBatchLogger(nil))
		if bp.logger == nil {
			t.Error("expected non-nil logger")
		}
	})
}

// TestBatchProcessorProcess tests batch processing.
func TestBatchProcessorProcess(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		inputs := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		bp := NewBatchProcessor(func(_ context.Context, s string) string {
			// Earlier inputs finish later.
			time.Sleep(time.Duration(len(inputs)-int(s[0]-'a')) * time.Millisecond)
			return strings.ToUpper(s)
		}, WithConcurrency(4))

		results, err := bp.Process(context.Background(), inputs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != len(inputs) {
			t.Fatalf("expected %d results, got %d", len(inputs), len(results))
		}
		for i, in := range inputs {
			if results[i] != strings.ToUpper(in) {
				t.Errorf("result %d: expected %q, got %q", i, strings.ToUpper(in), results[i])
			}
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var current, peak int32
		bp := NewBatchProcessor(func(_ context.Context, n int) int {
			c := atomic.AddInt32(&current, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if c <= p || atomic.CompareAndSwapInt32(&peak, p, c) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&current, -1)
			return n
		}, WithConcurrency(2))

		if _, err := bp.Process(context.Background(), make([]int, 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if peak > 2 {
			t.Errorf("expected at most 2 concurrent analyses, got %d", peak)
		}
	})

	t.Run("handles empty input", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func(_ context.Context, s string) string { return s })
		results, err := bp.Process(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results, got %d", len(results))
		}
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls int32
		bp := NewBatchProcessor(func(_ context.Context, s string) string {
			atomic.AddInt32(&calls, 1)
			return s
		}, WithConcurrency(1))

		_, err := bp.Process(ctx, []string{"a", "b", "c"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if atomic.LoadInt32(&calls) != 0 {
			t.Errorf("expected no analyses after cancellation, got %d", calls)
		}
	})
}

// TestBatchProcessorProcessWithCallback tests streaming results.
func TestBatchProcessorProcessWithCallback(t *testing.T) {
	t.Parallel()

	bp := NewBatchProcessor(func(_ context.Context, n int) int { return n * n })

	var mu sync.Mutex
	got := make(map[int]int)
	err := bp.ProcessWithCallback(context.Background(), []int{1, 2, 3}, func(result, index int) {
		mu.Lock()
		defer mu.Unlock()
		got[index] = result
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[int]int{0: 1, 1: 4, 2: 9}
	for idx, want := range expected {
		if got[idx] != want {
			t.Errorf("index %d: expected %d, got %d", idx, want, got[idx])
		}
	}
}
