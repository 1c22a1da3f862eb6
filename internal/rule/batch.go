package rule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of inputs analysed at once when no
// concurrency is configured.
const DefaultConcurrency = 10

// BatchProcessor analyses many inputs concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// A rejected input never stops the batch. The analyze function records
// problems in its result; the only error a batch returns is context
// cancellation.
type BatchProcessor[I, R any] struct {
	// analyze produces the result for a single input.
	analyze func(ctx context.Context, input I) R

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*batchOptions)

type batchOptions struct {
	concurrency int
	logger      *slog.Logger
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		o.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored and DefaultConcurrency is used.
func WithConcurrency(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor that calls analyze for each input.
func NewBatchProcessor[I, R any](analyze func(ctx context.Context, input I) R, opts ...BatchOption) *BatchProcessor[I, R] {
	o := &batchOptions{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &BatchProcessor[I, R]{
		analyze:     analyze,
		concurrency: o.concurrency,
		logger:      o.logger,
	}
}

// Concurrency returns the configured concurrency limit.
func (bp *BatchProcessor[I, R]) Concurrency() int {
	return bp.concurrency
}

// Process analyses every input and returns the results in input order.
//
// Inputs that were not started before the context was cancelled leave a zero
// value in their slot, and the context error is returned.
func (bp *BatchProcessor[I, R]) Process(ctx context.Context, inputs []I) ([]R, error) {
	bp.logger.Info("starting batch processing",
		"total_inputs", len(inputs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	results := make([]R, len(inputs))
	var mu sync.Mutex

	err := bp.run(ctx, inputs, func(result R, index int) {
		mu.Lock()
		results[index] = result
		mu.Unlock()
	})

	bp.logger.Info("batch processing complete",
		"total_inputs", len(inputs),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// ProcessWithCallback analyses every input and calls callback for each
// completed result. This is useful for streaming results.
//
// The callback is called from the goroutine that completed the analysis,
// so it should be thread-safe if it accesses shared state.
func (bp *BatchProcessor[I, R]) ProcessWithCallback(
	ctx context.Context,
	inputs []I,
	callback func(result R, index int),
) error {
	bp.logger.Info("starting batch processing with callback",
		"total_inputs", len(inputs),
		"concurrency", bp.concurrency,
	)
	return bp.run(ctx, inputs, callback)
}

func (bp *BatchProcessor[I, R]) run(ctx context.Context, inputs []I, done func(R, int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, input := range inputs {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("analysing input",
				"index", i+1,
				"total", len(inputs),
			)

			done(bp.analyze(ctx, input), i)
			return nil
		})
	}

	return g.Wait()
}
