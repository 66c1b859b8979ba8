package http

import (
	"context"
	"time"

	"github.com/fwojciec/gostcat"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements gostcat.Fetcher at compile time.
var _ gostcat.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher wraps a Fetcher with exponential backoff retry logic.
// With the default delays it retries up to 3 times (4 total attempts).
type RetryFetcher struct {
	next   gostcat.Fetcher
	delays []time.Duration
}

// NewRetryFetcher creates a RetryFetcher with the default delays.
func NewRetryFetcher(next gostcat.Fetcher) *RetryFetcher {
	return NewRetryFetcherDelays(next, DefaultRetryDelays())
}

// NewRetryFetcherDelays is like NewRetryFetcher but allows configurable
// delays. This is useful for testing without waiting for real delays.
func NewRetryFetcherDelays(next gostcat.Fetcher, delays []time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch attempts the fetch, retrying on failure after each configured delay.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	maxAttempts := len(f.delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := f.next.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		// Wait before next attempt, respecting cancellation
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close closes the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
