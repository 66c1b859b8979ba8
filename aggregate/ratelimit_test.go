package aggregate_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/gostcat/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("limits requests within a domain", func(t *testing.T) {
		t.Parallel()

		limiter := aggregate.NewDomainLimiter(100)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "gost.ru"))
		require.NoError(t, limiter.Wait(ctx, "gost.ru"))
		elapsed := time.Since(start)

		// Second request must wait for the 100 rps token refill.
		assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
	})

	t.Run("domains do not share a budget", func(t *testing.T) {
		t.Parallel()

		limiter := aggregate.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "gost.ru"))
		require.NoError(t, limiter.Wait(ctx, "docs.cntd.ru"))
		elapsed := time.Since(start)

		assert.Less(t, elapsed, 500*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := aggregate.NewDomainLimiter(0.001)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		require.NoError(t, limiter.Wait(ctx, "gost.ru"))
		err := limiter.Wait(ctx, "gost.ru")
		require.Error(t, err)
	})
}
