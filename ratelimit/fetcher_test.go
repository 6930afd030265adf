package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/jbialy/staylens"
	"github.com/jbialy/staylens/mock"
	"github.com/jbialy/staylens/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDomainLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDomainLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "other.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := ratelimit.NewDomainLimiter(1) // 1 req/sec = 1000ms between requests

		err := limiter.Wait(context.Background(), "example.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "example.com")
		assert.Error(t, err, "should fail when context times out")
	})
}

func TestFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates after waiting", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "page", nil
			},
		}
		f := ratelimit.NewFetcher(inner, ratelimit.NewDomainLimiter(100))

		html, err := f.Fetch(context.Background(), "https://example.com/s/Goa/homes")
		require.NoError(t, err)
		assert.Equal(t, "page", html)
	})

	t.Run("rejects unparseable URL", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("should not be called")
				return "", nil
			},
		}
		f := ratelimit.NewFetcher(inner, ratelimit.NewDomainLimiter(100))

		_, err := f.Fetch(context.Background(), "://bad-url")
		assert.Equal(t, staylens.EINVALID, staylens.ErrorCode(err))
	})
}
