package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "dish-search-svc/internal/api/http"
	"dish-search-svc/internal/domain"
	"dish-search-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisSearchCache_RoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	cache := storage.NewRedisSearchCache(client, 5*time.Minute)
	ctx := context.Background()

	key := cache.SearchKey("biryani", 150, 300)
	assert.Equal(t, "search:dishes:biryani:150:300", key)

	matches, ok, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, matches)

	assert.NoError(t, cache.Set(ctx, key, biryaniMatches))

	cached, ok, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, biryaniMatches, cached)
}

func TestRedisSearchCache_EntryExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := storage.NewRedisSearchCache(client, time.Minute)
	ctx := context.Background()

	key := cache.SearchKey("dosa", 0, 50)
	assert.NoError(t, cache.Set(ctx, key, []domain.DishMatch{}))

	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := storage.NewRedisRateLimiter(client, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "10.0.0.1")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, remaining, err := limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	// Another client has its own window.
	allowed, _, err = limiter.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err)
	assert.True(t, allowed)

	// Window elapses, allowance resets.
	mr.FastForward(time.Minute + time.Second)
	allowed, _, err = limiter.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimitMiddleware(t *testing.T) {
	_, client := newTestRedis(t)
	limiter := storage.NewRedisRateLimiter(client, time.Minute, 2)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := httpapi.RateLimit(limiter)(next)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/search/dishes", nil)
		req.RemoteAddr = "10.0.0.1:54321"
		recorder := httptest.NewRecorder()
		wrapped.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/search/dishes", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Too many requests")
	assert.Equal(t, "60", recorder.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	mr, client := newTestRedis(t)
	limiter := storage.NewRedisRateLimiter(client, time.Minute, 1)
	mr.Close()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := httpapi.RateLimit(limiter)(next)

	req := httptest.NewRequest(http.MethodGet, "/search/dishes", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	recorder := httptest.NewRecorder()
	wrapped.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
