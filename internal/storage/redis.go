package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"dish-search-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisSearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{Client: client, TTL: ttl}
}

func (c *RedisSearchCache) SearchKey(name string, minPrice, maxPrice float64) string {
	return "search:dishes:" + name + ":" +
		strconv.FormatFloat(minPrice, 'f', -1, 64) + ":" +
		strconv.FormatFloat(maxPrice, 'f', -1, 64)
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) ([]domain.DishMatch, bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var matches []domain.DishMatch
	if err := json.Unmarshal(payload, &matches); err != nil {
		return nil, false, err
	}
	return matches, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, matches []domain.DishMatch) error {
	payload, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

// RedisRateLimiter counts requests per client in a fixed window, shared
// across processes through Redis.
type RedisRateLimiter struct {
	Client *redis.Client
	Window time.Duration
	Limit  int
}

func NewRedisRateLimiter(client *redis.Client, window time.Duration, limit int) *RedisRateLimiter {
	return &RedisRateLimiter{Client: client, Window: window, Limit: limit}
}

func (l *RedisRateLimiter) rateKey(clientIP string) string {
	return "ratelimit:" + clientIP
}

// Allow records one request for the client and reports whether it is
// within the window limit, along with the remaining allowance.
func (l *RedisRateLimiter) Allow(ctx context.Context, clientIP string) (bool, int, error) {
	key := l.rateKey(clientIP)
	count, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		l.Client.Expire(ctx, key, l.Window)
	}

	remaining := l.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return int(count) <= l.Limit, remaining, nil
}
