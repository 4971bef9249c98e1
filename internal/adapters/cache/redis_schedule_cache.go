package cache

import (
	"context"
	"encoding/json"
	"errors"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "schedule:"

// RedisScheduleCache stores optimization results as JSON under a TTL.
// Keys are expected to be derived from the full optimization input
// by the caller.
type RedisScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisScheduleCache(rdb *redis.Client, ttl time.Duration) *RedisScheduleCache {
	return &RedisScheduleCache{rdb: rdb, ttl: ttl}
}

// NewRedisScheduleCacheFromURL parses a redis:// URL and verifies the connection.
func NewRedisScheduleCacheFromURL(ctx context.Context, url string, ttl time.Duration) (*RedisScheduleCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("schedule cache: parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("schedule cache: ping redis: %w", err)
	}

	return NewRedisScheduleCache(rdb, ttl), nil
}

// Fetch a cached schedule result.
func (c *RedisScheduleCache) Get(
	ctx context.Context,
	key string,
) (_ *domain.ScheduleResult, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.Get")(&err)

	if c.rdb == nil {
		return nil, false, errors.New("schedule cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get schedule cache: key must not be empty")
	}

	data, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache key=%q: %w", key, err)
	}

	var res domain.ScheduleResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, false, fmt.Errorf("get schedule cache key=%q: decode: %w", key, err)
	}

	return &res, true, nil
}

// Store a schedule result; a zero TTL keeps it until evicted.
func (c *RedisScheduleCache) Put(ctx context.Context, key string, result *domain.ScheduleResult) error {
	if c.rdb == nil {
		return errors.New("schedule cache: redis client is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert schedule cache: key must not be empty")
	}

	if result == nil {
		return errors.New("insert schedule cache: result must not be nil")
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("insert schedule cache key=%q: encode: %w", key, err)
	}

	if err := c.rdb.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert schedule cache key=%q: %w", key, err)
	}

	return nil
}

func (c *RedisScheduleCache) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
