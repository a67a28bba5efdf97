package client

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
)

// RedisClient is the subset of go-redis used by the location store.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
}

// NewRedisClient connects to redis and verifies reachability once. Callers
// fall back to the in-memory store when this returns an error; there is no
// reconnection loop afterwards.
func NewRedisClient(cfg dto.Config) (RedisClient, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = cfg.RedisDialTimeout

	redisClient := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.RedisDialTimeout)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		redisClient.Close()
		return nil, err
	}

	return redisClient, nil
}
