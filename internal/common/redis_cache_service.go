package common

import (
	"context"
	"fmt"
	"time"

	"football-club/matchday/internal/logging"

	"github.com/redis/go-redis/v9"
)

// deleteIfValueScript compares and deletes in one round trip so a lock that
// expired and was taken by another replica is never released by the old owner.
var deleteIfValueScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCacheService implements CacheInterface using Redis and is shared by
// every replica pointed at the same server.
type RedisCacheService struct {
	client *redis.Client
	ctx    context.Context
}

// Ensure RedisCacheService implements CacheInterface
var _ CacheInterface = (*RedisCacheService)(nil)

func NewRedisCacheService(client *redis.Client) *RedisCacheService {
	return &RedisCacheService{
		client: client,
		ctx:    context.Background(),
	}
}

// SetIfAbsent uses SET NX, so only one replica wins a given key.
func (r *RedisCacheService) SetIfAbsent(key, value string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(r.ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

func (r *RedisCacheService) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logging.Warn("Redis cache: failed to get key", "key", key, "error", err.Error())
		return "", false
	}
	return val, true
}

func (r *RedisCacheService) DeleteIfValue(key, value string) bool {
	n, err := deleteIfValueScript.Run(r.ctx, r.client, []string{key}, value).Int()
	if err != nil {
		logging.Warn("Redis cache: failed to release key", "key", key, "error", err.Error())
		return false
	}
	return n == 1
}

// Close closes the Redis connection
func (r *RedisCacheService) Close() error {
	return r.client.Close()
}
