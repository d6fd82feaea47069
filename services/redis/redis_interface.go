package redis

import (
	redis_utils "Uno/services/redis/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client instance. Addr is either a plain
// "host:port" or a redis:// URL.
func NewRedisClient(Addr string, DB int) (*RedisClient, error) {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			return nil, fmt.Errorf("error parsing Redis URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{client: client}, nil
}

// Revoke blacklists a token until its own expiry
// Key format: "revoked_token:{sha256(token)}"
// TTL: remaining token lifetime
func (rc *RedisClient) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	key := redis_utils.FormatRevokedTokenKey(token)
	if err := rc.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("error revoking token: %v", err)
	}
	return nil
}

// IsRevoked checks the token blacklist
func (rc *RedisClient) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := redis_utils.FormatRevokedTokenKey(token)
	n, err := rc.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("error checking revoked token: %v", err)
	}
	return n > 0, nil
}

// GetCachedResponse retrieves a cached GET response body
// Key format: "response_cache:{method}:{uri}"
// Returns: body, whether it was found, error
func (rc *RedisClient) GetCachedResponse(ctx context.Context, method, requestURI string) ([]byte, bool, error) {
	key := redis_utils.FormatResponseCacheKey(method, requestURI)
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		// Key does not exist
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error getting cached response: %v", err)
	}
	return data, true, nil
}

// SetCachedResponse stores a GET response body with a TTL
func (rc *RedisClient) SetCachedResponse(ctx context.Context, method, requestURI string, body []byte, ttl time.Duration) error {
	key := redis_utils.FormatResponseCacheKey(method, requestURI)
	if err := rc.client.Set(ctx, key, body, ttl).Err(); err != nil {
		return fmt.Errorf("error caching response: %v", err)
	}
	return nil
}
