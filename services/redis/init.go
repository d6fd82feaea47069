package redis

import (
	"context"
	"fmt"
	"log"
)

// InitRedis initializes the Redis connection and basic configuration.
// flush wipes the selected DB, revocations and cached responses included.
func InitRedis(Addr string, DB int, flush bool) (*RedisClient, error) {
	rc, err := NewRedisClient(Addr, DB)
	if err != nil {
		return nil, err
	}

	// Test connection
	ctx := context.Background()
	if err := rc.client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")

	if flush {
		if err := rc.client.FlushDB(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to flush Redis DB: %v", err)
		}
	}

	return rc, nil
}

// CloseRedis gracefully closes the Redis connection
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
