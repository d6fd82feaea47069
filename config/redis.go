package config

import (
	"Uno/services/redis"
	"Uno/utils/logger"
	"os"
)

// ConnectRedis connects to REDIS_URL. It returns nil, nil when no URL is
// configured so the process can fall back to in-memory revocations.
func ConnectRedis() (*redis.RedisClient, error) {
	redisUri := os.Getenv("REDIS_URL")
	if redisUri == "" {
		logger.Warnf("REDIS_URL not set, token revocations stay in memory and responses are not cached")
		return nil, nil
	}

	redisClient, err := redis.InitRedis(redisUri, 0, os.Getenv("REDIS_FLUSH") == "true")
	if err != nil {
		logger.Errorf("[REDIS-ERROR] Error connecting to Redis: %v", err)
		return nil, err
	}
	logger.Info("Redis connection established")
	return redisClient, nil
}
