package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format string every time, potentially confusing the key format.
 */

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Tokens are hashed so raw bearer tokens never sit in redis.
func FormatRevokedTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("revoked_token:%s", hex.EncodeToString(sum[:]))
}

func FormatResponseCacheKey(method, requestURI string) string {
	return fmt.Sprintf("response_cache:%s:%s", method, requestURI)
}
