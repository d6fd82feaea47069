package middleware

import (
	"Uno/utils/logger"
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResponseCache stores serialized GET responses. *redis.RedisClient
// implements it; MemoryCache is the fallback without redis.
type ResponseCache interface {
	GetCachedResponse(ctx context.Context, method, requestURI string) ([]byte, bool, error)
	SetCachedResponse(ctx context.Context, method, requestURI string, body []byte, ttl time.Duration) error
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheResponses serves repeated GETs from cache for ttl. Only 200
// responses are stored. Cache failures degrade to an uncached request.
func CacheResponses(cache ResponseCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		uri := c.Request.URL.RequestURI()
		body, found, err := cache.GetCachedResponse(ctx, c.Request.Method, uri)
		if err != nil {
			logger.Errorf("[CACHE-ERROR] %v", err)
		}
		if found {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		writer := &bodyWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Header("X-Cache", "MISS")
		c.Next()

		if writer.Status() != http.StatusOK || writer.body.Len() == 0 {
			return
		}
		if err := cache.SetCachedResponse(ctx, c.Request.Method, uri, writer.body.Bytes(), ttl); err != nil {
			logger.Errorf("[CACHE-ERROR] %v", err)
		}
	}
}

// MemoryCache is a bounded LRU of responses. Entries live for the ttl
// given to NewMemoryCache; the per-call ttl is ignored.
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemoryCache(max int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{lru: expirable.NewLRU[string, []byte](max, nil, ttl)}
}

func (m *MemoryCache) GetCachedResponse(ctx context.Context, method, requestURI string) ([]byte, bool, error) {
	body, ok := m.lru.Get(method + ":" + requestURI)
	return body, ok, nil
}

func (m *MemoryCache) SetCachedResponse(ctx context.Context, method, requestURI string, body []byte, ttl time.Duration) error {
	m.lru.Add(method+":"+requestURI, append([]byte(nil), body...))
	return nil
}
