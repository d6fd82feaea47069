package middleware

import (
	"Uno/services/store"
	"Uno/utils/logger"
	"time"

	"github.com/gin-gonic/gin"
)

// Tracking folds every served request into the per-endpoint counters.
// Endpoints are recorded by route pattern so game ids do not fan out rows.
func Tracking(recorder store.TrackingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		sample := store.RequestSample{
			Endpoint:   endpoint,
			Method:     c.Request.Method,
			StatusCode: c.Writer.Status(),
			Elapsed:    time.Since(start),
			At:         time.Now(),
		}
		if id := c.GetString(UserIDKey); id != "" {
			sample.UserID = &id
		}

		if err := recorder.RecordRequest(c.Request.Context(), sample); err != nil {
			logger.Errorf("[TRACKING-ERROR] %s %s: %v", sample.Method, sample.Endpoint, err)
		}
	}
}
