package utils

import (
	"Uno/services/uno"
	"Uno/utils/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs information about each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start time
		startTime := time.Now()

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(startTime)

		// Get request details
		method := c.Request.Method
		path := c.Request.URL.Path
		statusCode := c.Writer.Status()

		if statusCode >= http.StatusInternalServerError {
			logger.Errorf("%s %s -> %d (%s)", method, path, statusCode, latency)
			return
		}
		logger.Infof("%s %s -> %d (%s)", method, path, statusCode, latency)
	}
}

// StatusFor maps an error to the HTTP status it is reported with
func StatusFor(err error) int {
	switch uno.KindOf(err) {
	case uno.KindValidation:
		return http.StatusBadRequest
	case uno.KindNotFound:
		return http.StatusNotFound
	case uno.KindUnauthorized:
		return http.StatusUnauthorized
	case uno.KindConflict:
		return http.StatusConflict
	case uno.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON shape of every failed request
func ErrorBody(status int, message string) gin.H {
	return gin.H{"error": true, "status": status, "message": message}
}

// ErrorHandler handles global errors. Handlers push failures with c.Error
// and return; the last one pushed is written here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			logger.Errorf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			message = "Internal server error"
		}
		c.JSON(status, ErrorBody(status, message))
	}
}
