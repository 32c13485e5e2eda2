// README: Logging middleware; tags each request with an ID and logs method, path, status and latency.
package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()

		log.Printf("%s %s %d %s id=%s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), id)
	}
}

// RequestID returns the ID assigned by Logging, or "" when the middleware did not run.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
