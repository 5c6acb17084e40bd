package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"deal-tracker/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context (and so every log line) with the incoming X-Request-ID or
// a fresh one, and echoes it back.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
