package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventory-tracker/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates or assigns a request id and puts it in the request
// context so that log lines carry it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		line := "%s %s -> %d (%s, %s)"
		args := []any{c.Request.Method, c.Request.URL.Path, status, time.Since(start).Round(time.Microsecond), c.ClientIP()}
		switch {
		case status >= 500:
			m.l.Errorf(ctx, line, args...)
		case status >= 400:
			m.l.Warnf(ctx, line, args...)
		default:
			m.l.Infof(ctx, line, args...)
		}
	}
}
