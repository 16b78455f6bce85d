package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

// Timeout sets a deadline on the request context. Handlers and services must honor ctx.
// routes overrides the deadline per matched route, keyed as "METHOD /full/path"
// e.g. "POST /api/v1/agents/emails".
func Timeout(timeout time.Duration, routes map[string]time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(c *gin.Context) {
		limit := timeout
		if override, ok := routes[c.Request.Method+" "+c.FullPath()]; ok {
			limit = override
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), limit)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 응답은 핸들러가 이미 보냈을 수 있으므로 로그만 남긴다
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Warn("Request deadline exceeded",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", limit.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
