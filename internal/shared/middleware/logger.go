package middleware

import (
	"log/slog"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// quietPaths are polled by the load balancer and logged at debug level
var quietPaths = map[string]bool{
	"/health": true,
}

// LoggerMiddleware binds a request-scoped slog logger to the request context
// and writes one access log line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
			"userAgent", c.Request.UserAgent(),
			"bytes", c.Writer.Size(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		// JWT 미들웨어가 user_id를 붙인 logger로 교체했을 수 있다
		log := logger.FromContext(c.Request.Context())
		msg := "Request processed"

		switch {
		case status >= 500:
			log.Error(msg, fields...)
		case status >= 400:
			log.Warn(msg, fields...)
		case quietPaths[path]:
			log.Debug(msg, fields...)
		default:
			log.Info(msg, fields...)
		}
	}
}
