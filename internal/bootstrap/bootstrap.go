package bootstrap

import (
	"io"
	"log/slog"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/i18n"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/middleware"
	"github.com/gin-gonic/gin"
)

// Bootstrap builds the gin engine and its global middleware
type Bootstrap struct {
	cfg *config.Config
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config) *Bootstrap {
	return &Bootstrap{
		cfg: cfg,
	}
}

// SetupEngine creates a gin engine with recovery, request id, CORS, timeout and access log middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()

	// Essential middleware (common for all projects)
	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout, b.routeTimeouts()))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// routeTimeouts lists requests allowed to outlive RequestTimeout
func (b *Bootstrap) routeTimeouts() map[string]time.Duration {
	return map[string]time.Duration{
		"POST /api/v1/agents/emails": b.cfg.Server.MailTimeout,
	}
}

// recoveryHandler logs any panic value and answers with the standard ERROR-003 body
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered any) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)

	resp := sharedError.InternalServerError.Localize(i18n.FromGin(c))
	c.AbortWithStatusJSON(resp.Status, resp)
}
