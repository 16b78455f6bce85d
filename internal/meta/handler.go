package meta

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 5 * time.Second

// Pinger is satisfied by *database.DB
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// poolReporter is optionally implemented by the Pinger
type poolReporter interface {
	Stats() (sql.DBStats, error)
}

type PoolStats struct {
	OpenConnections int   `json:"openConnections"`
	InUse           int   `json:"inUse"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"waitCount"`
}

type ServiceInfo struct {
	Name          string `json:"name"`
	Environment   string `json:"environment"`
	StorageBucket string `json:"storageBucket"`
	MailDelivery  string `json:"mailDelivery"`
}

type CheckResult struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string                 `json:"status"`
	Service ServiceInfo            `json:"service"`
	Checks  map[string]CheckResult `json:"checks"`
	Pool    *PoolStats             `json:"pool,omitempty"`
}

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  Pinger
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db Pinger) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health checks service and database health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{
		Status:  "healthy",
		Service: h.serviceInfo(),
		Checks:  map[string]CheckResult{},
	}

	start := time.Now()
	err := h.db.HealthCheck(ctx)
	database := CheckResult{Status: "up", LatencyMs: time.Since(start).Milliseconds()}
	if err != nil {
		slog.Error("Health check 실패", "check", "database", "error", err)
		database.Status = "down"
		database.Error = err.Error()
		response.Status = "unhealthy"
	}
	response.Checks["database"] = database
	response.Pool = h.poolStats()

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

func (h *Handler) poolStats() *PoolStats {
	reporter, ok := h.db.(poolReporter)
	if !ok {
		return nil
	}
	stats, err := reporter.Stats()
	if err != nil {
		return nil
	}
	return &PoolStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
	}
}

func (h *Handler) serviceInfo() ServiceInfo {
	delivery := "resend"
	if h.cfg.Mail.ResendAPIKey == "" {
		delivery = "noop"
	}
	return ServiceInfo{
		Name:          h.cfg.App.Name,
		Environment:   h.cfg.App.Env,
		StorageBucket: h.cfg.Firebase.StorageBucket,
		MailDelivery:  delivery,
	}
}
