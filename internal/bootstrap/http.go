package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
)

// writeMargin leaves room to flush the response after a handler deadline
const writeMargin = 10 * time.Second

// Server represents the HTTP server (lifecycle management only)
type Server struct {
	cfg    *config.Config
	server *http.Server
}

// New creates a new server instance with the provided handler
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.App.Port),
			Handler:        handler,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   writeTimeout(cfg.Server),
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: 1 << 20, // 1 MB
			ErrorLog:       slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		},
	}
}

// writeTimeout must cover the longest request deadline, otherwise the
// connection is cut while a bulk mail batch is still reporting results.
func writeTimeout(cfg config.ServerConfig) time.Duration {
	longest := max(cfg.RequestTimeout, cfg.MailTimeout)
	if longest == 0 {
		return cfg.WriteTimeout
	}
	return max(cfg.WriteTimeout, longest+writeMargin)
}

// Port returns the server port
func (s *Server) Port() int {
	return s.cfg.App.Port
}

// Start starts the HTTP server
func (s *Server) Start() error {
	slog.Info("서버 시작 중",
		"port", s.cfg.App.Port,
		"env", s.cfg.App.Env,
		"read_timeout", s.cfg.Server.ReadTimeout,
		"write_timeout", s.server.WriteTimeout,
		"request_timeout", s.cfg.Server.RequestTimeout,
		"mail_timeout", s.cfg.Server.MailTimeout,
	)

	return s.server.ListenAndServe()
}

// Shutdown waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
