package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/router"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/mail"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|prod)")
	flag.Parse()

	logger.Setup(*env)
	slog.Info("서버 초기화 시작", "env", *env)

	if err := run(*env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

func run(env string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	files, err := storage.NewFirebaseStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("스토리지 초기화 실패: %w", err)
	}

	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, router.Dependencies{
		DB:           db.DB,
		Health:       db,
		Storage:      files,
		Mail:         newMailSender(cfg),
		TokenManager: token.NewJWTManager(cfg),
	})

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"bucket", cfg.Firebase.StorageBucket,
	)

	return serve(ctx, bootstrap.New(cfg, engine), cfg.Server.GracefulTimeout)
}

// newMailSender falls back to a logging sender when no Resend key is configured
func newMailSender(cfg *config.Config) mail.Sender {
	if cfg.Mail.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY 미설정 - 메일을 실제로 발송하지 않습니다")
		return mail.NewNoopSender()
	}
	return mail.NewResendSender(cfg.Mail.ResendAPIKey, cfg.Mail.From, cfg.Mail.ReplyTo)
}

// serve runs srv until it fails or ctx is canceled by a signal, then drains in-flight requests
func serve(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case <-ctx.Done():
		slog.Info("종료 신호 수신됨, 서버 종료 중...", "grace", gracefulTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
