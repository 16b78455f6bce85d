package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/storage"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/validator"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app holds the lazily opened resources shared by subcommands
type app struct {
	env   string
	cfg   *config.Config
	db    *database.DB
	files storage.Storage
}

func (a *app) database() (*gorm.DB, error) {
	if a.db == nil {
		db, err := database.New(a.cfg)
		if err != nil {
			return nil, err
		}
		a.db = db
	}
	return a.db.DB, nil
}

func (a *app) storage(ctx context.Context) (storage.Storage, error) {
	if a.files == nil {
		files, err := storage.NewFirebaseStorage(ctx, a.cfg)
		if err != nil {
			return nil, err
		}
		a.files = files
	}
	return a.files, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		slog.Error("데이터베이스 종료 실패", "error", err)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Operator tasks for the tour admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(a.env)

			cfg, err := config.Load(a.env)
			if err != nil {
				return fmt.Errorf("설정 로드 실패: %w", err)
			}
			a.cfg = cfg

			return validator.RegisterAll()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.PersistentFlags().StringVar(&a.env, "env", "local", "Environment (local|dev|prod)")

	root.AddCommand(newCreateUserCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newCleanupGeneratedCmd(a))
	root.AddCommand(newMigrateCmd(a))

	return root
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and columns without dropping data",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migration complete")
			return nil
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		a.close()
		slog.Error("명령 실행 실패", "error", err)
		os.Exit(1)
	}
}
