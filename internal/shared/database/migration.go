package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"

	"gorm.io/gorm"
)

// ErrMigrateInProduction blocks the destructive reset on production data
var ErrMigrateInProduction = errors.New("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")

// Migrate drops and recreates every table when DB_AUTO_MIGRATE is enabled
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return ErrMigrateInProduction
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	if err := DropAll(db); err != nil {
		return err
	}

	slog.Info("📦 새 테이블 생성 중...")
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// DropAll drops the admin tables, children first
func DropAll(db *gorm.DB) error {
	slog.Info("🗑️  기존 테이블 삭제 중...")

	migrator := db.Migrator()
	for _, table := range model.TableNames() {
		if !migrator.HasTable(table) {
			continue
		}
		if err := migrator.DropTable(table); err != nil {
			return fmt.Errorf("테이블 삭제 실패 %s: %w", table, err)
		}
		slog.Debug("테이블 삭제 성공", "table", table)
	}
	return nil
}

// AutoMigrate creates missing tables and columns without touching data.
// Models are migrated parents first.
func AutoMigrate(db *gorm.DB) error {
	for _, m := range model.All() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}
	return nil
}
