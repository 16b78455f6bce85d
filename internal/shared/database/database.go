package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"

	oracle "github.com/godoes/gorm-oracle"
	"gorm.io/gorm"
)

// DB wraps the GORM database instance
type DB struct {
	*gorm.DB
}

// New creates a new database connection
func New(cfg *config.Config) (*DB, error) {
	dsn := buildDSN(cfg.Database)

	gormConfig := &gorm.Config{
		Logger:                 newLogger(cfg),
		PrepareStmt:            true,
		SkipDefaultTransaction: true, // 쓰기는 서비스에서 WithTransaction으로 묶는다
		NowFunc: func() time.Time {
			return time.Now().UTC() // created_at, updated_at 등에 UTC 사용
		},
	}

	db, err := gorm.Open(oracle.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("데이터베이스 핑 실패: %w", err)
	}

	slog.Info("데이터베이스 연결 성공",
		"host", cfg.Database.Host,
		"service", cfg.Database.Service,
		"max_idle_conns", cfg.Database.MaxIdleConns,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"conn_max_lifetime", cfg.Database.ConnMaxLifetime.String(),
		"conn_max_idle_time", cfg.Database.ConnMaxIdleTime.String(),
		"ssl", cfg.Database.SSL,
	)

	if err := Migrate(db, cfg); err != nil {
		return nil, fmt.Errorf("마이그레이션 실패: %w", err)
	}

	return &DB{DB: db}, nil
}

// buildDSN constructs the go-ora connection URL.
// The password is query-escaped since Oracle Cloud passwords usually contain symbols.
func buildDSN(cfg config.DatabaseConfig) string {
	dsn := url.URL{
		Scheme: "oracle",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + cfg.Service,
	}

	// Oracle Cloud ATP는 SSL 필수, 로컬 XE 컨테이너는 SSL 미사용
	if cfg.SSL {
		dsn.RawQuery = "SSL=true"
	}

	return dsn.String()
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("데이터베이스 종료 실패: %w", err)
	}

	slog.Info("데이터베이스 연결이 종료되었습니다")
	return nil
}

// HealthCheck performs a health check on the database
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("데이터베이스 상태 확인 실패: %w", err)
	}

	return nil
}

// Stats reports the connection pool for the health endpoint
func (db *DB) Stats() (sql.DBStats, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return sql.DBStats{}, fmt.Errorf("데이터베이스 인스턴스 가져오기 실패: %w", err)
	}
	return sqlDB.Stats(), nil
}
