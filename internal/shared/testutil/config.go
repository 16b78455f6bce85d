package testutil

import (
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
)

// NewTestConfig creates a test configuration
// This removes the need for environment variables during testing
func NewTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "tour-admin-api-test",
			Env:  "test",
			Port: 8080,
		},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            1521,
			Service:         "test",
			User:            "test",
			Password:        "test",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
			SlowQuery:       200 * time.Millisecond,
			IsAutoMigrate:   true,
		},
		JWT: config.JWTConfig{
			Secret:        "test-jwt-secret-key-must-be-at-least-32-characters-long",
			Expiry:        24 * time.Hour,
			RefreshExpiry: 168 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Server: config.ServerConfig{
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			GracefulTimeout: 30 * time.Second,
			RequestTimeout:  30 * time.Second,
			MailTimeout:     5 * time.Minute,
		},
		Firebase: config.FirebaseConfig{
			ProjectID:     "tour-admin-test",
			StorageBucket: "tour-admin-test.appspot.com",
		},
		Mail: config.MailConfig{
			From:         "Tour Admin <noreply@tour.test>",
			Concurrency:  3,
			LogoScale:    0.2,
			LogoMargin:   10,
			LogoPosition: "bottom-right",
		},
		Upload: config.UploadConfig{
			MaxBytes: 1 << 20,
		},
	}
}
