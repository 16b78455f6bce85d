package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// secretKeys are attribute keys whose values never reach the log output
var secretKeys = map[string]bool{
	"password":        true,
	"currentpassword": true,
	"newpassword":     true,
	"token":           true,
	"accesstoken":     true,
	"refreshtoken":    true,
	"authorization":   true,
	"api_key":         true,
}

// Setup configures the global slog logger based on environment
func Setup(env string) {
	logger := New(os.Stdout, env)
	slog.SetDefault(logger)

	slog.Info("Logger 초기화", "env", env, "level", levelFor(env).String())
}

// New builds the logger used for env: JSON in production, text with debug level in local/dev
func New(w io.Writer, env string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       levelFor(env),
		ReplaceAttr: redact,
	}

	switch env {
	case "production", "prod":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}

func levelFor(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "***")
	}
	return a
}
