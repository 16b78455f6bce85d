package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:      AppConfig{Name: "tour-admin-api", Env: "local", Port: 8080},
		Database: DatabaseConfig{Host: "db", Service: "svc", User: "u", Password: "p"},
		JWT:      JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
		Firebase: FirebaseConfig{StorageBucket: "tour.appspot.com"},
		Mail:     MailConfig{Concurrency: 4, LogoScale: 0.2},
	}
}

func TestValidate_Success(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	// Given: Config with several invalid sections
	cfg := validConfig()
	cfg.App.Port = 0
	cfg.JWT.Secret = "short"
	cfg.Firebase.StorageBucket = ""
	cfg.Mail.LogoScale = 1.5

	// When
	err := cfg.Validate()

	// Then: every problem is reported at once
	require.Error(t, err)
	assert.Contains(t, err.Error(), "포트")
	assert.Contains(t, err.Error(), "32자")
	assert.Contains(t, err.Error(), "Firebase")
	assert.Contains(t, err.Error(), "로고")
}

func TestValidate_ResendKeyRequiresFrom(t *testing.T) {
	cfg := validConfig()
	cfg.Mail.ResendAPIKey = "re_test"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAIL_FROM")
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_FLOAT", "0.35")
	t.Setenv("TEST_SLICE", "a,b")
	t.Setenv("TEST_DURATION", "bogus")

	assert.InDelta(t, 0.35, getEnvAsFloat("TEST_FLOAT", 0.1), 0.0001)
	assert.Equal(t, []string{"a", "b"}, getEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, "1m0s", getEnvAsDuration("TEST_DURATION", "1m").String())
	assert.Equal(t, 7, getEnvAsInt("TEST_MISSING_INT", 7))
}

func TestGetEnvHelpers_Conversions(t *testing.T) {
	tests := []struct {
		name  string
		value string
		check func(t *testing.T)
	}{
		{"bare number is seconds", "45", func(t *testing.T) {
			assert.Equal(t, 45*time.Second, getEnvAsDuration("TEST_VALUE", "1m"))
		}},
		{"padded bool", " true ", func(t *testing.T) {
			assert.True(t, getEnvAsBool("TEST_VALUE", false))
		}},
		{"int64 upload size", "1048576", func(t *testing.T) {
			assert.Equal(t, int64(1<<20), getEnvAsInt64("TEST_VALUE", 0))
		}},
		{"blank falls back", "  ", func(t *testing.T) {
			assert.Equal(t, 9, getEnvAsInt("TEST_VALUE", 9))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_VALUE", tt.value)
			tt.check(t)
		})
	}
}
