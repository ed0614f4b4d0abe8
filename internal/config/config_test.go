package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SHEETS_URL", "https://script.google.com/macros/s/abc/exec")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, DataSourceSheets, cfg.DataSource.Type)
	assert.Equal(t, 30*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 12*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, time.Duration(0), cfg.Jobs.DataRefreshInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestFromEnv_Workbook(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("DATA_SOURCE", DataSourceWorkbook)
	t.Setenv("WORKBOOK_PATH", "/data/payroll.xlsx")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, http://localhost:5173")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD_HASH")

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, []string{"https://admin.example.com", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing secret", map[string]string{"SHEETS_URL": "https://x"}, "JWT_SECRET_KEY"},
		{"missing sheets url", map[string]string{"JWT_SECRET_KEY": "s"}, "SHEETS_URL"},
		{"unknown source", map[string]string{"JWT_SECRET_KEY": "s", "DATA_SOURCE": "ftp"}, "DATA_SOURCE"},
		{"postgres without password", map[string]string{"JWT_SECRET_KEY": "s", "SHEETS_URL": "https://x", "SESSION_STORE": "postgres"}, "DB_PASSWORD"},
		{"bad timezone", map[string]string{"JWT_SECRET_KEY": "s", "SHEETS_URL": "https://x", "SHEETS_TIMEZONE": "Mars/Olympus"}, "SHEETS_TIMEZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SHEETS_URL", "https://x")
	t.Setenv("SHEETS_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "SHEETS_TIMEOUT")
}
