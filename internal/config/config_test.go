package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 587, cfg.Smtp.Port)
	assert.False(t, cfg.Smtp.Configured())
	assert.Equal(t, 4, cfg.ExportWorkers)
	assert.Equal(t, 2, cfg.EmailWorkers)
	assert.Equal(t, int64(20), cfg.MaxUploadMB)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":            "5001",
		"SMTP_SERVER":     "smtp.gmail.com",
		"SMTP_PORT":       "465",
		"SENDER_EMAIL":    "hr@congty.vn",
		"SENDER_PASSWORD": " pass with spaces ",
		"EXPORT_WORKERS":  "8",
		"LOG_LEVEL":       "DEBUG",
		"CORS_ORIGINS":    "http://localhost:5173, https://hr.congty.vn,",
		"PDF_FONT_PATH":   "/fonts/DejaVuSans.ttf",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.True(t, cfg.Smtp.Configured())
	assert.Equal(t, 465, cfg.Smtp.Port)
	assert.Equal(t, " pass with spaces ", cfg.Smtp.SenderPassword)
	assert.Equal(t, 8, cfg.ExportWorkers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173", "https://hr.congty.vn"}, cfg.CORSOrigins)
	assert.Equal(t, "/fonts/DejaVuSans.ttf", cfg.PDFFontPath)
}

func TestFromEnvInvalid(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{
		"SMTP_PORT":      "abc",
		"EXPORT_WORKERS": "0",
		"LOG_LEVEL":      "verbose",
		"PORT":           "http",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
	assert.Contains(t, err.Error(), "EXPORT_WORKERS")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "PORT=")
}
