// Package config reads process settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/xavierca1/salary-slips/internal/entity"
)

type Config struct {
	Port          string
	Smtp          entity.SmtpConfig
	PDFFontPath   string
	PDFBoldPath   string
	ExportWorkers int
	EmailWorkers  int
	MaxUploadMB   int64
	LogLevel      string
	CORSOrigins   []string
}

// Load reads .env (if any) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function; empty values take defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}
	var errs []string
	getInt := func(key string, def, min, max int) int {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			errs = append(errs, fmt.Sprintf("%s=%q must be an integer in [%d, %d]", key, raw, min, max))
			return def
		}
		return n
	}

	cfg := &Config{
		Port: get("PORT", "8080"),
		Smtp: entity.SmtpConfig{
			Server:         get("SMTP_SERVER", ""),
			Port:           getInt("SMTP_PORT", 587, 1, 65535),
			SenderEmail:    get("SENDER_EMAIL", ""),
			SenderPassword: getenv("SENDER_PASSWORD"),
		},
		PDFFontPath:   get("PDF_FONT_PATH", ""),
		PDFBoldPath:   get("PDF_FONT_BOLD_PATH", ""),
		ExportWorkers: getInt("EXPORT_WORKERS", 4, 1, 64),
		EmailWorkers:  getInt("EMAIL_WORKERS", 2, 1, 32),
		MaxUploadMB:   int64(getInt("MAX_UPLOAD_MB", 20, 1, 1024)),
		LogLevel:      strings.ToLower(get("LOG_LEVEL", "info")),
		CORSOrigins:   splitList(get("CORS_ORIGINS", "*")),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		errs = append(errs, fmt.Sprintf("PORT=%q is not a number", cfg.Port))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL=%q must be debug, info, warn or error", cfg.LogLevel))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
