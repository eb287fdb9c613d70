package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultDSN        = "dancestudio.db"
	defaultListenAddr = ":8080"
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultAccessTTL  = "24h"
	defaultRefreshTTL = "168h"
	defaultPepper     = "change-me-refresh-pepper"
	defaultUploadDir  = "./uploads"
	defaultBaseURL    = "/static"
)

type Config struct {
	AppEnv             string
	DatabaseURL        string
	ListenAddr         string
	JWTSecret          string
	JWTAccessTTL       time.Duration
	RefreshTTL         time.Duration
	RefreshTokenPepper string
	UploadDir          string
	StaticBaseURL      string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDSN)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RefreshTokenPepper = strings.TrimSpace(getEnv("REFRESH_TOKEN_PEPPER", defaultPepper))
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.StaticBaseURL = getEnv("STATIC_BASE_URL", defaultBaseURL)

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL, err = parseDurationEnv("REFRESH_TTL", defaultRefreshTTL)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
