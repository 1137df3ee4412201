package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"setralog/internal/adapters/out/credentials"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/jobs"
)

// Snapshot backends accepted by SNAPSHOT_BACKEND.
const (
	SnapshotBackendNone     = "none"
	SnapshotBackendPostgres = "postgres"
	SnapshotBackendRedis    = "redis"
)

type Config struct {
	HTTPPort  string
	LogLevel  slog.Level
	LogFormat string

	SnapshotBackend      string
	SnapshotSyncSchedule string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret      string
	JWTIssuer      string
	AccessTokenTTL time.Duration
	ResetTokenTTL  time.Duration
	FrontendURL    string

	OrderTransitionMode   order.TransitionMode
	CredentialsMode       string
	EnforceUniqueOnUpdate bool
	AllowAdminSignup      bool
}

// LoadConfig reads the configuration through lookup (os.Getenv in production) and applies
// defaults. Every invalid value is reported.
func LoadConfig(lookup func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:             get("HTTP_PORT", "8080"),
		LogFormat:            strings.ToLower(get("LOG_FORMAT", "json")),
		SnapshotBackend:      strings.ToLower(get("SNAPSHOT_BACKEND", SnapshotBackendNone)),
		SnapshotSyncSchedule: get("SNAPSHOT_SYNC_SCHEDULE", jobs.DefaultSnapshotSyncSchedule),
		DBHost:               get("DB_HOST", "localhost"),
		DBPort:               get("DB_PORT", "5432"),
		DBUser:               lookup("DB_USER"),
		DBPassword:           lookup("DB_PASSWORD"),
		DBName:               lookup("DB_NAME"),
		DBSslMode:            get("DB_SSLMODE", "disable"),
		RedisAddr:            get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        lookup("REDIS_PASSWORD"),
		JWTSecret:            lookup("JWT_SECRET"),
		JWTIssuer:            get("JWT_ISSUER", "setralog"),
		FrontendURL:          get("FRONTEND_URL", "http://localhost:5173"),
		CredentialsMode:      strings.ToLower(get("CREDENTIALS_MODE", credentials.ModeBcrypt)),
	}

	var problems []error
	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		problems = append(problems, fmt.Errorf("LOG_FORMAT: %q is neither json nor text", cfg.LogFormat))
	}
	switch cfg.SnapshotBackend {
	case SnapshotBackendNone, SnapshotBackendRedis:
	case SnapshotBackendPostgres:
		if cfg.DBUser == "" || cfg.DBName == "" {
			problems = append(problems, errors.New("DB_USER and DB_NAME are required for the postgres backend"))
		}
	default:
		problems = append(problems, fmt.Errorf("SNAPSHOT_BACKEND: unknown backend %q", cfg.SnapshotBackend))
	}
	if cfg.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		problems = append(problems, fmt.Errorf("REDIS_DB: %w", err))
	}
	if cfg.AccessTokenTTL, err = time.ParseDuration(get("ACCESS_TOKEN_TTL", "24h")); err != nil {
		problems = append(problems, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err))
	}
	if cfg.ResetTokenTTL, err = time.ParseDuration(get("RESET_TOKEN_TTL", "1h")); err != nil {
		problems = append(problems, fmt.Errorf("RESET_TOKEN_TTL: %w", err))
	}
	if cfg.EnforceUniqueOnUpdate, err = strconv.ParseBool(get("ENFORCE_UNIQUE_ON_UPDATE", "true")); err != nil {
		problems = append(problems, fmt.Errorf("ENFORCE_UNIQUE_ON_UPDATE: %w", err))
	}
	if cfg.AllowAdminSignup, err = strconv.ParseBool(get("ALLOW_ADMIN_SIGNUP", "false")); err != nil {
		problems = append(problems, fmt.Errorf("ALLOW_ADMIN_SIGNUP: %w", err))
	}
	if cfg.OrderTransitionMode, err = order.ParseTransitionMode(strings.ToLower(lookup("ORDER_TRANSITION_MODE"))); err != nil {
		problems = append(problems, fmt.Errorf("ORDER_TRANSITION_MODE: %w", err))
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
