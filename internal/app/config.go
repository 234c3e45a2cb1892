package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-salary/internal/middleware"
	"go-salary/internal/shared/connection"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type Config struct {
	Port              string
	Env               string
	StoreDriver       string
	Postgres          connection.PostgresConfig
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	KafkaBroker       string
	AllowedOrigins    []string
	ConnectMaxRetries int
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads the process environment. Call godotenv.Load first to pick
// up a .env file.
func LoadConfig() (Config, error) {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:        valueOr(getenv("PORT"), "3000"),
		Env:         valueOr(getenv("APP_ENV"), "development"),
		StoreDriver: strings.ToLower(valueOr(getenv("STORE_DRIVER"), StoreDriverPostgres)),
		Postgres: connection.PostgresConfig{
			Host:     getenv("DB_HOST"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			DBName:   getenv("DB_NAME"),
			Port:     valueOr(getenv("DB_PORT"), "5432"),
			SSLMode:  getenv("DB_SSLMODE"),
		},
		RedisAddr:      valueOr(getenv("REDIS_ADDR"), "localhost:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD"),
		KafkaBroker:    strings.TrimSpace(getenv("KAFKA_BROKER")),
		AllowedOrigins: middleware.SplitOrigins(getenv("CORS_ALLOWED_ORIGINS")),
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverRedis:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	var err error
	if cfg.RedisDB, err = intOr(getenv("REDIS_DB"), 0); err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.ConnectMaxRetries, err = intOr(getenv("CONNECT_MAX_RETRIES"), 5); err != nil {
		return Config{}, fmt.Errorf("invalid CONNECT_MAX_RETRIES: %w", err)
	}
	if cfg.ConnectMaxRetries < 1 {
		cfg.ConnectMaxRetries = 1
	}

	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func intOr(v string, fallback int) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
