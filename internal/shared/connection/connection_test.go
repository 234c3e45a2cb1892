package connection

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", User: "app", Password: "secret", DBName: "salary", Port: "5432"}
	assert.Equal(t, "host=db user=app password=secret dbname=salary port=5432 sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestConnectRedisWithRetry_GivesUp(t *testing.T) {
	old := retryDelay
	retryDelay = 0
	defer func() { retryDelay = old }()

	rdb, err := ConnectRedisWithRetry(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}, 2)

	assert.Nil(t, rdb)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis connection failed after 2 retries")
}
