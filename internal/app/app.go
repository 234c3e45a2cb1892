package app

import (
	"context"

	"go-salary/internal/employeesalary"
	"go-salary/internal/health"
	"go-salary/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the configured store and broker, registers the routes
// and returns the hooks that release those connections on shutdown.
func BuildApp(router *gin.Engine, cfg Config) ([]func(), error) {
	logger := zap.L().Named("app")
	var cleanups []func()

	repo, storePinger, closeStore, err := buildRepository(cfg)
	if err != nil {
		return nil, err
	}
	cleanups = append(cleanups, closeStore)
	logger.Info("store connection established", zap.String("driver", cfg.StoreDriver))

	publisher := employeesalary.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectMaxRetries)
		if err != nil {
			closeStore()
			return nil, err
		}
		publisher = employeesalary.NewKafkaEventPublisher(writer)
		cleanups = append(cleanups, func() {
			if err := writer.Close(); err != nil {
				logger.Warn("close kafka writer failed", zap.Error(err))
			}
		})
		logger.Info("kafka publisher enabled", zap.String("broker", cfg.KafkaBroker))
	}

	registerModules(router, cfg, repo, publisher, storePinger)

	return cleanups, nil
}

func buildRepository(cfg Config) (employeesalary.Repository, health.Pinger, func(), error) {
	logger := zap.L().Named("app")

	if cfg.StoreDriver == StoreDriverRedis {
		rdb, err := connection.ConnectRedisWithRetry(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.ConnectMaxRetries)
		if err != nil {
			return nil, nil, nil, err
		}
		ping := health.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		return employeesalary.NewRedisRepository(rdb), ping, func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("close redis failed", zap.Error(err))
			}
		}, nil
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Postgres, cfg.ConnectMaxRetries)
	if err != nil {
		return nil, nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, nil, err
	}
	return employeesalary.NewRepository(gormDB), health.PingFunc(sqlDB.PingContext), func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}, nil
}
