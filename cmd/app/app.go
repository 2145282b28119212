package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/starevents/starevents-api/internal/api"
	"github.com/starevents/starevents-api/internal/cache"
	"github.com/starevents/starevents-api/internal/config"
	"github.com/starevents/starevents-api/internal/db"
	"github.com/starevents/starevents-api/internal/logger"
	"github.com/starevents/starevents-api/internal/storage"
	"github.com/starevents/starevents-api/internal/telemetry"
)

func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if conf.Log != nil {
		if err = logger.SetLevel(conf.Log.Level); err != nil {
			zap.L().Warn("invalid log level, keeping default", zap.Error(err))
		}
	}
	conf.WatchLogLevel(func(level string) {
		if err := logger.SetLevel(level); err != nil {
			zap.L().Warn("invalid log level in reloaded config", zap.String("level", level), zap.Error(err))
		}
	})

	shutdownTracer, err := telemetry.Init(ctx, conf.OTel, conf.API.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing -> %w", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			zap.L().Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	var c *cache.Cache
	if conf.Redis != nil && conf.Redis.Enabled {
		rdb, err := cache.NewClient(ctx, conf.Redis, os.Getenv("REDIS_URL"))
		if err != nil {
			return fmt.Errorf("failed to initialize redis -> %w", err)
		}
		defer rdb.Close()
		c = cache.New(rdb, conf.Redis.CacheTTL)
	} else {
		zap.L().Info("redis disabled, caching off")
	}

	images, err := storage.NewImageStore(conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, c, images)
	if err = s.Run(ctx); err != nil {
		return fmt.Errorf("failed to run the server -> %w", err)
	}

	return nil
}
