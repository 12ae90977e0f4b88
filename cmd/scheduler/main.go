package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/redis/go-redis/v9"

	"github.com/kubelo1705/booking-system/internal/application/usecase"
	"github.com/kubelo1705/booking-system/internal/domain/rating"
	"github.com/kubelo1705/booking-system/internal/domain/review"
	"github.com/kubelo1705/booking-system/internal/domain/room"
	"github.com/kubelo1705/booking-system/internal/infrastructure/adapter"
	"github.com/kubelo1705/booking-system/internal/infrastructure/config"
	"github.com/kubelo1705/booking-system/internal/infrastructure/scheduler"
	"github.com/kubelo1705/booking-system/pkg/database"
	"github.com/kubelo1705/booking-system/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	applicationLogger := logger.SetupLogger(cfg.Logging.Level)

	db, err := database.GormOpen(cfg.Database.DSN())
	if err != nil {
		applicationLogger.Error("db connect failed", "error", err.Error())
		os.Exit(1)
	}

	if err := database.RunMigrations(db, &room.Hotel{}, &room.Room{}, &review.Review{}, &rating.Aggregate{}); err != nil {
		applicationLogger.Error("db migrations failed", "error", err.Error())
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
		PoolSize: cfg.Redis.PoolSize,
	})
	cache := adapter.NewRedisCacheAdapterWithClient(redisClient, applicationLogger)

	ratingRepo := adapter.NewGormRatingRepository(db)
	flush := usecase.NewFlushRatingsUseCase(ratingRepo, cache, applicationLogger, usecase.FlushConfig{
		WriteRate:          cfg.Flush.WriteRate,
		WriteBurst:         cfg.Flush.WriteBurst,
		BreakerMaxRequests: cfg.Flush.BreakerMaxRequests,
		BreakerInterval:    cfg.Flush.BreakerInterval,
		BreakerTimeout:     cfg.Flush.BreakerTimeout,
	})

	flushScheduler, err := scheduler.NewFlushScheduler(cfg.Flush.IntervalMinutes, flush, applicationLogger)
	if err != nil {
		applicationLogger.Error("Failed to create flush scheduler", "error", err.Error())
		os.Exit(1)
	}

	flushScheduler.Start()
	figure.NewFigure("CATALOG", "", true).Print()
	applicationLogger.Info("Catalog flush scheduler running",
		"flush_interval_minutes", cfg.Flush.IntervalMinutes,
		"redis", cfg.Redis.Address())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	applicationLogger.Info("Shutting down flush scheduler")
	flushScheduler.Stop()
	if err := cache.Close(); err != nil {
		applicationLogger.Warn("Failed to close cache client", "error", err.Error())
	}
}
