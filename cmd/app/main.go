package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/api"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/config"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/auth"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/bootstrap"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/cache"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/kafka"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/repository"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/booking"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/resources"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/session"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	store := repository.NewStore(pool, logger)
	resourceService := resources.NewResourceService(store.Inventory(), redisCache)
	bookingService := booking.NewBookingService(
		store,
		resourceService,
		producer,
		logger,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	sessionLog := repository.NewSessionLogRepository(pool)
	sessionRegistry := session.NewRegistry(
		time.Duration(cfg.Session.IdleTimeoutMinutes)*time.Minute,
		sessionLog,
		logger,
	)

	sweepTicker := time.NewTicker(time.Duration(cfg.Session.SweepMinutes) * time.Minute)
	defer sweepTicker.Stop()
	go func() {
		for {
			select {
			case <-sweepTicker.C:
				if n := sessionRegistry.SweepExpired(ctx); n > 0 {
					logger.Info("swept expired sessions", zap.Int("count", n))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	handlers := bootstrap.Handlers{
		Sessions:  api.NewSessionHandler(auth.NewStaticAuthenticator(cfg.Auth), sessionRegistry),
		Resources: api.NewResourceHandler(resourceService),
		Bookings:  api.NewBookingHandler(bookingService),
		Auth:      api.RequireSession(sessionRegistry),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
