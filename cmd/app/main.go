package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kibe27/flightsasa/config"
	"github.com/Kibe27/flightsasa/internal/bootstrap"
	"github.com/Kibe27/flightsasa/internal/cache"
	"github.com/Kibe27/flightsasa/internal/inventory"
	"github.com/Kibe27/flightsasa/internal/kafka"
	"github.com/Kibe27/flightsasa/internal/repository"
	"github.com/Kibe27/flightsasa/internal/service/booking"
	"github.com/Kibe27/flightsasa/internal/service/search"
	"github.com/Kibe27/flightsasa/internal/service/settings"
	"github.com/Kibe27/flightsasa/pkg/logger"
	"github.com/Kibe27/flightsasa/pkg/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger := logger.NewLogger()
	appMetrics := metrics.NewMetrics("flightsasa")

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Pricing.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	settingsRepo := repository.NewSettingsRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	settingsService := settings.NewSettingsService(settingsRepo, redisCache, cfg.Pricing.DefaultLevel, appLogger)
	searchService := search.NewSearchService(
		settingsService,
		inventory.NewGenerator(),
		search.WithMetrics(appMetrics),
		search.WithLogger(appLogger),
	)
	bookingService := booking.NewBookingService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingEventsTopic,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
		time.Duration(cfg.Booking.ConfirmationTTL)*time.Minute,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithMetrics(appMetrics),
		booking.WithLogger(appLogger),
	)

	if err := bootstrap.Run(ctx, cfg, searchService, bookingService, settingsService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
