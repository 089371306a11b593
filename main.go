package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Santy01/gestion-viajes-api/config"
	"github.com/Santy01/gestion-viajes-api/internal/cache"
	"github.com/Santy01/gestion-viajes-api/internal/consumer"
	"github.com/Santy01/gestion-viajes-api/internal/handler"
	"github.com/Santy01/gestion-viajes-api/internal/middleware"
	"github.com/Santy01/gestion-viajes-api/internal/repository"
	"github.com/Santy01/gestion-viajes-api/internal/service"
	"github.com/Santy01/gestion-viajes-api/internal/validator"
	"github.com/Santy01/gestion-viajes-api/pkg/database"
	"github.com/Santy01/gestion-viajes-api/pkg/logger"
	"github.com/Santy01/gestion-viajes-api/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited with error")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close(db)

	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
		log.Info("seed data applied")
	}

	d := deps{db: db}

	// Optional Redis cost cache
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		costCache := cache.NewCostCache(client, cfg.CacheTTL)
		d.costCache = costCache
		log.Info("destination cost cache enabled")
	}

	// Optional RabbitMQ events
	var mqConsumer *rabbitmq.Consumer
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			return fmt.Errorf("connecting publisher to rabbitmq: %w", err)
		}
		defer p.Close()
		d.publisher = p

		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			return fmt.Errorf("connecting consumer to rabbitmq: %w", err)
		}
		defer mqConsumer.Close()
		log.Info("reservation events enabled")
	}

	e := newAPI(cfg, log, d)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.ServerPort).Info("gestion-viajes API starting")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening: %w", err)
		}
		return nil
	})

	if mqConsumer != nil {
		msgs, err := mqConsumer.Consume()
		if err != nil {
			return fmt.Errorf("starting consumer: %w", err)
		}
		activity := consumer.NewActivityConsumer(log)
		g.Go(func() error {
			return activity.Run(gCtx, msgs)
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		log.Info("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

type deps struct {
	db        *gorm.DB
	costCache *cache.CostCache
	publisher service.EventPublisher
}

// newAPI wires repositories, services and handlers onto a configured echo instance.
func newAPI(cfg *config.Config, log *logrus.Logger, d deps) *echo.Echo {
	destinationRepo := repository.NewDestinationRepository(d.db)
	touristRepo := repository.NewTouristRepository(d.db)
	reservationRepo := repository.NewReservationRepository(d.db)

	var costs repository.CostLookup = destinationRepo
	var invalidator service.CostInvalidator
	checks := map[string]handler.Pinger{"database": dbPing(d.db)}
	if d.costCache != nil {
		costs = cache.NewCachedCostLookup(destinationRepo, d.costCache, log)
		invalidator = d.costCache
		checks["redis"] = d.costCache
	}

	reservationSvc := service.NewReservationService(reservationRepo, touristRepo, costs, d.publisher, log)
	destinationSvc := service.NewDestinationService(destinationRepo, reservationRepo, invalidator, log)
	touristSvc := service.NewTouristService(touristRepo, reservationRepo, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler(log)

	e.Use(echoMw.Recover())
	e.Use(echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	if cfg.RateLimitPerSecond > 0 {
		e.Use(echoMw.RateLimiter(echoMw.NewRateLimiterMemoryStoreWithConfig(echoMw.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimitPerSecond),
			Burst:     int(cfg.RateLimitPerSecond * 2),
			ExpiresIn: 3 * time.Minute,
		})))
	}

	e.GET("/health", handler.NewHealthHandler(checks).Health)

	api := e.Group("/api/v1")
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(api.Group("/reservations"))
	handler.NewDestinationHandler(destinationSvc).RegisterRoutes(api.Group("/destinations"))
	handler.NewTouristHandler(touristSvc).RegisterRoutes(api.Group("/tourists"))

	return e
}

func dbPing(db *gorm.DB) handler.PingFunc {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}
