// file: app/app.go
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"harvesthub/config"
	"harvesthub/db"
	"harvesthub/handler"
	"harvesthub/logger"
	"harvesthub/metrics"
	"harvesthub/notification"
	"harvesthub/repository"
	"harvesthub/router"
	"harvesthub/service"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// App holds the wired layers of the service.
type App struct {
	DB            *sql.DB
	Router        http.Handler
	FarmerService *service.FarmerService
	AuthService   *service.AuthService
	Notifier      *notification.Notifier
}

// Deps are the external resources an App is built on. Cache may be nil to disable profile
// caching, Clock may be nil to use the system clock.
type Deps struct {
	DB         *sql.DB
	Cache      service.ICacheClient
	Transport  notification.Transport
	Clock      clock.Clock
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// New wires repositories, services, handlers and the router together.
func New(cfg config.Config, deps Deps) (*App, error) {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.Transport == nil {
		transport, err := notification.NewTransport(cfg.Notification, deps.Clock)
		if err != nil {
			return nil, err
		}
		deps.Transport = transport
	}

	appMetrics := metrics.New(deps.Registerer)

	farmerRepo := repository.NewFarmerRepository(deps.DB)
	authService := service.NewAuthService(farmerRepo, cfg.JWT.SecretKey, cfg.JWT.TTL)
	notifier := notification.NewNotifier(deps.Transport, cfg.Notification.Sender, appMetrics)

	photos := service.NewPhotoChecker()
	farmerService := service.NewFarmerService(service.FarmerServiceDeps{
		Repo:      farmerRepo,
		Validator: service.NewRegistrationValidator(photos),
		Photos:    photos,
		Auth:      authService,
		Notifier:  notifier,
		Cache:     deps.Cache,
		CacheTTL:  cfg.Redis.CacheTTL,
		Metrics:   appMetrics,
	})

	farmerHandler := handler.NewFarmerHandler(farmerService)
	authHandler := handler.NewAuthHandler(authService)

	return &App{
		DB:            deps.DB,
		Router:        router.NewRouter(farmerHandler, authHandler, authService, deps.Gatherer),
		FarmerService: farmerService,
		AuthService:   authService,
		Notifier:      notifier,
	}, nil
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	if config.AppConfig.JWT.SecretKey == "" {
		logger.Log.Fatal("jwt.secret_key must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, config.AppConfig.Database)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, config.AppConfig.Database.MigrationsPath); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	rdb, err := db.ConnectRedis(ctx)
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer rdb.Close()

	application, err := New(config.AppConfig, Deps{DB: database, Cache: rdb})
	if err != nil {
		logger.Log.Fatalf("Error wiring application: %v", err)
	}

	if err := serve(ctx, application.Router); err != nil {
		logger.Log.Fatalf("Server stopped with error: %v", err)
	}
	logger.Log.Info("Server exited properly")
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, h http.Handler) error {
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: h,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.AppConfig.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
