package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/forgo/phonebook/internal/config"
	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/handler"
	"github.com/forgo/phonebook/internal/logger"
	"github.com/forgo/phonebook/internal/middleware"
	"github.com/forgo/phonebook/internal/repository"
	"github.com/forgo/phonebook/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	slog.SetDefault(logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	dbCfg := database.Config{
		URL:       cfg.Database.URL,
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	}
	db := database.NewSurrealDB(dbCfg)

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("endpoint", dbCfg.Endpoint()),
		slog.String("namespace", cfg.Database.Namespace),
		slog.String("database", cfg.Database.Database),
	)

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to apply schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories and services
	personRepo := repository.NewPersonRepository(db)
	personService := service.NewPersonService(service.PersonServiceConfig{
		PersonRepo:    personRepo,
		RequireNumber: cfg.Phonebook.RequireNumber,
	})

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.PerMinute > 0 {
		limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   cfg.RateLimit.PerMinute,
			Window: time.Minute,
			Burst:  cfg.RateLimit.Burst,
		})
		cleanupCtx, stopCleanup := context.WithCancel(ctx)
		defer stopCleanup()
		go limiter.Run(cleanupCtx, 5*time.Minute)
	}

	router := handler.NewRouter(handler.RouterConfig{
		PersonService:  personService,
		Metrics:        metrics.NewSet(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimiter:    limiter,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
			slog.Bool("require_number", cfg.Phonebook.RequireNumber),
			slog.Int("rate_limit_per_minute", cfg.RateLimit.PerMinute),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
