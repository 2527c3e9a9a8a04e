package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/bellarosa/storefront/internal/catalog/data"
	catalogHTTP "github.com/bellarosa/storefront/internal/catalog/delivery/http"
	catalogRepo "github.com/bellarosa/storefront/internal/catalog/repository"
	"github.com/bellarosa/storefront/internal/config"
	"github.com/bellarosa/storefront/internal/session"
	sessionHTTP "github.com/bellarosa/storefront/internal/session/delivery/http"
	sessionRepo "github.com/bellarosa/storefront/internal/session/repository"
	"github.com/bellarosa/storefront/pkg/logger"
	"github.com/bellarosa/storefront/pkg/tracing"
)

const serviceName = "storefront"

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(serviceName, cfg.IsDevelopment)
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("log_level", cfg.LogLevel).
		Bool("development", cfg.IsDevelopment).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Seed the static catalog
	catalog := catalogRepo.NewMemoryRepository(data.Products, data.Categories, data.Collections, data.Occasions)
	logger.Logger.Info().Int("products", catalog.Count()).Msg("Catalog loaded")

	// Connect to Redis for session snapshots
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	err = redisClient.Ping(pingCtx).Err()
	cancel()

	var sessions *session.Manager
	if err != nil {
		// Sessions degrade to process-local persistence when Redis is
		// unreachable; carts survive within the process lifetime only.
		logger.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).
			Msg("Redis unavailable, falling back to in-memory session store")
		sessions = session.NewManager(sessionRepo.NewMemoryStore())
	} else {
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
		sessions = session.NewManager(
			sessionRepo.NewTracingStore(sessionRepo.NewRedisStore(redisClient)),
		)
	}

	// Initialize handlers
	catalogHandler := catalogHTTP.NewCatalogHandler(catalog)
	sessionHandler := sessionHTTP.NewSessionHandler(sessions, catalog)

	// Setup router
	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"message":"Storefront is healthy"}`))
	}).Methods("GET")

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}
