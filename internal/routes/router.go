package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"havahills/backoffice/internal/api"
	"havahills/backoffice/internal/config"
	"havahills/backoffice/internal/db"
	"havahills/backoffice/internal/logging"
	"havahills/backoffice/internal/metrics"
	"havahills/backoffice/internal/middleware"
	"havahills/backoffice/internal/workers"
)

func RegisterRoutes(cfg *config.Config, redisClient *redis.Client, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check and metrics
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, redisClient, upSince))
	r.Handle("/metrics", promhttp.Handler())

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(cfg, metricsReg, redisClient)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	// Change listener keeps snapshots and the dashboard census in sync with
	// remote edits
	workers.InitChangeListener(deps.Services.Notifier, deps.Services.Inventory, deps.Services.Dashboard)

	RegisterAPIRoutes(r, metricsReg, handlers, deps)

	return r
}
