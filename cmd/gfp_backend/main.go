package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/global_finance_path/internal/adapters/memory"
	"github.com/SscSPs/global_finance_path/internal/core/services"
	"github.com/SscSPs/global_finance_path/internal/handlers"
	"github.com/SscSPs/global_finance_path/internal/middleware"
	"github.com/SscSPs/global_finance_path/internal/platform/config"
	"github.com/SscSPs/global_finance_path/internal/seed"
	"github.com/SscSPs/global_finance_path/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Global Finance Path API
// @version 1.0
// @description Country-specific personal finance content: instruments, savings schemes, tax regulations and recommendations.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	r, err := setupRouter(cfg, logger)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.Bool("write_api", cfg.EnableWriteAPI),
		slog.Bool("metrics", cfg.EnableMetrics))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRouter builds the content store from seed data and wires it through the
// services into a ready gin engine.
func setupRouter(cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store := memory.NewContentStore(seed.Default(), memory.WithLogger(logger))
	logger.Info("Content store seeded", slog.Any("records", store.Counts()))

	var (
		collector  *metrics.MetricsCollector
		searchOpts []services.SearchServiceOption
	)
	if cfg.EnableMetrics {
		collector = metrics.NewMetricsCollector(logger)
		if err := collector.TrackContentRecords(store.Counts); err != nil {
			return nil, err
		}
		searchOpts = append(searchOpts, services.WithSearchObserver(collector))
	}

	serviceContainer := services.NewServiceContainer(memory.NewRepositoryProvider(store), searchOpts...)

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	var metricsHandler http.Handler
	if collector != nil {
		metricsHandler = collector.Handler()
	}
	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, metricsHandler); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}
