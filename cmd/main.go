package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dookda/cmu-landmos-ai/internal/cache"
	"github.com/dookda/cmu-landmos-ai/internal/config"
	"github.com/dookda/cmu-landmos-ai/internal/handler"
	"github.com/dookda/cmu-landmos-ai/internal/landmos"
	"github.com/dookda/cmu-landmos-ai/internal/metrics"
	"github.com/dookda/cmu-landmos-ai/internal/ollama"
	"github.com/dookda/cmu-landmos-ai/internal/service"
	"github.com/dookda/cmu-landmos-ai/internal/storage"

	_ "github.com/dookda/cmu-landmos-ai/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()

	charts, err := storage.NewStore(cfg.Upload.Dir)
	if err != nil {
		logger.Fatalf("storage error: %v", err)
	}

	gateway := ollama.NewClient(logger, cfg.Ollama)
	stations := landmos.NewClient(logger, cfg.LandMOS.BaseURL, cfg.LandMOS.Timeout)

	analyzeService := service.NewAnalyzeService(logger, gateway, stations, charts, cfg.Ollama)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		analyzeService.SetCacheClient(redisCache)
		logger.Println("set redis as station analysis cache")
	}

	h := handler.NewHandler(analyzeService, stations, charts)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/api/health", h.Health)
	r.Get("/api/models/status", h.ModelStatus)
	r.Post("/api/analyze", h.AnalyzeChart)
	r.Get("/api/charts/{filename}", h.GetChart)
	r.Get("/api/station/data", h.StationData)
	r.Post("/api/station/analyze", h.AnalyzeStation)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
