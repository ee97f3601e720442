package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/promo-kiosk/internal/application/service"
	"github.com/sangkips/promo-kiosk/internal/config"
	"github.com/sangkips/promo-kiosk/internal/infrastructure/catalog"
	"github.com/sangkips/promo-kiosk/internal/infrastructure/metrics"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/handler"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/routes"
	"github.com/sangkips/promo-kiosk/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger := logger.New(logger.Options{
		Service: cfg.App.Name + "-api",
		Level:   cfg.Log.Level,
		Pretty:  cfg.Log.Pretty,
	})

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Store.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid store configuration")
	}
	clock, err := cfg.Store.Clock(loc)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid store configuration")
	}

	source, err := catalog.Open(ctx, cfg, loc, appLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open catalog")
	}
	defer source.Close()

	store, err := service.LoadStore(ctx, source.Repository, appLogger)
	if err != nil {
		log.Fatal().Err(err).Str("source", source.Kind.String()).Msg("failed to load catalog")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewStockCollector(store),
	)

	catalogService := service.NewCatalogService(store, clock)

	h := &routes.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService),
	}
	router := routes.Setup(h, &routes.Deps{
		Cfg:      cfg,
		Logger:   appLogger,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.App.Port).Msg("stock board listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
