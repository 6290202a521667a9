package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"dinnerdate/internal/api"
	"dinnerdate/internal/catalog"
	"dinnerdate/internal/config"
	"dinnerdate/internal/game"
	"dinnerdate/internal/models"
	"dinnerdate/internal/observability"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *metricsPort != 0 {
		cfg.MetricsPort = *metricsPort
	}

	logger := observability.InitLogger("dinnerdate", cfg.LogLevel)
	observability.RegisterMetrics()

	profile := models.Profile{
		Name:        cfg.Profile.Name,
		PartnerName: cfg.Profile.PartnerName,
		StartDate:   cfg.StartDate(),
	}
	coordinator := game.NewCoordinator(profile, cfg.StartingCoins, logger)
	menu := catalog.New()
	server := api.NewServer(coordinator, menu, logger)

	go startMetricsServer(cfg.MetricsPort, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: server.Router(),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("API server shutdown error")
		}
	}()

	logger.Info().Int("port", cfg.Port).Msg("starting API server")
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("API server error")
	}
}

func startMetricsServer(port int, logger zerolog.Logger) {
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info().Int("port", port).Msg("starting metrics server")
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
