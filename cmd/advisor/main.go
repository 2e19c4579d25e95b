package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tjfontaine/lex-portfolio-advisor/internal/config"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/registration"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/server"
	"github.com/tjfontaine/lex-portfolio-advisor/internal/telemetry"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := telemetry.NewLogger(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	slog.SetDefault(logger)

	shutdownTracer, err := telemetry.InitTracer(telemetry.TracerOptions{
		ServiceName: cfg.Tracing.ServiceName,
		Exporter:    cfg.Tracing.Exporter,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	dispatcher, err := registration.NewDispatcher(logger, registration.Options{
		StrictNumeric: cfg.Validation.StrictNumeric,
	})
	if err != nil {
		log.Fatalf("Failed to build dispatcher: %v", err)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	srv := server.New(server.Options{
		Port:        cfg.Server.Port,
		Timeout:     cfg.Server.Timeout,
		EventPath:   cfg.Server.Path,
		MetricsPath: metricsPath,
	}, logger, dispatcher)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("advisor started",
		slog.String("event_path", cfg.Server.Path),
		slog.Any("intents", dispatcher.Intents()),
		slog.Bool("strict_numeric", cfg.Validation.StrictNumeric),
	)

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	case <-sigChan:
	}

	logger.Info("Shutdown signal received, stopping advisor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Advisor shutdown complete")
}
