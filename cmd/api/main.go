package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dvloznov/bank-middleware-mock/internal/api"
	"github.com/dvloznov/bank-middleware-mock/internal/api/handlers"
	"github.com/dvloznov/bank-middleware-mock/internal/config"
	"github.com/dvloznov/bank-middleware-mock/internal/fixtures"
	"github.com/dvloznov/bank-middleware-mock/internal/logger"
	"github.com/dvloznov/bank-middleware-mock/internal/statement"
)

func main() {
	// Load configuration (.env is optional)
	cfg, dotenv, err := config.Load()
	if err != nil {
		bootLog := logger.New()
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	port := flag.String("port", cfg.Port, "HTTP server port (or set PORT env)")
	flag.Parse()

	// Initialize logger
	log, err := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Warn().Err(err).Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
	}
	if !dotenv {
		log.Debug().Msg("No .env file found, relying on environment")
	}

	ctx := context.Background()

	// Load static fixtures
	override, closeOverride, err := fixtures.OpenOverride(ctx, cfg.FixturesDir, cfg.FixturesGCSURI, cfg.GCSEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open fixture source")
	}
	store, err := fixtures.Load(ctx, override)
	if closeErr := closeOverride(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("Failed to close fixture source")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fixtures")
	}

	// Initialize statement generator
	generator, err := statement.NewGenerator(cfg.StatementOptions())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create statement generator")
	}

	statementHandler := handlers.NewStatementHandler(generator, cfg.IncludeAccountNumber)
	fixturesHandler := handlers.NewFixturesHandler(store)

	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      api.NewRouter(statementHandler, fixturesHandler, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("port", *port).
			Str("narration_mode", string(cfg.NarrationMode)).
			Strs("accounts", cfg.Accounts).
			Str("timezone", cfg.Location.String()).
			Msg("Starting mock banking API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
