// Command httpd runs the emotion engine HTTP API.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/in-tuned/emotion-engine/internal/api"
	"github.com/in-tuned/emotion-engine/internal/bootstrap"
	"github.com/in-tuned/emotion-engine/internal/logging"
	"github.com/in-tuned/emotion-engine/internal/telemetry"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting emotion engine",
		logging.String("version", cfg.Service.Version),
		logging.Int("port", cfg.Service.Port))

	tele := telemetry.NewProvider()
	ctx := context.Background()

	// The database is optional: without it the service runs on the curated
	// seed lexicon alone and expansion stays disabled.
	db, err := bootstrap.SetupDatabase(cfg, logger)
	if err != nil {
		logger.Warn("database unavailable, running with in-memory lexicon only",
			logging.Err(err))
		db = nil
	}

	eng, err := bootstrap.SetupEngine(ctx, cfg, db, tele, logger)
	if err != nil {
		logger.Fatal("failed to set up analysis engine", logging.Err(err))
	}

	expander := bootstrap.SetupExpansion(cfg, db, eng.Manager, tele, logger)

	var pinger api.Pinger
	var handlerExpander api.Expander
	if db != nil {
		pinger = db.DB
	}
	if expander != nil {
		handlerExpander = expander
	}
	handler := api.NewHandler(eng.Analyzer, eng.Manager, handlerExpander, pinger, logger)

	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	}, tele, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatal("server error", logging.Err(err))
	case sig := <-shutdown:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("graceful shutdown failed", logging.Err(err))
			os.Exit(1)
		}
		if db != nil {
			_ = db.DB.Close()
		}
		logger.Info("server stopped gracefully")
	}
}
