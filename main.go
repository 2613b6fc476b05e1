package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/matergo/obstetric-api/config"
	"github.com/matergo/obstetric-api/handlers"
	"github.com/matergo/obstetric-api/health"
	"github.com/matergo/obstetric-api/history"
	"github.com/matergo/obstetric-api/interfaces"
	"github.com/matergo/obstetric-api/logging"
	"github.com/matergo/obstetric-api/medications"
	"github.com/matergo/obstetric-api/medications/gemini"
	"github.com/matergo/obstetric-api/medications/openfda"
	"github.com/matergo/obstetric-api/scheduler"
	"github.com/matergo/obstetric-api/server"
	"github.com/matergo/obstetric-api/validation"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs")

	// Calculation history is best effort: the calculators keep working
	// when the database cannot be opened.
	var histStore interfaces.HistoryStore
	var histPinger health.DatabasePinger
	store, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		logging.Warn("History store unavailable, continuing without it",
			"path", cfg.HistoryDBPath, "error", err)
	} else {
		histStore = store
		histPinger = store
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error("Failed to close history store", "error", err)
			}
		}()
	}

	// The label API works without credentials at a reduced rate, the
	// knowledge API does not.
	labelClient := openfda.NewClient(cfg.OpenFDAAPIKey)
	var knowledge medications.KnowledgeClient
	if cfg.GeminiAPIKey != "" {
		knowledge = gemini.NewClient(cfg.GeminiAPIKey,
			gemini.WithTimeout(time.Duration(cfg.KnowledgeTimeout)*time.Second))
	} else {
		logging.Warn("Knowledge API key not configured, lookup pipeline will skip that stage")
	}

	lookup := medications.NewLookup(labelClient, knowledge)
	local := medications.NewLookup(nil, nil)

	validator := validation.NewInputValidator()
	healthChecker := health.NewHealthChecker(histPinger,
		cfg.OpenFDAAPIKey != "", cfg.GeminiAPIKey != "")

	httpHandler := handlers.NewHTTPHandler(lookup, local, labelClient, validator, histStore, healthChecker)

	jobs := scheduler.NewScheduler(histStore, cfg.HistoryRetentionDays)
	if err := jobs.Start(); err != nil {
		logging.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobs.Stop()

	srv := server.NewServer(cfg, httpHandler)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		logging.Error("Server failed to start", "error", err)
		os.Exit(1)
	case sig := <-quit:
		logging.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}
}
