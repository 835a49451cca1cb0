package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/seasonrank/internal/api"
	"github.com/vytor/seasonrank/internal/config"
	"github.com/vytor/seasonrank/internal/db"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/repository/sqlstore"
	"github.com/vytor/seasonrank/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("SeasonRank Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_driver=%s", cfg.DBDriver)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("request_timeout=%s", cfg.RequestTimeout)
	log.Debug("store_batch_size=%d", cfg.StoreBatchSize)
	log.Debug("store_max_concurrency=%d", cfg.StoreMaxConcurrency)
	log.Debug("cors_allowed_origins=%v", cfg.CORSAllowedOrigins)

	database, err := db.Open(context.Background(), cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	tournamentRepo := sqlstore.NewTournamentRepository(database.DB, database.Driver)
	roundRepo := sqlstore.NewRoundRepository(database.DB, database.Driver)
	resultRepo := sqlstore.NewResultRepository(database.DB, database.Driver)
	playerRepo := sqlstore.NewPlayerRepository(database.DB, database.Driver)
	presetRepo := sqlstore.NewFilterPresetRepository(database.DB, database.Driver)

	srv := &api.Server{
		DB: database,
		StandingsService: services.NewStandingsService(
			tournamentRepo, roundRepo, resultRepo, playerRepo,
			cfg.StoreBatchSize, cfg.StoreMaxConcurrency,
		),
		TournamentService:   services.NewTournamentService(tournamentRepo, roundRepo),
		FilterPresetService: services.NewFilterPresetService(presetRepo),
		RequestTimeout:      cfg.RequestTimeout,
		AllowedOrigins:      cfg.CORSAllowedOrigins,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("SeasonRank Server Stopped")
	log.Info("===========================================")
}
