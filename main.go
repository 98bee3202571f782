package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gessotrack/backend/internal/currency"
	"github.com/gessotrack/backend/pkg/config"
	"github.com/gessotrack/backend/pkg/reconcile"
	"github.com/gessotrack/backend/pkg/repository"
	"github.com/gessotrack/backend/pkg/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" || (cfg.LogFormat == "" && gin.IsDebugging()) {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory for the SQLite database file
	if cfg.Database.Driver == config.DriverSQLite {
		path, _, _ := strings.Cut(strings.TrimPrefix(cfg.Database.DSN, "file:"), "?")
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	repo, err := repository.Open(cfg.Database)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	policy, err := reconcile.ParseRestorePolicy(cfg.RestorePolicy)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	formatter, err := currency.New(cfg.Currency)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	orchestrator := reconcile.New(repo,
		reconcile.WithRestorePolicy(policy),
		reconcile.WithCurrency(formatter),
	)

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"), cfg, repo, orchestrator)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("listen: %s\n", err)
		}
	}()

	log.Info().Str("policy", string(policy)).Str("currency", formatter.Code()).Msg("Backend started")

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
