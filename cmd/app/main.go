package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuboids/cmd"
	"cuboids/internal/pkg/logger"

	"github.com/rs/zerolog"
)

const (
	serviceName     = "cuboids"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(serviceName, logger.Options{Level: config.LogLevel, Pretty: config.LogPretty})
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(ctx, config, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cmd.CloseDatabase(db); closeErr != nil {
			log.Error().Err(closeErr).Msg("Failed to close database")
		}
	}()

	app, err := cmd.NewCompositionRoot(config, db, log)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e, err := app.CreateRouter()
	if err != nil {
		jobManager.StopAll(context.Background())
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", config.HTTPPort).
			Str("db_driver", config.DBDriver).
			Str("capacity_update_mode", config.CapacityUpdateMode).
			Msg("Starting server")
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err = <-serverErr:
		log.Error().Err(err).Msg("Server stopped unexpectedly")
	}

	shutdown(log, e.Shutdown, jobManager.StopAll)

	return err
}

func shutdown(log zerolog.Logger, stopServer func(context.Context) error, stopJobs func(context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := stopServer(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	stopJobs(ctx)

	log.Info().Msg("Shutdown complete")
}
