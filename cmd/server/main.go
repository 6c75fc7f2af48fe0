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

	"bela-game/internal/config"
	"bela-game/internal/database"
	"bela-game/internal/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	cfg.SetupLogging()
	logrus.Info("Starting Bela server...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}

// run serves until ctx is cancelled or the listener fails. The results store is
// closed only after the table has stored its last round.
func run(ctx context.Context, cfg config.Config) error {
	db, err := database.New(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open results store: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := server.NewHub()
	go hub.Run(ctx)

	table := server.NewTable(hub, db, cfg)
	tableDone := make(chan error, 1)
	go func() { tableDone <- table.Run(ctx) }()

	e := server.NewRouter(hub, db)
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.HTTPPort).Info("Listening")
		if err := e.Start(":" + cfg.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
	}
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Shutdown failed")
	}

	logrus.Info("Waiting for the table to finish its round")
	if err := <-tableDone; err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithError(err).Error("Table stopped")
	}
	return runErr
}
