// Package server owns the HTTP server lifecycle: boot the shared
// infrastructure, build the kernel handler, listen, and drain on shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackmarxreacher-creator/rby-sub000/app/routes"
	"github.com/jackmarxreacher-creator/rby-sub000/app/services"
	"github.com/jackmarxreacher-creator/rby-sub000/config"
	"github.com/jackmarxreacher-creator/rby-sub000/internal/kernel"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/cache"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/database"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/logger"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/migration"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/storage"
	"github.com/jackmarxreacher-creator/rby-sub000/pkg/ws"
)

const shutdownGrace = 10 * time.Second

// Start boots the application and blocks until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	logger.EnableMongoSink()

	if err := database.Connect(); err != nil {
		return err
	}
	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, running uncached", "error", err)
	}
	storage.Connect()

	go ws.OrderFeed.Run()
	services.RegisterOrderFeed()

	handler := kernel.Build(routes.RegisterAPI)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
