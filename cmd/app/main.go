package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/persistence"
	"foodorder/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	logger, err := cmd.NewLogger(config)
	if err != nil {
		log.Printf("logger: %v", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.ConnectDatabase(ctx, config, logger)
	if err != nil {
		logger.Error("store is unavailable", zap.String("driver", config.Database.Driver), zap.Error(err))
		fmt.Fprintln(os.Stderr, "The data store is unavailable. See the log for details.")
		return 1
	}
	defer func() {
		if err := persistence.Close(db); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	app := cmd.NewCompositionRoot(config, db, logger)

	restore, err := commands.NewRestoreStateCommand(config.AdminUsername, config.AdminPassword)
	if err != nil {
		logger.Error("invalid admin configuration", zap.Error(err))
		return 1
	}
	if _, err = app.CreateRestoreStateCommandHandler().Handle(ctx, restore); err != nil {
		logger.Error("failed to restore state", zap.Error(err))
		return 1
	}

	if config.HTTPPort != "" {
		e := app.CreateHTTPServer()
		go startWebServer(e, config.HTTPPort, logger)
		defer stopWebServer(e, logger)
	}

	if config.DispatchSchedule != "" {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			logger.Error("failed to start jobs", zap.Error(err))
			return 1
		}
		defer jobManager.StopAll()
	}

	// Closing stdin unblocks the pending prompt once a signal arrives.
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	return app.CreateConsoleController(os.Stdin, os.Stdout).Run(ctx)
}

func startWebServer(e *echo.Echo, port string, logger *zap.Logger) {
	logger.Info("status api listening", zap.String("port", port))
	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("status api stopped", zap.Error(err))
	}
}

func stopWebServer(e *echo.Echo, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Warn("status api shutdown failed", zap.Error(err))
	}
}
