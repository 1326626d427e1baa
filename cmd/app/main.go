package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fooddelivery/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	// run returns instead of exiting so the connections are always closed.
	runErr := run(ctx, app, configs, logger)
	if closeErr := app.Close(); closeErr != nil {
		logger.Error("closing connections", "error", closeErr)
	}
	if runErr != nil {
		log.Fatalf("%v", runErr)
	}
}

// run serves HTTP and the sweep job until ctx is cancelled or the server fails.
func run(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) error {
	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("creating jobs: %w", err)
	}
	e, err := app.CreateHTTPServer()
	if err != nil {
		return fmt.Errorf("creating http server: %w", err)
	}

	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("starting jobs: %w", err)
	}
	serveErr := startWebServer(e, configs.Addr(), logger)

	var stopErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case stopErr = <-serveErr:
		logger.Error("http server stopped", "error", stopErr)
	}

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
	return stopErr
}

func getConfigs() cmd.Config {
	loadDotEnv(".env")

	config, err := cmd.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	return config
}

// loadDotEnv loads variables from path when the file exists. Variables
// already set in the environment win.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

func startWebServer(e *echo.Echo, addr string, logger *slog.Logger) <-chan error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	return serveErr
}
