package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"setralog/cmd"
	apphttp "setralog/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs)
	slog.SetDefault(logger)

	mirror, closeMirror, err := cmd.OpenSnapshotMirror(configs)
	if err != nil {
		log.Fatalf("Failed to open snapshot backend %q: %v", configs.SnapshotBackend, err)
	}
	defer func() {
		if closeErr := closeMirror(); closeErr != nil {
			logger.Error("Failed to close snapshot backend", "error", closeErr)
		}
	}()

	app, err := cmd.NewCompositionRoot(configs, mirror, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Restore(ctx); err != nil {
		log.Fatalf("Failed to restore snapshots: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	server, err := app.CreateHTTPServer(ctx)
	if err != nil {
		log.Fatalf("Failed to build HTTP server: %v", err)
	}
	startWebServer(ctx, server, configs, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = jobManager.StopAll(shutdownCtx); err != nil {
		logger.Error("Final snapshot sync failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func newLogger(config cmd.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.LogLevel}
	if config.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// startWebServer serves until ctx is cancelled, then drains in-flight requests.
func startWebServer(ctx context.Context, server *apphttp.Server, config cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{config.FrontendURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
