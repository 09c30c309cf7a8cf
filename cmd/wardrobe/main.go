// Package main is the entry point for the wardrobe server.
// It loads configuration, seeds the in-memory closet, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wardrobe/internal/config"
	"wardrobe/internal/handlers"
	"wardrobe/internal/metrics"
	"wardrobe/internal/models"
	"wardrobe/internal/render"
	"wardrobe/internal/router"
	"wardrobe/internal/seed"
	"wardrobe/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger, debug level in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"timezone", cfg.Location.String(),
		"week_start", cfg.WeekStart.String(),
	)

	// Seed the closet from the configured file or the built-in wardrobe.
	var wardrobe *models.Wardrobe
	if cfg.SeedFile != "" {
		wardrobe, err = seed.LoadFile(cfg.SeedFile, cfg.Location)
	} else {
		wardrobe, err = seed.Default(cfg.Location)
	}
	if err != nil {
		slog.Error("failed to load seed wardrobe", "file", cfg.SeedFile, "error", err)
		os.Exit(1)
	}
	closet := store.NewClosetStore(wardrobe)

	// Initialize the HTML template renderer.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	now := func() time.Time { return time.Now().In(cfg.Location) }

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Pages:   handlers.NewPages(renderer, closet, now),
		Closet:  handlers.NewCloset(renderer, closet),
		Outfits: handlers.NewOutfits(renderer, closet),
		Planner: handlers.NewPlanner(renderer, closet, handlers.CalendarConfig{
			Location:        cfg.Location,
			WeekStart:       cfg.WeekStart,
			Name:            cfg.CalendarName,
			RecurrenceLimit: cfg.RecurrenceLimit,
			Now:             now,
		}),
	}

	// In non-development environments, mark the CSRF cookie Secure (HTTPS-only).
	r, err := router.New(h, metrics.New(closet), !cfg.IsDev())
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
