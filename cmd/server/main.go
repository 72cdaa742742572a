package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/config"
	"github.com/emberlore/codex/internal/middleware"
	"github.com/emberlore/codex/internal/service"
	"github.com/emberlore/codex/internal/session"
	"github.com/emberlore/codex/internal/web"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the content backend client
	client := codex.New(cfg.Backend.URL,
		codex.WithTimeout(cfg.Backend.Timeout),
		codex.WithLogger(logger),
	)

	slog.Info("using content backend",
		slog.String("url", cfg.Backend.URL),
		slog.Duration("timeout", cfg.Backend.Timeout),
	)

	// Initialize services
	worlds := service.NewWorldService(client)
	places := service.NewPlaceService(client)
	monsters := service.NewMonsterService(client)
	items := service.NewItemService(client)
	auth := service.NewAuthService(client)
	data := service.NewDataService(worlds, places, monsters, logger)

	// Initialize the web server
	srv := web.New(web.Deps{
		Log:      logger,
		Data:     data,
		Worlds:   worlds,
		Places:   places,
		Monsters: monsters,
		Items:    items,
		Auth:     auth,
		Sessions: session.NewStore(cfg.Server.SecureCookies),
	})

	// Apply global middleware
	wrapped := middleware.Chain(
		srv.Routes(),
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
