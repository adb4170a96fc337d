package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ravjot07/TxGraph/infrastructure/config"
	"github.com/ravjot07/TxGraph/infrastructure/di"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Logger.Sync()

	// Watch the config file for view tunable changes
	watcher, err := config.NewWatcher(*configPath, cfg.View, container.Logger)
	if err != nil {
		container.Logger.Warn("Config watcher disabled", zap.Error(err))
	} else {
		watcher.OnChange(func(view config.ViewConfig) {
			container.Logger.Info("View configuration reloaded",
				zap.Int("defaultPageSize", view.DefaultPageSize),
				zap.Ints("pageSizeOptions", view.PageSizeOptions),
			)
		})
		defer watcher.Stop()
	}

	// Setup routes
	handler := container.Router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		container.Logger.Info("Starting ops server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Render the full graph once on startup so the dashboard opens populated
	go func() {
		if err := container.GraphView.ShowFullGraph(ctx); err != nil {
			container.Logger.Warn("Initial graph render failed", zap.Error(err))
		}
		if err := container.ListView.Activate(ctx); err != nil {
			container.Logger.Warn("List view activation failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	container.Logger.Info("Server stopped")
}
