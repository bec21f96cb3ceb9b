package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kujivinjari/backend/internal/config"
	"github.com/kujivinjari/backend/internal/connect"
	"github.com/kujivinjari/backend/internal/container"
	"github.com/kujivinjari/backend/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger := setupLogger(cfg)
	logger.Info("Starting Kujivinjari API server", "environment", cfg.Environment)

	// A missing or unreachable database never blocks startup; the process
	// serves degraded and /test reports the condition.
	mongoClient, err := connect.MongoDBConnect(cfg.DatabaseURL)
	switch {
	case err != nil:
		logger.Warn("MongoDB unreachable, starting without storage", "error", err)
		mongoClient = nil
	case mongoClient == nil:
		logger.Warn("DATABASE_URL not set, starting without storage")
	default:
		logger.Info("Connected to MongoDB successfully", "database", cfg.DatabaseName)
	}

	appContainer := container.NewContainer(logger, mongoClient, cfg)

	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		// JSON logging for production
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// Human-readable logging for development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
