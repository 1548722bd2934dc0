package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newsguard/newsguard/internal/analysis"
	"github.com/newsguard/newsguard/internal/archive"
	"github.com/newsguard/newsguard/internal/articles"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/imagecheck"
	"github.com/newsguard/newsguard/internal/language"
	"github.com/newsguard/newsguard/internal/llm"
	"github.com/newsguard/newsguard/internal/notifications"
	"github.com/newsguard/newsguard/internal/scheduler"
	"github.com/newsguard/newsguard/internal/search"
	"github.com/newsguard/newsguard/internal/server"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting NewsGuard server")

	ctx := context.Background()

	// Initialize the completion backend
	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize LLM provider: %v", err)
	}
	defer provider.Close()
	logrus.Infof("Using %s for analysis prompts", provider.Name())

	// Initialize reference search
	searchClient, err := search.NewClient(ctx, cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize search client: %v", err)
	}

	// Initialize the analysis archive
	archiveService, err := archive.NewService(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize archive: %v", err)
	}

	// Start the retention sweep
	schedulerService := scheduler.NewService(cfg, archiveService)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	srv := server.NewServer(
		cfg,
		analysis.NewService(provider),
		language.NewService(),
		imagecheck.NewService(cfg),
		searchClient,
		articles.NewExtractor(),
		notifications.NewService(cfg),
		archiveService,
	)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
