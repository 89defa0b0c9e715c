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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/voyago/concierge/internal/adapter/llm"
	"github.com/voyago/concierge/internal/config"
	"github.com/voyago/concierge/internal/service"
	"github.com/voyago/concierge/internal/store"
	v1 "github.com/voyago/concierge/internal/transport/http/v1"
	"github.com/voyago/concierge/internal/traveler"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting concierge...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Profile dataset: %s", cfg.ProfileCSVPath)
	log.Printf("LLM URL: %s", cfg.LLMBaseURL)

	// Initialize session store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize traveler profile store
	profiles := traveler.NewCSVStore(cfg.ProfileCSVPath)

	// Initialize chat client
	chatClient := llm.NewChatClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	// Initialize service
	svc := service.New(db, profiles, chatClient, cfg)

	// Initialize handler
	h := v1.NewHandler(svc, cfg.StaticDir)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Concierge started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down concierge...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Concierge stopped")
}
