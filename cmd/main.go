package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sitegen_server/config"
	"sitegen_server/internal/ai"
	"sitegen_server/internal/api"
	"sitegen_server/internal/archive"
	"sitegen_server/internal/orchestrator"
	"sitegen_server/internal/wizard"
)

func main() {
	// --- Load .env file ---
	// Must happen BEFORE viper reads the environment.
	err := godotenv.Load()
	if err != nil {
		// .env is optional in production; only warn on unexpected errors.
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	sessions := wizard.NewStore()

	// A nil client means remote generation is unavailable and the
	// orchestrator will always take the template path.
	var remote ai.CompletionClient
	if client := ai.NewClient(cfg.GroqAPIKey, cfg.OpenAIBaseURL, cfg.ModelID); client != nil {
		remote = client
	}
	orch := orchestrator.New(remote, cfg.HasCredential())

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Fatalf("Cannot create output directory %s: %v", cfg.OutputDir, err)
	}
	archiver := archive.NewArchiver(cfg.OutputDir)

	apiHandler := api.NewAPIHandler(sessions, orch, archiver)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation blocks on the remote completion call, so the write
		// timeout is generous.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
