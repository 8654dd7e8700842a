// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/api"
	"github.com/atelier-nord/portfolio-backend/internal/api/handlers"
	"github.com/atelier-nord/portfolio-backend/internal/config"
	"github.com/atelier-nord/portfolio-backend/internal/db"
	"github.com/atelier-nord/portfolio-backend/internal/repository"
	"github.com/atelier-nord/portfolio-backend/internal/seed"
	"github.com/atelier-nord/portfolio-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Initialize MongoDB
	// ============================================
	mongoDB, err := db.NewMongoDB(cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(mongoDB.Database, cfg.ProjectListLimit)
	log.Println("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️ Failed to connect to Redis: %v (continuing without cache)", err)
			redisDB = nil
		} else {
			log.Println("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Seed Data (before serving any traffic)
	// ============================================
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Run(seedCtx, repos); err != nil {
		cancelSeed()
		log.Fatalf("❌ Seeding failed: %v", err)
	}
	cancelSeed()

	// ============================================
	// Initialize Services and Handlers
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config: cfg,
		Repos:  repos,
		Cache:  redisDB,
	})
	h := handlers.NewHandlers(services)
	log.Println("✨ Services initialized")

	// ============================================
	// Create Router and Server
	// ============================================
	r := api.NewRouter(cfg, h, services.Auth)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Close store connections once in-flight requests have drained.
	if redisDB != nil {
		redisDB.Close()
	}
	mongoDB.Close()

	log.Println("Server exited")
}
