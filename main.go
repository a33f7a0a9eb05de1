package main

import (
	"github.com/gin-gonic/gin"
	"log"
	"socialfeed-api/config"
	"socialfeed-api/database"
	"socialfeed-api/jobs"
	"socialfeed-api/middleware"
	"socialfeed-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the shared store handle; migration and seeding run once here.
	manager := database.NewManager(cfg.DatabasePath)
	db, err := manager.Open()
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer manager.Close()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Security headers and rate limiting
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)))

	// Setup routes
	routes.SetupRoutes(router, db)

	// Background counter reconciliation
	reconcileJob := jobs.NewCounterReconcileJob(db, cfg.ReconcileInterval)
	reconcileJob.Start()
	defer reconcileJob.Stop()

	// Start server
	log.Printf("Starting SocialFeed API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
