package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-registry-service/internal/config"
	"hospital-registry-service/internal/handler"
	"hospital-registry-service/internal/metrics"
	"hospital-registry-service/internal/middleware"
	"hospital-registry-service/internal/repository"
	"hospital-registry-service/internal/service"
	"hospital-registry-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize the seeded in-memory registry
	hospitalRepo := repository.NewHospitalRepo(repository.DefaultSeed())
	log.Printf("Registry seeded with %d hospitals", hospitalRepo.Count())

	// 3. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo)
	statsService := service.NewStatsService(hospitalRepo, cfg.Stats.Interval)

	// 4. Start background stats worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go statsService.Start(ctx)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply shared middleware
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// 7. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService)

	// 8. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.OK(c, gin.H{
			"status":  "healthy",
			"service": "hospital-registry-service",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Hospital registry routes
	hospitals := r.Group("/hospitals")
	{
		hospitals.POST("", hospitalHandler.CreateHospital)
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/:id", hospitalHandler.GetHospital)
	}

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
