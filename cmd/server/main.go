package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/foodiespot/foodiespot-backend/config"
	"github.com/foodiespot/foodiespot-backend/internal/app/controller"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/internal/app/service"
	"github.com/foodiespot/foodiespot-backend/internal/db"
	"github.com/foodiespot/foodiespot-backend/internal/middleware"
	"github.com/foodiespot/foodiespot-backend/internal/router"
	"github.com/foodiespot/foodiespot-backend/internal/scheduler"
	"github.com/foodiespot/foodiespot-backend/internal/storage"
	"github.com/foodiespot/foodiespot-backend/pkg/logger"
	"github.com/foodiespot/foodiespot-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting FoodieSpot Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs the sign-out token blacklist. Optional: without it
	// tokens simply expire on their own.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Failed to connect to Redis, sign-out revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer redis.Close()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	shopRepo := repository.NewShopRepository(db.GetDB())
	itemRepo := repository.NewFoodItemRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	shopService := service.NewShopService(shopRepo)
	menuService := service.NewMenuService(itemRepo, shopRepo)
	reviewService := service.NewReviewService(reviewRepo, shopRepo)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService, cfg.JWT.Secret)
	shopController := controller.NewShopController(shopService)
	menuController := controller.NewMenuController(menuService)
	reviewController := controller.NewReviewController(reviewService)
	dashboardController := controller.NewDashboardController(shopService, reviewService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		shopController,
		menuController,
		reviewController,
		dashboardController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Nightly rating reconciliation
	ratingScheduler := scheduler.NewRatingScheduler(shopRepo, reviewService)
	if err := ratingScheduler.Start(); err != nil {
		logger.Error("Failed to start rating scheduler", err)
	}
	defer ratingScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
