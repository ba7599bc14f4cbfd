// Package main is the entry point for the link-sharing backend.
package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/karishma-dev/link-sharing-app-backend/docs"
	"github.com/karishma-dev/link-sharing-app-backend/internal/config"
	"github.com/karishma-dev/link-sharing-app-backend/internal/handlers"
	"github.com/karishma-dev/link-sharing-app-backend/internal/middleware"
	"github.com/karishma-dev/link-sharing-app-backend/internal/models"
	"github.com/karishma-dev/link-sharing-app-backend/internal/repository"
	"github.com/karishma-dev/link-sharing-app-backend/internal/routes"
	"github.com/karishma-dev/link-sharing-app-backend/internal/service"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/database"
	"github.com/karishma-dev/link-sharing-app-backend/pkg/redis"
)

// @title Link Sharing App API
// @version 1.0
// @description Account, profile and link management service for the link-sharing app
// @host localhost:5001
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Platform{}, &models.UserLink{}); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	platformRepo := repository.NewPlatformRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Initialize services
	jwtService, err := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatal("Invalid JWT configuration:", err)
	}
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, linkRepo, platformRepo)
	platformService := service.NewPlatformService(platformRepo)

	// Rate limiter: shared counters through Redis when configured,
	// otherwise process-local (single instance only).
	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		redisClient, err := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		limiter = middleware.NewRedisLimiter(redisClient, cfg.RateLimitMax, cfg.RateLimitWindow)
	} else {
		limiter = middleware.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	}

	// Initialize handlers and middleware
	authMW := middleware.NewAuthMiddleware(jwtService, userRepo)

	deps := routes.Deps{
		Auth:      handlers.NewAuthHandler(authService),
		Users:     handlers.NewUserHandler(userService),
		Platforms: handlers.NewPlatformHandler(platformService),
		Health:    handlers.NewHealthHandler(),
		AuthMW:    authMW,
		Limiter:   limiter,
	}

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	routes.Setup(router, cfg, deps)

	// Start server
	log.Printf("Starting link-sharing backend on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
