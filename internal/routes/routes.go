// Package routes defines HTTP routes for the link-sharing backend.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/karishma-dev/link-sharing-app-backend/docs"
	"github.com/karishma-dev/link-sharing-app-backend/internal/config"
	"github.com/karishma-dev/link-sharing-app-backend/internal/handlers"
	"github.com/karishma-dev/link-sharing-app-backend/internal/middleware"
	"github.com/karishma-dev/link-sharing-app-backend/internal/observability"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Platforms *handlers.PlatformHandler
	Health    *handlers.HealthHandler
	AuthMW    *middleware.AuthMiddleware
	Limiter   middleware.Limiter
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, d Deps) {
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	router.Use(observability.Middleware())

	router.GET("/health", d.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(d.Limiter))
	{
		auth.POST("/signup", middleware.RequireJSON(), d.Auth.Signup)
		auth.POST("/login", middleware.RequireJSON(), d.Auth.Login)
		auth.POST("/change-password", d.AuthMW.RequireAuth(), middleware.RequireJSON(), d.Auth.ChangePassword)
	}

	users := v1.Group("/users")
	{
		users.GET("/profile", d.AuthMW.RequireAuth(), d.Users.Profile)
		users.PUT("/profile", d.AuthMW.RequireAuth(), middleware.RequireJSON(), d.Users.UpdateProfile)

		users.GET("", d.AuthMW.RequireAdmin(), d.Users.ListUsers)
		users.GET("/:id", d.AuthMW.RequireAdmin(), d.Users.GetUser)
		users.DELETE("/:id", d.AuthMW.RequireAdmin(), d.Users.DeleteUser)
	}

	platforms := v1.Group("/platforms")
	{
		platforms.GET("", d.AuthMW.OptionalAuth(), d.Platforms.List)
		platforms.GET("/:id", d.AuthMW.OptionalAuth(), d.Platforms.Get)
		platforms.POST("", d.AuthMW.RequireAdmin(), middleware.RequireJSON(), d.Platforms.Create)
		platforms.PUT("/:id", d.AuthMW.RequireAdmin(), middleware.RequireJSON(), d.Platforms.Update)
		platforms.DELETE("/:id", d.AuthMW.RequireAdmin(), d.Platforms.Delete)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
