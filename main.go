package main

import (
	"log"
	"time"

	"myfinances-be/internal/cache"
	"myfinances-be/internal/config"
	"myfinances-be/internal/controllers"
	"myfinances-be/internal/database"
	"myfinances-be/internal/jwt"
	"myfinances-be/internal/middleware"
	"myfinances-be/internal/repository"
	"myfinances-be/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	userService := service.NewUserService(userRepo)
	entryService := service.NewEntryService(entryRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService, entryService, jwtService)
	entryController := controllers.NewEntryController(entryService, userService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		users := api.Group("/users")
		{
			// Registration and authentication with stricter rate limiting
			users.POST("", authRateLimiter.LimitMiddleware(), userController.Register)
			users.POST("/authenticate", authRateLimiter.LimitMiddleware(), userController.Authenticate)

			users.GET("/:id/balance", userController.Balance)
		}

		entries := api.Group("/entries")
		{
			entries.GET("", entryController.Search)
			entries.POST("", entryController.Create)
			entries.PUT("/:id", entryController.Update)
			entries.DELETE("/:id", entryController.Delete)
			entries.PUT("/:id/status", entryController.UpdateStatus)
		}
	}

	// Start the server
	addr := ":" + cfg.Port
	log.Printf("Server starting on http://localhost%s", addr)
	router.Run(addr)
}
