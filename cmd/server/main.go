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

	"freelancehub/internal/config"
	"freelancehub/internal/handlers"
	"freelancehub/internal/middleware"
	"freelancehub/internal/repositories/mongodb"
	"freelancehub/internal/services"
	"freelancehub/pkg/cache"
	"freelancehub/pkg/database"
	"freelancehub/pkg/logger"
	"freelancehub/pkg/storage"
	"freelancehub/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := database.EnsureIndexes(db.Database); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	// Cache is optional; repositories fall back to the database when nil
	var cacheService services.CacheService
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		cacheService = redisCache
	}

	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage: %v", err)
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db.Database, cacheService)
	projectRepo := mongodb.NewProjectRepository(db.Database, cacheService)
	bidRepo := mongodb.NewBidRepository(db.Database)
	earningRepo := mongodb.NewEarningRepository(db.Database)

	// Services
	emailService := services.NewSMTPEmailService(cfg.SMTP, appLogger)
	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, appLogger)
	userService := services.NewUserService(userRepo, emailService, cfg.Security.JWTSecret, cfg.App.BaseURL, appLogger)
	projectService := services.NewProjectService(projectRepo, userRepo, storageProvider, appLogger)
	reviewService := services.NewReviewService(userRepo, projectRepo, appLogger)
	bidService := services.NewBidService(bidRepo, projectRepo, userRepo, appLogger)
	earningService := services.NewEarningService(earningRepo, userRepo, appLogger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	bidHandler := handlers.NewBidHandler(bidService)
	earningHandler := handlers.NewEarningHandler(earningService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	jwtSecret := cfg.Security.JWTSecret

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, jwtSecret)
		routes.SetupUserRoutes(v1, userHandler, jwtSecret)
		routes.SetupProjectRoutes(v1, projectHandler, jwtSecret)
		routes.SetupReviewRoutes(v1, reviewHandler, jwtSecret)
		routes.SetupBidRoutes(v1, bidHandler, jwtSecret)
		routes.SetupEarningRoutes(v1, earningHandler, jwtSecret)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting server on port %d", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Errorf("Server shutdown error: %v", err)
	}

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			appLogger.Errorf("Redis close error: %v", err)
		}
	}

	if err := db.Close(); err != nil {
		appLogger.Errorf("MongoDB close error: %v", err)
	}

	appLogger.Info("Server stopped")
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.Region, cfg.Bucket, cfg.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	}
}
