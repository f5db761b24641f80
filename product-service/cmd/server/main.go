package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/product-service/internal/config"
	"storefront/product-service/internal/handler"
	"storefront/product-service/internal/repository"
	"storefront/product-service/internal/service"
	"storefront/shared/authutils"
	"storefront/shared/database"
	sharedLogger "storefront/shared/logger"
	sharedMiddleware "storefront/shared/middleware"
	"storefront/shared/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	// Загружаем .env файл (если есть) для локальной разработки
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := sharedLogger.New(sharedLogger.Config{
		Level:      cfg.Log.Level,
		Encoding:   cfg.Log.Encoding,
		OutputPath: cfg.Log.File,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.Log.Level))

	// --- Optional Redis for the rate limiter ---
	var limiterStore *redis.Client
	if cfg.Redis.Addr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		redisClient, err := database.ConnectRedis(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger.Named("Redis"))
		cancel()
		if err != nil {
			zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		limiterStore = redisClient
	}

	// --- Dependency Injection ---
	var seed []models.Product
	if cfg.SeedDefaults {
		seed = repository.DefaultProducts()
	}
	productRepo, err := repository.NewMemoryProductRepository(logger, seed...)
	if err != nil {
		zap.L().Fatal("Failed to initialize product store", zap.Error(err))
	}
	productSvc := service.NewProductService(productRepo, logger)
	productHandler := handler.NewProductHandler(productSvc, cfg.ServiceName, logger)

	mutationMiddleware := []gin.HandlerFunc{
		sharedMiddleware.NewRateLimiter(sharedMiddleware.RateLimitConfig{
			Limit:  cfg.RateLimit.Requests,
			Window: cfg.RateLimit.Window,
		}, limiterStore, logger.Named("RateLimiter")),
	}
	if cfg.Auth.Required {
		verifier, err := authutils.NewJWTVerifier(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.Audience, logger)
		if err != nil {
			zap.L().Fatal("Failed to create JWT verifier", zap.Error(err))
		}
		mutationMiddleware = append(mutationMiddleware, sharedMiddleware.BearerAuth(verifier.VerifyToken, logger.Named("BearerAuth")))
		zap.L().Info("Bearer authentication enabled for catalog mutations")
	}

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(sharedMiddleware.RequestID())
	router.Use(sharedMiddleware.GinZapLogger(logger, "/api/product/health"))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	if origins := cfg.GetAllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", sharedMiddleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Location", sharedMiddleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	productHandler.RegisterRoutes(router, mutationMiddleware...)
	p.Use(router)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
