package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"linkcut/internal/config"
	"linkcut/internal/controllers"
	"linkcut/internal/database"
	"linkcut/internal/jwt"
	"linkcut/internal/logger"
	"linkcut/internal/middleware"
	"linkcut/internal/repository"
	"linkcut/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLog.Sync()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		zapLog.Fatal("failed to run migrations", zap.Error(err))
	}
	zapLog.Info("database ready")

	// Initialize repositories
	urlRepo := repository.NewURLRepository(db)
	userRepo := repository.NewUserRepository(db)
	connRepo := repository.NewConnectionRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.TokenTTLMinutes)*time.Minute,
	)

	// Initialize services
	urlService := service.NewURLService(urlRepo, connRepo, cfg.BaseURL, zapLog)
	authService := service.NewAuthService(userRepo, urlService, jwtService, zapLog)

	// Initialize controllers
	shortenerController := controllers.NewShortenerController(urlService, zapLog)
	authController := controllers.NewAuthController(authService, zapLog)
	userController := controllers.NewUserController(authService, zapLog)
	qrcodeController := controllers.NewQRCodeController(cfg.BaseURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	router := gin.New()
	router.Use(logger.RequestLogger(zapLog))
	router.Use(gin.Recovery())
	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(generalRateLimiter.LimitMiddleware())
	router.Use(middleware.CurrentUser(authService, zapLog))

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/token", authController.Login)
		auth.POST("/users/create", authController.Register)
	}

	router.GET("/ping", shortenerController.Ping)
	router.GET("/user/status", userController.Status)

	router.POST("/", shortenerController.CreateShortURL)
	router.GET("/:code", shortenerController.Redirect)
	router.GET("/:code/status", shortenerController.Status)
	router.PUT("/:code/update", shortenerController.Update)
	router.DELETE("/:code/delete", shortenerController.Delete)
	router.GET("/:code/qrcode", qrcodeController.GenerateQRCode)

	zapLog.Info("server starting", zap.String("addr", cfg.ServerAddr))
	if err := router.Run(cfg.ServerAddr); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}
