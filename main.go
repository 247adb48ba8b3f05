package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"raphtravel/config"
	"raphtravel/database"
	bookingRepoPkg "raphtravel/database/repository/booking"
	userRepoPkg "raphtravel/database/repository/user"
	"raphtravel/handlers"
	"raphtravel/middleware"
	"raphtravel/routes"
	"raphtravel/services/booking"
	"raphtravel/services/gds"
	"raphtravel/services/intelligence"
	"raphtravel/services/user"
	"raphtravel/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}

	cacheClient, err := utils.NewCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cache client: %v", err)
	}
	authCacheClient, err := utils.NewAuthCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth cache client: %v", err)
	}

	utils.StartHealthMonitor([]*redis.Client{cacheClient, authCacheClient}, mongoClient)

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(mongoClient)

	// Services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
		Cfg:  cfg,
	}

	gdsClient := gds.NewDefaultClient(cfg, cacheClient)

	bookingService := &booking.DefaultBookingService{
		GDS:  gdsClient,
		Repo: bookingRepo,
	}

	geminiClient, err := intelligence.NewGeminiClient(cfg.AIServiceKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize recommendation client: %v", err)
	}
	recommendationService := intelligence.NewDefaultRecommendationService(geminiClient)

	// Handlers.
	deps := &routes.Deps{
		JWTSecret: []byte(cfg.JWTSecret),
		UserRepo:  userRepo,
		AuthCache: authCacheClient,

		AuthHandler:           handlers.NewAuthHandler(userService),
		UserHandler:           handlers.NewUserHandler(userService),
		BookingHandler:        handlers.NewBookingHandler(bookingService, userService),
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService, bookingService, userService),
	}
	routes.RegisterRoutes(router, deps)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
