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

	"github.com/placewise/backend/internal/adapters/cache"
	"github.com/placewise/backend/internal/adapters/database"
	"github.com/placewise/backend/internal/api/handlers"
	"github.com/placewise/backend/internal/api/middleware"
	"github.com/placewise/backend/internal/api/routes"
	"github.com/placewise/backend/internal/application/services"
	"github.com/placewise/backend/internal/domain/providers"
	"github.com/placewise/backend/internal/infrastructure/clients/mongo"
	"github.com/placewise/backend/internal/infrastructure/clients/redis"
	"github.com/placewise/backend/internal/infrastructure/notifications"
	"github.com/placewise/backend/internal/infrastructure/observability"
	"github.com/placewise/backend/internal/infrastructure/storage"
	"github.com/placewise/backend/pkg/config"
)

func main() {

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	mongoClient, err := mongo.NewClient(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB client: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(ctx); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()
	log.Println("MongoDB client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize adapters; some create their unique indexes on startup
	placeAdapter := database.NewPlaceAdapter(mongoClient)
	reviewAdapter := database.NewReviewAdapter(mongoClient)
	reportAdapter := database.NewReportAdapter(mongoClient)
	preferencesAdapter := database.NewPreferencesAdapter(mongoClient)

	listeAdapter, err := database.NewListeAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize liste adapter: %v", err)
	}
	tagAdapter, err := database.NewTagAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize tag adapter: %v", err)
	}
	userAdapter, err := database.NewUserAdapter(ctx, mongoClient)
	if err != nil {
		log.Fatalf("Failed to initialize user adapter: %v", err)
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Outgoing mail is optional; password reset degrades to an error
	var emailSender providers.EmailSender
	if cfg.SMTP.Configured() {
		emailSender, err = notifications.NewSMTPSender(cfg.SMTP)
		if err != nil {
			log.Printf("Warning: Failed to initialize SMTP sender: %v", err)
		} else {
			log.Println("SMTP sender initialized successfully")
		}
	} else {
		log.Println("Warning: SMTP_HOST is not set; password reset emails disabled")
	}

	imageStore, err := storage.NewLocalImageStore(cfg.Uploads)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Initialize services
	placeService := services.NewPlaceService(placeAdapter, tagAdapter, listeAdapter)
	reviewService := services.NewReviewService(reviewAdapter, placeAdapter, reportAdapter)
	reportService := services.NewReportService(reportAdapter, reviewAdapter)
	listeService := services.NewListeService(listeAdapter, placeAdapter)
	tagService := services.NewTagService(tagAdapter, placeAdapter)
	preferencesService := services.NewPreferencesService(preferencesAdapter)
	recommendationService := services.NewRecommendationService(preferencesAdapter, placeAdapter, reviewAdapter)
	statisticsService := services.NewStatisticsService(userAdapter, placeAdapter, reviewAdapter, reportAdapter, listeAdapter)
	userService := services.NewUserService(userAdapter, listeAdapter, emailSender, imageStore, cfg.Server.BaseURL)

	if cfg.JWT.Secret == "" {
		log.Println("Warning: JWT_SECRET is not set; tokens are signed with an empty secret")
	}
	authenticator := middleware.NewAuthenticator(&cfg.JWT)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, authenticator)
	userHandler := handlers.NewUserHandler(userService)
	placeHandler := handlers.NewPlaceHandler(placeService, recommendationService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	reportHandler := handlers.NewReportHandler(reportService)
	listeHandler := handlers.NewListeHandler(listeService)
	tagHandler := handlers.NewTagHandler(tagService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)
	statsHandler := handlers.NewStatsHandler(statisticsService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router
	router := routes.NewRouter(
		authHandler,
		userHandler,
		placeHandler,
		reviewHandler,
		reportHandler,
		listeHandler,
		tagHandler,
		preferencesHandler,
		statsHandler,
		authenticator,
		cacheMiddleware,
		metrics,
		imageStore.Dir(),
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
