package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"velora.backend/internal/config"
	"velora.backend/internal/infrastructure/email"
	"velora.backend/internal/infrastructure/jobs"
	"velora.backend/internal/infrastructure/repositories"
	"velora.backend/internal/infrastructure/storage"
	"velora.backend/internal/interfaces/http/handlers"
	"velora.backend/internal/interfaces/http/middleware"
	"velora.backend/internal/usecases"
	"velora.backend/pkg/jwt"
	"velora.backend/pkg/logger"
	"velora.backend/pkg/metrics"
	"velora.backend/pkg/oauth"
	"velora.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newImageStore = func(ctx context.Context, cfg config.AWSConfig) (storage.ImageStore, error) {
		return storage.NewS3Store(ctx, cfg)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Prometheus collectors
	metrics.Init(cfg.Metrics.Prefix)

	// Initialize Redis. Checkout idempotency degrades gracefully without it,
	// so a failure is logged but not fatal.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// Initialize S3 image storage
	imageStore, err := newImageStore(context.Background(), cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Initialize outbound integrations
	emailSender := email.NewSendGridSender(cfg.SendGrid)
	googleClient := oauth.NewGoogleClient(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	kycRepo := repositories.NewKycRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db, productRepo)
	favoriteRepo := repositories.NewFavoriteRepository(db, productRepo)
	sliderRepo := repositories.NewSliderRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, googleClient, emailSender, cfg.Admin)
	kycUsecase := usecases.NewKycUsecase(kycRepo)
	catalogUsecase := usecases.NewCatalogUsecase(productRepo)
	cartUsecase := usecases.NewCartUsecase(cartRepo, productRepo)
	favoriteUsecase := usecases.NewFavoriteUsecase(favoriteRepo, productRepo)
	sliderUsecase := usecases.NewSliderUsecase(sliderRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, cartRepo, uow)
	adminUsecase := usecases.NewAdminUsecase(userRepo, productRepo, orderRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, jwtService)
	kycHandler := handlers.NewKycHandler(kycUsecase, imageStore)
	productHandler := handlers.NewProductHandler(catalogUsecase, imageStore)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteUsecase)
	sliderHandler := handlers.NewSliderHandler(sliderUsecase, imageStore)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewResetCodeExpiryJob(userRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Frontend.Origin)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		kycHandler:      kycHandler,
		productHandler:  productHandler,
		cartHandler:     cartHandler,
		favoriteHandler: favoriteHandler,
		sliderHandler:   sliderHandler,
		orderHandler:    orderHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Velora Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
