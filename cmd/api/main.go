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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/kimdohyun-dev/actionlog/pkg/validator"

	_ "github.com/kimdohyun-dev/actionlog/docs"
	"github.com/kimdohyun-dev/actionlog/internal/adapter/handler"
	"github.com/kimdohyun-dev/actionlog/internal/adapter/repository"
	"github.com/kimdohyun-dev/actionlog/internal/infrastructure/cache"
	"github.com/kimdohyun-dev/actionlog/internal/infrastructure/database"
	httpmw "github.com/kimdohyun-dev/actionlog/internal/infrastructure/http/middleware"
	"github.com/kimdohyun-dev/actionlog/internal/infrastructure/storage"
	authuse "github.com/kimdohyun-dev/actionlog/internal/usecase/auth"
	summaryuse "github.com/kimdohyun-dev/actionlog/internal/usecase/summary"
	pkgai "github.com/kimdohyun-dev/actionlog/pkg/ai"
	"github.com/kimdohyun-dev/actionlog/pkg/config"
	pkgjwt "github.com/kimdohyun-dev/actionlog/pkg/jwt"
)

// @title           ActionLog API
// @version         1.0
// @description     Upload a meeting recording, get back a structured summary, keep it in your history.

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via the migrate command.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run cmd/migrate in CI/CD.")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use cmd/migrate for schema changes in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize object storage for uploaded audio retention
	log.Println("🗄️  Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := pkgjwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize AI clients
	log.Println("🤖 Initializing AI clients...")
	transcriber := pkgai.NewTranscriptionClient(&cfg.OpenAI)
	summarizer := pkgai.NewChatClient(&cfg.OpenAI)

	// Initialize usecases
	authService := authuse.NewService(userRepo, jwtManager, logger)
	summaryService := summaryuse.NewService(summaryRepo, userRepo, transcriber, summarizer, minioClient, redisClient, logger)

	// Initialize handlers
	authHandler := handler.NewAuth(authService, logger)
	summaryHandler := handler.NewSummaryHandler(summaryService, logger)

	// Authentication gate runs once per request before routing logic; it never
	// rejects on its own, protected handlers do.
	e.Use(httpmw.Authenticate(jwtManager))

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, authHandler, summaryHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
