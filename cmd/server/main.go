package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agrioptimize.backend/internal/config"
	"agrioptimize.backend/internal/infrastructure/assistant"
	"agrioptimize.backend/internal/infrastructure/models"
	"agrioptimize.backend/internal/infrastructure/repositories"
	"agrioptimize.backend/internal/infrastructure/weather"
	"agrioptimize.backend/internal/interfaces/http/handlers"
	"agrioptimize.backend/internal/interfaces/http/middleware"
	"agrioptimize.backend/internal/usecases"
	"agrioptimize.backend/pkg/jwt"
	"agrioptimize.backend/pkg/logger"
	"agrioptimize.backend/pkg/redis"
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
	runServer        = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB         = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	newTextGenerator = assistant.NewGeminiGenerator
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.FarmerProfile{}, &models.FarmInfo{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("connected to PostgreSQL via GORM")

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Repositories and gateways
	userRepo := repositories.NewUserRepository(db)
	farmerRepo := repositories.NewFarmerProfileRepository(db)
	farmInfoRepo := repositories.NewFarmInfoRepository(db)
	conversationStore := assistant.NewRedisConversationStore(cfg.Assistant.HistoryTTL, cfg.Assistant.HistoryLimit)
	weatherClient := weather.NewClient(cfg.Weather.APIURL, cfg.Weather.APIKey)

	generator, err := newTextGenerator(context.Background(), cfg.Assistant.GeminiAPIKey, cfg.Assistant.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to initialize gemini client: %w", err)
	}

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	userUsecase := usecases.NewUserUsecase(userRepo, jwtService)
	farmerUsecase := usecases.NewFarmerUsecase(farmerRepo)
	farmInfoUsecase := usecases.NewFarmInfoUsecase(farmInfoRepo, weatherClient)
	assistantUsecase := usecases.NewAssistantUsecase(farmInfoRepo, conversationStore, weatherClient, generator, cfg.Assistant.FallbackLocation)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	farmerHandler := handlers.NewFarmerHandler(farmerUsecase)
	farmInfoHandler := handlers.NewFarmInfoHandler(farmInfoUsecase)
	assistantHandler := handlers.NewAssistantHandler(assistantUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:      authHandler,
		userHandler:      userHandler,
		farmerHandler:    farmerHandler,
		farmInfoHandler:  farmInfoHandler,
		assistantHandler: assistantHandler,
		authMiddleware:   authMiddleware,
	})

	log.Printf("AgriOptimize backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
