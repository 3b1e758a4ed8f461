package main

import (
	"alcyxob/nutrition-app/internal/api"
	"alcyxob/nutrition-app/internal/config"
	"alcyxob/nutrition-app/internal/logger"
	"alcyxob/nutrition-app/internal/nutrition"
	"alcyxob/nutrition-app/internal/repository/mongo"
	"alcyxob/nutrition-app/internal/service"
	"alcyxob/nutrition-app/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Nutrition Tracker API
// @version 1.0
// @description Meal logging, nutrition goals, streaks and statistics.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zl.Info("Starting Nutrition App Server...", zap.String("environment", cfg.App.Environment))

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		zl.Fatal("Could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		zl.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			zl.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	zl.Info("Database connection established.", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			zl.Warn("Index creation failed", zap.Error(err))
			return
		}
		zl.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()
	fileStorage, err := storage.NewS3Storage(initCtx, cfg.S3, zl)
	if err != nil {
		zl.Fatal("Failed to initialize S3 storage", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	mealLogRepo := mongo.NewMongoMealLogRepository(appDB)
	goalRepo := mongo.NewMongoNutritionGoalRepository(appDB)
	productRepo := mongo.NewMongoProductRepository(appDB)
	exportRepo := mongo.NewMongoExportRepository(appDB)
	messageRepo := mongo.NewMongoMessageRepository(appDB)

	// --- Initialize Services ---
	evaluator := nutrition.NewEvaluator(nutrition.GoalRules{
		Tolerance:       cfg.Goals.Tolerance,
		StreakDays:      cfg.Goals.StreakDays,
		IncreasePercent: cfg.Goals.IncreasePercent,
	})
	services := api.Services{
		Auth:    service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.Auth.AdminEmails),
		MealLog: service.NewMealLogService(mealLogRepo, goalRepo, time.Now, zl),
		Goal:    service.NewNutritionGoalService(goalRepo, mealLogRepo, evaluator, time.Now, zl),
		Stats:   service.NewStatsService(mealLogRepo, time.Now),
		Barcode: service.NewBarcodeService(productRepo),
		Export:  service.NewExportService(mealLogRepo, exportRepo, fileStorage, zl),
		Message: service.NewMessageService(messageRepo, time.Now),
	}

	if cfg.Barcode.SeedDefaults {
		if err := services.Barcode.SeedDefaultProducts(initCtx); err != nil {
			zl.Warn("Seeding barcode catalog failed", zap.Error(err))
		}
	}

	// --- Initialize Gin Engine ---
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger(zl))
	api.SetupRoutes(router, cfg.JWT.Secret, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zl.Info("Server starting", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("ListenAndServe Error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("Shutting down server...")

	// In-flight requests get 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}

	zl.Info("Server exiting.")
}
