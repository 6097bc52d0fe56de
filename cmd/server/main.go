package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/api"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/config"
	"gymtracker/app/internal/repository/mongo"
	"gymtracker/app/internal/service"
	"gymtracker/app/internal/storage"
	"gymtracker/app/internal/workout"
)

func main() {
	log.Println("Starting GymTracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: user index creation failed: %v", err)
		}
		if err := mongo.EnsureFoodEntryIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: food entry index creation failed: %v", err)
		}
		if err := mongo.EnsureProgressIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: progress index creation failed: %v", err)
		}
		if err := mongo.EnsureTrainingPlanIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: training plan index creation failed: %v", err)
		}
		if err := mongo.EnsureWorkoutLogIndexes(ctx, appDB); err != nil {
			log.Printf("WARN: workout log index creation failed: %v", err)
		}
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize AI Client ---
	if cfg.AI.APIKey == "" {
		log.Fatalf("FATAL: AI API key is not configured")
	}
	aiClient := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)

	// --- Exercise Catalog & Calorie Aggregation ---
	exerciseCatalog := catalog.New()
	aggregator := workout.NewAggregator(exerciseCatalog)

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	foodRepo := mongo.NewMongoFoodEntryRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	trainingPlanRepo := mongo.NewMongoTrainingPlanRepository(appDB)
	workoutLogRepo := mongo.NewMongoWorkoutLogRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	foodService := service.NewFoodService(foodRepo, aiClient, fileStorage)
	progressService := service.NewProgressService(progressRepo, aiClient, fileStorage)
	trainingService := service.NewTrainingService(trainingPlanRepo, aiClient, exerciseCatalog)
	workoutService := service.NewWorkoutService(workoutLogRepo, trainingPlanRepo, foodRepo, aggregator)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret,
		authService, foodService, progressService, trainingService, workoutService,
		exerciseCatalog)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // AI analysis calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
