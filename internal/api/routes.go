package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	foodService service.FoodService,
	progressService service.ProgressService,
	trainingService service.TrainingService,
	workoutService service.WorkoutService,
	exerciseCatalog *catalog.Catalog,
) {
	authHandler := NewAuthHandler(authService)
	foodHandler := NewFoodHandler(foodService)
	progressHandler := NewProgressHandler(progressService)
	trainingHandler := NewTrainingHandler(trainingService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseCatalog)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Exercise Catalog (read-only reference data) ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/categories", exerciseHandler.GetCategories)
			exerciseGroup.GET("/resolve", exerciseHandler.ResolveExercise)
			exerciseGroup.POST("/preview", exerciseHandler.PreviewBurn)
		}

		// --- Food Tracking ---
		foodGroup := protected.Group("/food")
		{
			foodGroup.POST("", foodHandler.LogMeal)
			foodGroup.GET("", foodHandler.GetEntries) // ?date=YYYY-MM-DD filters
			foodGroup.GET("/summary", foodHandler.GetTodaySummary)
			foodGroup.GET("/:id", foodHandler.GetEntry)
			foodGroup.PUT("/:id/nutrition", foodHandler.OverrideNutrition)
			foodGroup.GET("/:id/photo", foodHandler.GetPhotoURL)
			foodGroup.DELETE("/:id", foodHandler.DeleteEntry)
		}

		// --- Progress Photos ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("", progressHandler.LogProgress)
			progressGroup.GET("", progressHandler.GetEntries)
			progressGroup.GET("/latest", progressHandler.GetLatest)
			progressGroup.GET("/:id", progressHandler.GetEntry)
			progressGroup.GET("/:id/photo", progressHandler.GetPhotoURL)
			progressGroup.DELETE("/:id", progressHandler.DeleteEntry)
		}

		// --- Training Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", trainingHandler.GeneratePlan)
			planGroup.GET("", trainingHandler.GetPlans)
			planGroup.GET("/active", trainingHandler.GetActivePlan)
			planGroup.GET("/:id", trainingHandler.GetPlan)
			planGroup.PUT("/:id/activate", trainingHandler.SetActivePlan)
			planGroup.DELETE("/:id", trainingHandler.DeletePlan)
		}

		// --- Workout Logs & Analytics ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.POST("/preview", workoutHandler.PreviewDay)
			workoutGroup.GET("", workoutHandler.GetLogs)
			workoutGroup.GET("/:id", workoutHandler.GetLog)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteLog)
		}

		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/dashboard", workoutHandler.Dashboard)
			statsGroup.GET("/calorie-balance", workoutHandler.CalorieBalance) // ?days=N
		}
	}
}
