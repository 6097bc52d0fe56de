package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/calories"
	"gymtracker/app/internal/service"
	"gymtracker/app/internal/workout"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

// ExerciseOverrideRequest adjusts one exercise of the logged day,
// addressed by its position in the plan day's exercise list.
type ExerciseOverrideRequest struct {
	Index       int      `json:"index" binding:"min=0"`
	Sets        *int     `json:"sets,omitempty"`
	Reps        *int     `json:"reps,omitempty"`
	RestSeconds *int     `json:"restSeconds,omitempty"`
	WeightKg    *float64 `json:"weightKg,omitempty"`
}

type LogWorkoutRequest struct {
	PlanID       string                    `json:"planId" binding:"required"`
	DayNumber    int                       `json:"dayNumber" binding:"required,min=1"`
	Date         string                    `json:"date,omitempty"` // ISO date; empty means today
	BodyWeightKg float64                   `json:"bodyWeightKg" binding:"required,gt=0"`
	Overrides    []ExerciseOverrideRequest `json:"overrides,omitempty"`
}

func (r LogWorkoutRequest) toInput() (service.LogWorkoutInput, error) {
	planID, err := primitive.ObjectIDFromHex(r.PlanID)
	if err != nil {
		return service.LogWorkoutInput{}, errors.New("invalid planId format")
	}

	var overrides map[int]workout.Overrides
	if len(r.Overrides) > 0 {
		overrides = make(map[int]workout.Overrides, len(r.Overrides))
		for _, o := range r.Overrides {
			overrides[o.Index] = workout.Overrides{
				Sets:        o.Sets,
				Reps:        o.Reps,
				RestSeconds: o.RestSeconds,
				WeightKg:    o.WeightKg,
			}
		}
	}

	return service.LogWorkoutInput{
		PlanID:       planID,
		DayNumber:    r.DayNumber,
		Date:         r.Date,
		BodyWeightKg: r.BodyWeightKg,
		Overrides:    overrides,
	}, nil
}

// --- Handler Methods ---

// LogWorkout estimates and persists a completed workout day.
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	log, err := h.workoutService.LogWorkout(c.Request.Context(), userID, input)
	if err != nil {
		h.writeWorkoutError(c, err, "Failed to log workout")
		return
	}

	c.JSON(http.StatusCreated, log)
}

// PreviewDay estimates a plan day without persisting a log.
func (h *WorkoutHandler) PreviewDay(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	input, err := req.toInput()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	totals, err := h.workoutService.PreviewDay(c.Request.Context(), userID, input)
	if err != nil {
		h.writeWorkoutError(c, err, "Failed to estimate workout")
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (h *WorkoutHandler) writeWorkoutError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrWorkoutDayNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutDayIsRestDay),
		errors.Is(err, service.ErrWorkoutValidation),
		errors.Is(err, calories.ErrInvalidBodyWeight):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}

// GetLogs lists the user's workout logs, newest first.
func (h *WorkoutHandler) GetLogs(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	logs, err := h.workoutService.GetLogs(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLog returns a single workout log.
func (h *WorkoutHandler) GetLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	log, err := h.workoutService.GetLog(c.Request.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout log")
		}
		return
	}

	c.JSON(http.StatusOK, log)
}

// DeleteLog removes a workout log.
func (h *WorkoutHandler) DeleteLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.DeleteLog(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrWorkoutLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout log")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Dashboard returns the home-screen stat cards.
func (h *WorkoutHandler) Dashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	stats, err := h.workoutService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CalorieBalance returns the trailing calories-in-vs-out series. The
// optional "days" query parameter defaults to 7.
func (h *WorkoutHandler) CalorieBalance(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	days := 7
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 || days > 90 {
			abortWithError(c, http.StatusBadRequest, "days must be an integer between 1 and 90")
			return
		}
	}

	series, err := h.workoutService.CalorieBalance(c.Request.Context(), userID, days)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute calorie balance")
		return
	}

	c.JSON(http.StatusOK, series)
}
