package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/service"
)

// TrainingHandler holds the training service dependency.
type TrainingHandler struct {
	trainingService service.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(trainingService service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

// --- Request Structs ---

type GeneratePlanRequest struct {
	Goal         domain.TrainingGoal `json:"goal" binding:"required,oneof=muscle_gain fat_loss strength endurance general_fitness"`
	FitnessLevel domain.FitnessLevel `json:"fitnessLevel" binding:"required,oneof=beginner intermediate advanced"`
	DaysPerWeek  int                 `json:"daysPerWeek" binding:"required,min=1,max=7"`
	Equipment    []string            `json:"equipment,omitempty"`
	Notes        string              `json:"notes,omitempty"`
}

// --- Handler Methods ---

// GeneratePlan asks the AI to generate a training plan for the user.
func (h *TrainingHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	plan, err := h.trainingService.GeneratePlan(c.Request.Context(), userID, service.GeneratePlanInput{
		Goal:         req.Goal,
		FitnessLevel: req.FitnessLevel,
		DaysPerWeek:  req.DaysPerWeek,
		Equipment:    req.Equipment,
		Notes:        req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlanValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate training plan")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetPlans lists the user's training plans, newest first.
func (h *TrainingHandler) GetPlans(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plans, err := h.trainingService.GetPlans(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch training plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetActivePlan returns the user's single active plan.
func (h *TrainingHandler) GetActivePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	plan, err := h.trainingService.GetActivePlan(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActivePlan) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch active plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetPlan returns a single training plan.
func (h *TrainingHandler) GetPlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	planID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := h.trainingService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch training plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// SetActivePlan activates a plan, deactivating all others.
func (h *TrainingHandler) SetActivePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	planID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	plan, err := h.trainingService.SetActivePlan(c.Request.Context(), userID, planID)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to activate training plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a training plan.
func (h *TrainingHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	planID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.trainingService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete training plan")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
