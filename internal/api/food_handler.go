package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/service"
)

// FoodHandler holds the food service dependency.
type FoodHandler struct {
	foodService service.FoodService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(foodService service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// --- Request Structs ---

type LogMealRequest struct {
	Photo       string          `json:"photo" binding:"required"` // base64 data URL
	MealType    domain.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Date        string          `json:"date,omitempty"` // ISO date; empty means today
	Description string          `json:"description,omitempty"`
}

type OverrideNutritionRequest struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// --- Handler Methods ---

// LogMeal accepts a meal photo, runs AI analysis and stores the entry.
func (h *FoodHandler) LogMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.foodService.LogMeal(c.Request.Context(), userID, service.LogMealInput{
		PhotoDataURL: req.Photo,
		MealType:     req.MealType,
		Date:         req.Date,
		Description:  req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhoto) || errors.Is(err, service.ErrFoodValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log meal")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries lists the user's food entries, optionally filtered by date.
func (h *FoodHandler) GetEntries(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var (
		entries []domain.FoodEntry
		svcErr  error
	)
	if date := c.Query("date"); date != "" {
		entries, svcErr = h.foodService.GetEntriesByDate(c.Request.Context(), userID, date)
	} else {
		entries, svcErr = h.foodService.GetEntries(c.Request.Context(), userID)
	}
	if svcErr != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch food entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetEntry returns a single food entry.
func (h *FoodHandler) GetEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.foodService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrFoodEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch food entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// OverrideNutrition attaches manual nutrition corrections to an entry.
func (h *FoodHandler) OverrideNutrition(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req OverrideNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.foodService.OverrideNutrition(c.Request.Context(), userID, entryID, domain.ManualOverride{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
	})
	if err != nil {
		if errors.Is(err, service.ErrFoodEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update food entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes a food entry.
func (h *FoodHandler) DeleteEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.foodService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, service.ErrFoodEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete food entry")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetTodaySummary returns today's summed nutrition totals.
func (h *FoodHandler) GetTodaySummary(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	totals, err := h.foodService.TodaySummary(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute nutrition summary")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetPhotoURL returns a presigned download URL for the entry's photo.
func (h *FoodHandler) GetPhotoURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.foodService.GetPhotoURL(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrFoodEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate photo URL")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
