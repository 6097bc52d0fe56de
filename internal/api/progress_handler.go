package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/service"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- Request Structs ---

type LogProgressRequest struct {
	Photo         string               `json:"photo" binding:"required"` // base64 data URL
	PreviousPhoto string               `json:"previousPhoto,omitempty"`  // enables before/after comparison
	Date          string               `json:"date,omitempty"`
	WeightKg      *float64             `json:"weightKg,omitempty"`
	BodyFatPct    *float64             `json:"bodyFatPct,omitempty"`
	Measurements  *domain.Measurements `json:"measurements,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// --- Handler Methods ---

// LogProgress accepts a physique photo, runs AI analysis and stores the entry.
func (h *ProgressHandler) LogProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.progressService.LogProgress(c.Request.Context(), userID, service.LogProgressInput{
		PhotoDataURL:         req.Photo,
		PreviousPhotoDataURL: req.PreviousPhoto,
		Date:                 req.Date,
		WeightKg:             req.WeightKg,
		BodyFatPct:           req.BodyFatPct,
		Measurements:         req.Measurements,
		Notes:                req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidPhoto) || errors.Is(err, service.ErrProgressValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log progress")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries lists the user's progress entries, newest first.
func (h *ProgressHandler) GetEntries(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entries, err := h.progressService.GetEntries(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetLatest returns the most recent progress entry.
func (h *ProgressHandler) GetLatest(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entry, err := h.progressService.GetLatest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProgressEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// GetEntry returns a single progress entry.
func (h *ProgressHandler) GetEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	entry, err := h.progressService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrProgressEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch progress entry")
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes a progress entry.
func (h *ProgressHandler) DeleteEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.progressService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, service.ErrProgressEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete progress entry")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPhotoURL returns a presigned download URL for the entry's photo.
func (h *ProgressHandler) GetPhotoURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	entryID, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	url, err := h.progressService.GetPhotoURL(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrProgressEntryNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate photo URL")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
