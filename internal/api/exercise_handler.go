package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtracker/app/internal/calories"
	"gymtracker/app/internal/catalog"
)

// ExerciseHandler serves the read-only exercise catalog.
type ExerciseHandler struct {
	catalog *catalog.Catalog
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(cat *catalog.Catalog) *ExerciseHandler {
	return &ExerciseHandler{catalog: cat}
}

// GetExercises lists catalog entries, optionally filtered by category.
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		cat := catalog.Category(raw)
		if _, ok := catalog.CategoryLabels[cat]; !ok {
			abortWithError(c, http.StatusBadRequest, "unknown category")
			return
		}
		c.JSON(http.StatusOK, h.catalog.ByCategory(cat))
		return
	}
	c.JSON(http.StatusOK, h.catalog.Entries())
}

// GetCategories lists the catalog categories with display labels.
func (h *ExerciseHandler) GetCategories(c *gin.Context) {
	type categoryResponse struct {
		ID    catalog.Category `json:"id"`
		Label string           `json:"label"`
	}
	// Fixed order, matching the catalog's category declarations.
	order := []catalog.Category{
		catalog.CategoryChest, catalog.CategoryBack, catalog.CategoryShoulders,
		catalog.CategoryArms, catalog.CategoryLegs, catalog.CategoryCore,
		catalog.CategoryFullBody, catalog.CategoryCardio,
	}
	out := make([]categoryResponse, 0, len(order))
	for _, id := range order {
		out = append(out, categoryResponse{ID: id, Label: catalog.CategoryLabels[id]})
	}
	c.JSON(http.StatusOK, out)
}

// ResolveExercise matches a free-form exercise name against the catalog.
// The response always carries an entry; "matched" reports whether it is a
// real catalog hit or the generic fallback.
func (h *ExerciseHandler) ResolveExercise(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		abortWithError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}

	entry, matched := h.catalog.Lookup(name)
	if !matched {
		entry = h.catalog.Default()
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry, "matched": matched})
}

type PreviewBurnRequest struct {
	Name         string   `json:"name" binding:"required"`
	BodyWeightKg float64  `json:"bodyWeightKg" binding:"required,gt=0"`
	Sets         *int     `json:"sets,omitempty"`
	Reps         *int     `json:"reps,omitempty"`
	RestSeconds  *int     `json:"restSeconds,omitempty"`
	WeightKg     *float64 `json:"weightKg,omitempty"`
}

// PreviewBurn estimates the calorie burn for a single exercise performance
// without persisting anything. Omitted fields fall back to the catalog
// entry's defaults (3 sets, 60s rest, entry rep count).
func (h *ExerciseHandler) PreviewBurn(c *gin.Context) {
	var req PreviewBurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, matched := h.catalog.Lookup(req.Name)
	if !matched {
		entry = h.catalog.Default()
	}

	perf := calories.Performance{
		MET:           entry.MET,
		BodyWeightKg:  req.BodyWeightKg,
		Sets:          3,
		RepsPerSet:    entry.DefaultRepsPerSet,
		SecondsPerRep: entry.SecondsPerRep,
		RestSeconds:   60,
		LiftWeightKg:  req.WeightKg,
	}
	if req.Sets != nil {
		perf.Sets = *req.Sets
	}
	if req.Reps != nil {
		perf.RepsPerSet = *req.Reps
	}
	if req.RestSeconds != nil {
		perf.RestSeconds = float64(*req.RestSeconds)
	}

	result, err := calories.Estimate(perf)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry, "matched": matched, "burn": result})
}
