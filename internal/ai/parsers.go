package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"gymtracker/app/internal/domain"
)

// cleanJSON strips markdown code fences the model sometimes adds around
// its output.
func cleanJSON(raw string) string {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseFoodAnalysis decodes a food analysis response, defaulting any
// fields the model omitted.
func ParseFoodAnalysis(raw string) (*domain.FoodAnalysis, error) {
	var analysis domain.FoodAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("ai: decode food analysis: %w", err)
	}
	if analysis.FoodItems == nil {
		analysis.FoodItems = []domain.FoodItem{}
	}
	if analysis.MealRating == 0 {
		analysis.MealRating = 5
	}
	return &analysis, nil
}

// ParseProgressAnalysis decodes a progress analysis response.
func ParseProgressAnalysis(raw string) (*domain.ProgressAnalysis, error) {
	var analysis domain.ProgressAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("ai: decode progress analysis: %w", err)
	}
	if analysis.EstimatedBodyFat == "" {
		analysis.EstimatedBodyFat = "Unknown"
	}
	if analysis.MuscleGroupNotes == nil {
		analysis.MuscleGroupNotes = []domain.MuscleGroupNote{}
	}
	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}
	return &analysis, nil
}

// ParseTrainingPlan decodes a generated plan, filling defaults for
// anything the model left out so a sparse response still yields a
// usable plan.
func ParseTrainingPlan(raw string) (*GeneratedPlan, error) {
	var plan GeneratedPlan
	payload := struct {
		Name        string              `json:"name"`
		Duration    string              `json:"duration"`
		WorkoutDays []domain.WorkoutDay `json:"workoutDays"`
	}{}
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("ai: decode training plan: %w", err)
	}

	plan.Name = payload.Name
	if plan.Name == "" {
		plan.Name = "Custom Plan"
	}
	plan.Duration = payload.Duration
	if plan.Duration == "" {
		plan.Duration = "4 weeks"
	}

	plan.WorkoutDays = make([]domain.WorkoutDay, len(payload.WorkoutDays))
	for i, day := range payload.WorkoutDays {
		if day.DayNumber == 0 {
			day.DayNumber = i + 1
		}
		if day.Name == "" {
			day.Name = fmt.Sprintf("Day %d", i+1)
		}
		if day.FocusMuscleGroups == nil {
			day.FocusMuscleGroups = []string{}
		}
		if day.EstimatedDuration == 0 {
			day.EstimatedDuration = 60
		}
		for j, ex := range day.Exercises {
			if ex.Name == "" {
				ex.Name = "Exercise"
			}
			if ex.Sets == 0 {
				ex.Sets = 3
			}
			if ex.Reps == "" {
				ex.Reps = "10"
			}
			if ex.RestSeconds == 0 {
				ex.RestSeconds = 60
			}
			day.Exercises[j] = ex
		}
		plan.WorkoutDays[i] = day
	}
	return &plan, nil
}
