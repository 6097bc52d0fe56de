package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFoodAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"foodItems": [
			{"name": "Grilled Chicken", "calories": 300, "portion": "200g",
			 "macros": {"protein": 45, "carbs": 0, "fat": 12, "fiber": 0}}
		],
		"totalCalories": 300,
		"totalMacros": {"protein": 45, "carbs": 0, "fat": 12, "fiber": 0},
		"mealRating": 8,
		"healthNotes": "Lean protein, low carb."
	}` + "\n```"

	got, err := ParseFoodAnalysis(raw)
	require.NoError(t, err)
	require.Len(t, got.FoodItems, 1)
	assert.Equal(t, "Grilled Chicken", got.FoodItems[0].Name)
	assert.Equal(t, 300.0, got.TotalCalories)
	assert.Equal(t, 45.0, got.TotalMacros.Protein)
	assert.Equal(t, 8, got.MealRating)
}

func TestParseFoodAnalysisDefaults(t *testing.T) {
	got, err := ParseFoodAnalysis(`{"totalCalories": 120}`)
	require.NoError(t, err)
	assert.NotNil(t, got.FoodItems)
	assert.Empty(t, got.FoodItems)
	assert.Equal(t, 5, got.MealRating) // missing rating defaults to mid-scale
	assert.Equal(t, "", got.HealthNotes)
}

func TestParseFoodAnalysisMalformed(t *testing.T) {
	_, err := ParseFoodAnalysis("sorry, I cannot analyze this image")
	assert.Error(t, err)
}

func TestParseProgressAnalysis(t *testing.T) {
	raw := `{
		"observations": "Solid base",
		"estimatedBodyFat": "15-18%",
		"muscleGroupNotes": [{"group": "Chest", "note": "Well developed"}],
		"comparisonNotes": "",
		"recommendations": ["More leg volume"]
	}`

	got, err := ParseProgressAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "15-18%", got.EstimatedBodyFat)
	require.Len(t, got.MuscleGroupNotes, 1)
	assert.Equal(t, "Chest", got.MuscleGroupNotes[0].Group)
	assert.Equal(t, []string{"More leg volume"}, got.Recommendations)
}

func TestParseProgressAnalysisDefaults(t *testing.T) {
	got, err := ParseProgressAnalysis(`{}`)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.EstimatedBodyFat)
	assert.NotNil(t, got.MuscleGroupNotes)
	assert.NotNil(t, got.Recommendations)
}

func TestParseTrainingPlan(t *testing.T) {
	raw := "```json\n" + `{
		"name": "Hypertrophy Block",
		"duration": "6 weeks",
		"workoutDays": [
			{
				"dayNumber": 1,
				"name": "Push Day",
				"focusMuscleGroups": ["Chest", "Triceps"],
				"exercises": [
					{"name": "Bench Press", "sets": 4, "reps": "8-10", "restSeconds": 90, "muscleGroup": "Chest"}
				],
				"estimatedDuration": 55,
				"restDay": false
			}
		]
	}` + "```"

	got, err := ParseTrainingPlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Hypertrophy Block", got.Name)
	assert.Equal(t, "6 weeks", got.Duration)
	require.Len(t, got.WorkoutDays, 1)
	assert.Equal(t, "Push Day", got.WorkoutDays[0].Name)
	require.Len(t, got.WorkoutDays[0].Exercises, 1)
	assert.Equal(t, "8-10", got.WorkoutDays[0].Exercises[0].Reps)
}

func TestParseTrainingPlanDefaults(t *testing.T) {
	raw := `{
		"workoutDays": [
			{"exercises": [{}]},
			{"exercises": []}
		]
	}`

	got, err := ParseTrainingPlan(raw)
	require.NoError(t, err)
	assert.Equal(t, "Custom Plan", got.Name)
	assert.Equal(t, "4 weeks", got.Duration)
	require.Len(t, got.WorkoutDays, 2)

	day := got.WorkoutDays[0]
	assert.Equal(t, 1, day.DayNumber)
	assert.Equal(t, "Day 1", day.Name)
	assert.Equal(t, 60, day.EstimatedDuration)
	require.Len(t, day.Exercises, 1)
	assert.Equal(t, "Exercise", day.Exercises[0].Name)
	assert.Equal(t, 3, day.Exercises[0].Sets)
	assert.Equal(t, "10", day.Exercises[0].Reps)
	assert.Equal(t, 60, day.Exercises[0].RestSeconds)

	assert.Equal(t, 2, got.WorkoutDays[1].DayNumber)
}

func TestCleanJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSON(`{"a":1}`))
}
