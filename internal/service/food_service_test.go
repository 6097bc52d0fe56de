package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository/memory"
	"gymtracker/app/internal/workout"
)

func floatPtr(v float64) *float64 { return &v }

func TestLogMealStoresPhotoAndAnalysis(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	store := newFakeStorage()
	stub := &stubAI{foodResult: &domain.FoodAnalysis{
		TotalCalories: 650,
		TotalMacros:   domain.MacroNutrients{Protein: 40, Carbs: 70, Fat: 20, Fiber: 8},
		MealRating:    7,
	}}
	svc := NewFoodService(repo, stub, store)
	userID := primitive.NewObjectID()

	entry, err := svc.LogMeal(context.Background(), userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL,
		MealType:     domain.MealLunch,
		Date:         "2025-06-14",
		Description:  "chicken and rice",
	})
	require.NoError(t, err)

	assert.NotEqual(t, primitive.NilObjectID, entry.ID)
	assert.True(t, strings.HasPrefix(entry.Photo, "food/"))
	assert.Equal(t, 1, store.len())
	require.NotNil(t, entry.Analysis)
	assert.Equal(t, 650.0, entry.Analysis.TotalCalories)
	assert.Equal(t, 650.0, entry.EffectiveCalories())
}

func TestLogMealSurvivesAnalysisFailure(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	stub := &stubAI{err: errors.New("model unavailable")}
	svc := NewFoodService(repo, stub, newFakeStorage())
	userID := primitive.NewObjectID()

	entry, err := svc.LogMeal(context.Background(), userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL,
		MealType:     domain.MealDinner,
	})
	require.NoError(t, err) // the meal is kept even without analysis

	assert.Nil(t, entry.Analysis)
	assert.Equal(t, 0.0, entry.EffectiveCalories())
}

func TestLogMealRejectsBadPhoto(t *testing.T) {
	svc := NewFoodService(memory.NewFoodEntryRepository(), &stubAI{}, newFakeStorage())
	userID := primitive.NewObjectID()

	for _, photo := range []string{
		"",
		"not a data url",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/jpeg;base64,!!!not-base64!!!",
	} {
		_, err := svc.LogMeal(context.Background(), userID, LogMealInput{
			PhotoDataURL: photo,
			MealType:     domain.MealSnack,
		})
		assert.ErrorIs(t, err, ErrInvalidPhoto, "photo %q", photo)
	}
}

func TestOverrideNutritionPerField(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	stub := &stubAI{foodResult: &domain.FoodAnalysis{TotalCalories: 400}}
	svc := NewFoodService(repo, stub, newFakeStorage())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	entry, err := svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL,
		MealType:     domain.MealBreakfast,
	})
	require.NoError(t, err)

	updated, err := svc.OverrideNutrition(ctx, userID, entry.ID, domain.ManualOverride{
		Calories: floatPtr(500),
	})
	require.NoError(t, err)

	// Override beats analysis for calories; analysis stays attached.
	assert.Equal(t, 500.0, updated.EffectiveCalories())
	require.NotNil(t, updated.Analysis)
	assert.Equal(t, 400.0, updated.Analysis.TotalCalories)

	_, err = svc.OverrideNutrition(ctx, primitive.NewObjectID(), entry.ID, domain.ManualOverride{})
	assert.ErrorIs(t, err, ErrFoodEntryNotFound)
}

func TestDeleteEntryRemovesPhoto(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	store := newFakeStorage()
	svc := NewFoodService(repo, &stubAI{}, store)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	entry, err := svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL,
		MealType:     domain.MealLunch,
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.len())

	require.NoError(t, svc.DeleteEntry(ctx, userID, entry.ID))
	assert.Equal(t, 0, store.len())
	assert.ErrorIs(t, svc.DeleteEntry(ctx, userID, entry.ID), ErrFoodEntryNotFound)
}

func TestGetPhotoURL(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	svc := NewFoodService(repo, &stubAI{}, newFakeStorage())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	entry, err := svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL,
		MealType:     domain.MealLunch,
	})
	require.NoError(t, err)

	url, err := svc.GetPhotoURL(ctx, userID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/get/"+entry.Photo, url)
}

func TestTodaySummaryAppliesOverrides(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	stub := &stubAI{foodResult: &domain.FoodAnalysis{
		TotalCalories: 400,
		TotalMacros:   domain.MacroNutrients{Protein: 30, Carbs: 40, Fat: 10, Fiber: 5},
	}}
	svc := NewFoodService(repo, stub, newFakeStorage())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	// Two meals today, one with a calorie override; yesterday's meal must
	// not count.
	today := time.Now().Format(workout.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(workout.DateLayout)

	first, err := svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL, MealType: domain.MealBreakfast, Date: today,
	})
	require.NoError(t, err)
	_, err = svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL, MealType: domain.MealLunch, Date: today,
	})
	require.NoError(t, err)
	_, err = svc.LogMeal(ctx, userID, LogMealInput{
		PhotoDataURL: testPhotoDataURL, MealType: domain.MealDinner, Date: yesterday,
	})
	require.NoError(t, err)

	_, err = svc.OverrideNutrition(ctx, userID, first.ID, domain.ManualOverride{
		Calories: floatPtr(550),
	})
	require.NoError(t, err)

	totals, err := svc.TodaySummary(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 950.0, totals.Calories) // 550 override + 400 analysis
	assert.Equal(t, 60.0, totals.Protein)
	assert.Equal(t, 10.0, totals.Fiber)
}

func TestGetEntriesByDateScopedToUser(t *testing.T) {
	repo := memory.NewFoodEntryRepository()
	svc := NewFoodService(repo, &stubAI{}, newFakeStorage())
	ctx := context.Background()
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	for _, uid := range []primitive.ObjectID{userA, userB} {
		_, err := svc.LogMeal(ctx, uid, LogMealInput{
			PhotoDataURL: testPhotoDataURL,
			MealType:     domain.MealLunch,
			Date:         "2025-06-14",
		})
		require.NoError(t, err)
	}

	entries, err := svc.GetEntriesByDate(ctx, userA, "2025-06-14")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, userA, entries[0].UserID)
}
