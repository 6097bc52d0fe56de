package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/analytics"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository/memory"
	"gymtracker/app/internal/workout"
)

func benchOnlyCatalog(met float64) *catalog.Catalog {
	return catalog.NewWithEntries([]catalog.Entry{
		{
			ID: "bench_press", Name: "Bench Press", Category: catalog.CategoryChest,
			MET: met, DefaultRepsPerSet: 8, SecondsPerRep: 3,
		},
	})
}

func seedPlan(t *testing.T, planRepo *memory.TrainingPlanRepository, userID primitive.ObjectID) *domain.TrainingPlan {
	t.Helper()
	plan := &domain.TrainingPlan{
		UserID:       userID,
		Name:         "Strength Block",
		Goal:         domain.GoalStrength,
		FitnessLevel: domain.LevelIntermediate,
		DaysPerWeek:  3,
		WorkoutDays: []domain.WorkoutDay{
			{
				DayNumber: 1,
				Name:      "Push Day",
				Exercises: []domain.PlannedExercise{
					{Name: "Bench Press", Sets: 4, Reps: "8-12", RestSeconds: 90, MuscleGroup: "Chest"},
				},
			},
			{DayNumber: 2, Name: "Rest", RestDay: true},
		},
	}
	_, err := planRepo.Create(context.Background(), plan)
	require.NoError(t, err)
	return plan
}

type workoutFixture struct {
	svc      WorkoutService
	plan     *domain.TrainingPlan
	userID   primitive.ObjectID
	logs     *memory.WorkoutLogRepository
	plans    *memory.TrainingPlanRepository
	food     *memory.FoodEntryRepository
	fixedNow time.Time
}

func newWorkoutFixture(t *testing.T, cat *catalog.Catalog) *workoutFixture {
	t.Helper()
	f := &workoutFixture{
		userID:   primitive.NewObjectID(),
		logs:     memory.NewWorkoutLogRepository(),
		plans:    memory.NewTrainingPlanRepository(),
		food:     memory.NewFoodEntryRepository(),
		fixedNow: time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
	}
	f.plan = seedPlan(t, f.plans, f.userID)

	svc := NewWorkoutService(f.logs, f.plans, f.food, workout.NewAggregator(cat)).(*workoutService)
	svc.now = func() time.Time { return f.fixedNow }
	f.svc = svc
	return f
}

func TestLogWorkoutSnapshotsTotals(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	log, err := f.svc.LogWorkout(ctx, f.userID, LogWorkoutInput{
		PlanID:       f.plan.ID,
		DayNumber:    1,
		BodyWeightKg: 80,
	})
	require.NoError(t, err)

	assert.Equal(t, "Strength Block", log.TrainingPlanName)
	assert.Equal(t, "Push Day", log.DayName)
	assert.Equal(t, "2025-06-14", log.Date) // empty date defaults to today
	require.Len(t, log.Exercises, 1)
	assert.Equal(t, "Bench Press", log.Exercises[0].Name)
	assert.Equal(t, 8, log.Exercises[0].Reps) // "8-12" parses to 8
	assert.Positive(t, log.TotalCalories)
	assert.Positive(t, log.DurationMinutes)

	stored, err := f.svc.GetLog(ctx, f.userID, log.ID)
	require.NoError(t, err)
	assert.Equal(t, log.TotalCalories, stored.TotalCalories)
}

func TestLogWorkoutSnapshotSurvivesCatalogChange(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	input := LogWorkoutInput{PlanID: f.plan.ID, DayNumber: 1, BodyWeightKg: 80}
	original, err := f.svc.LogWorkout(ctx, f.userID, input)
	require.NoError(t, err)

	// Same repos, hotter catalog: history must not move.
	svc2 := NewWorkoutService(f.logs, f.plans, f.food, workout.NewAggregator(benchOnlyCatalog(12.0))).(*workoutService)
	svc2.now = func() time.Time { return f.fixedNow }

	stored, err := svc2.GetLog(ctx, f.userID, original.ID)
	require.NoError(t, err)
	assert.Equal(t, original.TotalCalories, stored.TotalCalories)

	fresh, err := svc2.LogWorkout(ctx, f.userID, input)
	require.NoError(t, err)
	assert.Greater(t, fresh.TotalCalories, original.TotalCalories)
}

func TestLogWorkoutRejectsRestDay(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))

	_, err := f.svc.LogWorkout(context.Background(), f.userID, LogWorkoutInput{
		PlanID:       f.plan.ID,
		DayNumber:    2,
		BodyWeightKg: 80,
	})
	assert.ErrorIs(t, err, ErrWorkoutDayIsRestDay)
}

func TestLogWorkoutUnknownDayAndPlan(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	_, err := f.svc.LogWorkout(ctx, f.userID, LogWorkoutInput{
		PlanID: f.plan.ID, DayNumber: 9, BodyWeightKg: 80,
	})
	assert.ErrorIs(t, err, ErrWorkoutDayNotFound)

	_, err = f.svc.LogWorkout(ctx, f.userID, LogWorkoutInput{
		PlanID: primitive.NewObjectID(), DayNumber: 1, BodyWeightKg: 80,
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Another user cannot log against this plan.
	_, err = f.svc.LogWorkout(ctx, primitive.NewObjectID(), LogWorkoutInput{
		PlanID: f.plan.ID, DayNumber: 1, BodyWeightKg: 80,
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPreviewDayDoesNotPersist(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	totals, err := f.svc.PreviewDay(ctx, f.userID, LogWorkoutInput{
		PlanID: f.plan.ID, DayNumber: 1, BodyWeightKg: 80,
	})
	require.NoError(t, err)
	assert.Positive(t, totals.TotalCalories)

	logs, err := f.svc.GetLogs(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestDashboardAndCalorieBalance(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	_, err := f.food.Create(ctx, &domain.FoodEntry{
		UserID: f.userID, Date: "2025-06-14", MealType: domain.MealLunch,
		Analysis: &domain.FoodAnalysis{TotalCalories: 700},
	})
	require.NoError(t, err)

	_, err = f.svc.LogWorkout(ctx, f.userID, LogWorkoutInput{
		PlanID: f.plan.ID, DayNumber: 1, BodyWeightKg: 80,
	})
	require.NoError(t, err)

	stats, err := f.svc.Dashboard(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DayStreak)
	assert.Equal(t, 1, stats.MealsLogged)
	assert.Equal(t, 1, stats.WorkoutsThisWeek)
	assert.Positive(t, stats.CaloriesBurnedToday)

	series, err := f.svc.CalorieBalance(ctx, f.userID, 7)
	require.NoError(t, err)
	require.Len(t, series, 7)
	last := series[6]
	assert.Equal(t, analytics.DayBalance{Date: "2025-06-14", Eaten: 700, Burned: stats.CaloriesBurnedToday}, last)
}

func TestDeleteLog(t *testing.T) {
	f := newWorkoutFixture(t, benchOnlyCatalog(6.0))
	ctx := context.Background()

	log, err := f.svc.LogWorkout(ctx, f.userID, LogWorkoutInput{
		PlanID: f.plan.ID, DayNumber: 1, BodyWeightKg: 80,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteLog(ctx, f.userID, log.ID))
	assert.ErrorIs(t, f.svc.DeleteLog(ctx, f.userID, log.ID), ErrWorkoutLogNotFound)
}
