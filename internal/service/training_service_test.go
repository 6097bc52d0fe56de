package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository/memory"
)

func TestGeneratePlanPersistsInactive(t *testing.T) {
	plans := memory.NewTrainingPlanRepository()
	stub := &stubAI{planResult: &ai.GeneratedPlan{
		Name:     "Hypertrophy Block",
		Duration: "6 weeks",
		WorkoutDays: []domain.WorkoutDay{
			{DayNumber: 1, Name: "Push Day", Exercises: []domain.PlannedExercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10", RestSeconds: 90},
			}},
		},
	}}
	svc := NewTrainingService(plans, stub, catalog.New())
	userID := primitive.NewObjectID()

	plan, err := svc.GeneratePlan(context.Background(), userID, GeneratePlanInput{
		Goal:         domain.GoalMuscleGain,
		FitnessLevel: domain.LevelIntermediate,
		DaysPerWeek:  4,
		Equipment:    []string{"barbell", "dumbbells"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hypertrophy Block", plan.Name)
	assert.Equal(t, domain.GoalMuscleGain, plan.Goal)
	assert.False(t, plan.IsActive) // activation is an explicit step
	assert.NotEqual(t, primitive.NilObjectID, plan.ID)

	// The generator is constrained to catalog exercise names.
	require.Len(t, stub.planRequests, 1)
	assert.Len(t, stub.planRequests[0].ExerciseNames, len(catalog.New().Entries()))
	assert.Contains(t, stub.planRequests[0].ExerciseNames, "Bench Press")
}

func TestGeneratePlanValidation(t *testing.T) {
	svc := NewTrainingService(memory.NewTrainingPlanRepository(), &stubAI{}, catalog.New())
	userID := primitive.NewObjectID()

	cases := []GeneratePlanInput{
		{FitnessLevel: domain.LevelBeginner, DaysPerWeek: 3},                           // no goal
		{Goal: domain.GoalFatLoss, DaysPerWeek: 3},                                     // no level
		{Goal: domain.GoalFatLoss, FitnessLevel: domain.LevelBeginner, DaysPerWeek: 0}, // days too low
		{Goal: domain.GoalFatLoss, FitnessLevel: domain.LevelBeginner, DaysPerWeek: 8}, // days too high
	}
	for _, input := range cases {
		_, err := svc.GeneratePlan(context.Background(), userID, input)
		assert.ErrorIs(t, err, ErrPlanValidation)
	}
}

func TestSetActivePlanDeactivatesOthers(t *testing.T) {
	plans := memory.NewTrainingPlanRepository()
	svc := NewTrainingService(plans, &stubAI{}, catalog.New())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	first := &domain.TrainingPlan{UserID: userID, Name: "Plan A", IsActive: true}
	second := &domain.TrainingPlan{UserID: userID, Name: "Plan B"}
	_, err := plans.Create(ctx, first)
	require.NoError(t, err)
	_, err = plans.Create(ctx, second)
	require.NoError(t, err)

	activated, err := svc.SetActivePlan(ctx, userID, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	active, err := svc.GetActivePlan(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	// Exactly one plan is active.
	all, err := svc.GetPlans(ctx, userID)
	require.NoError(t, err)
	activeCount := 0
	for _, p := range all {
		if p.IsActive {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestGetActivePlanNone(t *testing.T) {
	svc := NewTrainingService(memory.NewTrainingPlanRepository(), &stubAI{}, catalog.New())

	_, err := svc.GetActivePlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNoActivePlan)
}

func TestDeletePlanScopedToOwner(t *testing.T) {
	plans := memory.NewTrainingPlanRepository()
	svc := NewTrainingService(plans, &stubAI{}, catalog.New())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	plan := &domain.TrainingPlan{UserID: userID, Name: "Plan A"}
	_, err := plans.Create(ctx, plan)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeletePlan(ctx, primitive.NewObjectID(), plan.ID), ErrPlanNotFound)
	require.NoError(t, svc.DeletePlan(ctx, userID, plan.ID))
	assert.ErrorIs(t, svc.DeletePlan(ctx, userID, plan.ID), ErrPlanNotFound)
}
