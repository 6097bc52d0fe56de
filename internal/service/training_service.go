package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound   = errors.New("training plan not found")
	ErrPlanValidation = errors.New("training plan validation failed")
	ErrNoActivePlan   = errors.New("no active training plan")
)

// GeneratePlanInput carries the user's plan generation request.
type GeneratePlanInput struct {
	Goal         domain.TrainingGoal
	FitnessLevel domain.FitnessLevel
	DaysPerWeek  int
	Equipment    []string
	Notes        string
}

// --- Service Interface ---
type TrainingService interface {
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, input GeneratePlanInput) (*domain.TrainingPlan, error)
	GetPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error)
	GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.TrainingPlan, error)
	GetActivePlan(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingPlan, error)
	SetActivePlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.TrainingPlan, error)
	DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error
}

// --- Service Implementation ---

// trainingService implements the TrainingService interface.
type trainingService struct {
	planRepo  repository.TrainingPlanRepository
	generator ai.Service
	catalog   *catalog.Catalog
}

// NewTrainingService creates a new instance of trainingService.
func NewTrainingService(planRepo repository.TrainingPlanRepository, generator ai.Service, cat *catalog.Catalog) TrainingService {
	return &trainingService{
		planRepo:  planRepo,
		generator: generator,
		catalog:   cat,
	}
}

// GeneratePlan asks the AI for a plan constrained to the exercise
// catalog and persists it. New plans start inactive; the user activates
// one explicitly via SetActivePlan.
func (s *trainingService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, input GeneratePlanInput) (*domain.TrainingPlan, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrPlanValidation
	}
	if input.Goal == "" || input.FitnessLevel == "" || input.DaysPerWeek < 1 || input.DaysPerWeek > 7 {
		return nil, ErrPlanValidation
	}

	names := make([]string, 0, len(s.catalog.Entries()))
	for _, e := range s.catalog.Entries() {
		names = append(names, e.Name)
	}

	generated, err := s.generator.GeneratePlan(ctx, ai.PlanRequest{
		Goal:          input.Goal,
		FitnessLevel:  input.FitnessLevel,
		DaysPerWeek:   input.DaysPerWeek,
		Equipment:     input.Equipment,
		Notes:         input.Notes,
		ExerciseNames: names,
	})
	if err != nil {
		return nil, err
	}

	plan := &domain.TrainingPlan{
		UserID:       userID,
		Name:         generated.Name,
		Goal:         input.Goal,
		FitnessLevel: input.FitnessLevel,
		DaysPerWeek:  input.DaysPerWeek,
		Equipment:    input.Equipment,
		Duration:     generated.Duration,
		WorkoutDays:  generated.WorkoutDays,
		IsActive:     false,
	}

	planID, err := s.planRepo.Create(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = planID
	return plan, nil
}

// GetPlans retrieves all plans of the user, newest first.
func (s *trainingService) GetPlans(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	return s.planRepo.GetAll(ctx, userID)
}

// GetPlan retrieves a single plan.
func (s *trainingService) GetPlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// GetActivePlan retrieves the user's single active plan.
func (s *trainingService) GetActivePlan(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingPlan, error) {
	plans, err := s.planRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].IsActive {
			return &plans[i], nil
		}
	}
	return nil, ErrNoActivePlan
}

// SetActivePlan activates one plan and deactivates every other plan of
// the user, keeping the single-active-plan invariant.
func (s *trainingService) SetActivePlan(ctx context.Context, userID, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.DeactivateAll(ctx, userID); err != nil {
		return nil, err
	}
	plan.IsActive = true
	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan owned by the user.
func (s *trainingService) DeletePlan(ctx context.Context, userID, planID primitive.ObjectID) error {
	err := s.planRepo.Delete(ctx, userID, planID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}
