package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/analytics"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
	"gymtracker/app/internal/workout"
)

// --- Error Definitions ---
var (
	ErrWorkoutLogNotFound  = errors.New("workout log not found")
	ErrWorkoutValidation   = errors.New("workout log validation failed")
	ErrWorkoutDayNotFound  = errors.New("workout day not found in plan")
	ErrWorkoutDayIsRestDay = errors.New("cannot log a workout on a rest day")
)

// LogWorkoutInput carries the client's inputs for logging a completed
// workout day.
type LogWorkoutInput struct {
	PlanID       primitive.ObjectID
	DayNumber    int
	Date         string // ISO date; empty means today
	BodyWeightKg float64
	Overrides    map[int]workout.Overrides // keyed by exercise position in the day
}

// --- Service Interface ---
type WorkoutService interface {
	LogWorkout(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (*domain.WorkoutLog, error)
	PreviewDay(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (workout.DayTotals, error)
	GetLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)
	GetLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error)
	DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error
	Dashboard(ctx context.Context, userID primitive.ObjectID) (analytics.DashboardStats, error)
	CalorieBalance(ctx context.Context, userID primitive.ObjectID, days int) ([]analytics.DayBalance, error)
}

// --- Service Implementation ---

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutLogRepository
	planRepo    repository.TrainingPlanRepository
	foodRepo    repository.FoodEntryRepository
	aggregator  *workout.Aggregator
	now         func() time.Time
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutLogRepository,
	planRepo repository.TrainingPlanRepository,
	foodRepo repository.FoodEntryRepository,
	aggregator *workout.Aggregator,
) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		planRepo:    planRepo,
		foodRepo:    foodRepo,
		aggregator:  aggregator,
		now:         time.Now,
	}
}

// LogWorkout estimates calories for the chosen plan day and persists the
// result as an immutable log. The totals are denormalized snapshots:
// later changes to the catalog or the plan never rewrite history.
func (s *workoutService) LogWorkout(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (*domain.WorkoutLog, error) {
	plan, day, err := s.resolveDay(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	totals, err := s.aggregator.DayTotals(*day, input.BodyWeightKg, input.Overrides)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = s.now().Format(workout.DateLayout)
	}

	log := &domain.WorkoutLog{
		UserID:           userID,
		TrainingPlanID:   plan.ID,
		TrainingPlanName: plan.Name,
		DayNumber:        day.DayNumber,
		DayName:          day.Name,
		Date:             date,
		BodyWeightKg:     input.BodyWeightKg,
		Exercises:        totals.LoggedExercises(),
		TotalCalories:    totals.TotalCalories,
		TotalVolume:      totals.TotalVolume,
		DurationMinutes:  totals.DurationMinutes,
	}

	logID, err := s.workoutRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	return log, nil
}

// PreviewDay estimates a plan day without persisting anything, so the
// client can show expected burn before the user commits the log.
func (s *workoutService) PreviewDay(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (workout.DayTotals, error) {
	_, day, err := s.resolveDay(ctx, userID, input)
	if err != nil {
		return workout.DayTotals{}, err
	}
	return s.aggregator.DayTotals(*day, input.BodyWeightKg, input.Overrides)
}

func (s *workoutService) resolveDay(ctx context.Context, userID primitive.ObjectID, input LogWorkoutInput) (*domain.TrainingPlan, *domain.WorkoutDay, error) {
	if userID == primitive.NilObjectID || input.PlanID == primitive.NilObjectID {
		return nil, nil, ErrWorkoutValidation
	}

	plan, err := s.planRepo.GetByID(ctx, userID, input.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrPlanNotFound
		}
		return nil, nil, err
	}

	day := plan.Day(input.DayNumber)
	if day == nil {
		return nil, nil, ErrWorkoutDayNotFound
	}
	if day.RestDay {
		return nil, nil, ErrWorkoutDayIsRestDay
	}
	return plan, day, nil
}

// GetLogs retrieves all workout logs of the user, newest first.
func (s *workoutService) GetLogs(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	return s.workoutRepo.GetAll(ctx, userID)
}

// GetLog retrieves a single workout log.
func (s *workoutService) GetLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WorkoutLog, error) {
	log, err := s.workoutRepo.GetByID(ctx, userID, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutLogNotFound
		}
		return nil, err
	}
	return log, nil
}

// DeleteLog removes a workout log owned by the user.
func (s *workoutService) DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, userID, logID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutLogNotFound
	}
	return err
}

// Dashboard assembles the home-screen stat cards from the user's food
// entries and workout logs.
func (s *workoutService) Dashboard(ctx context.Context, userID primitive.ObjectID) (analytics.DashboardStats, error) {
	entries, logs, err := s.fetchHistory(ctx, userID)
	if err != nil {
		return analytics.DashboardStats{}, err
	}
	return analytics.Dashboard(entries, logs, s.now()), nil
}

// CalorieBalance returns the trailing calories-in-vs-out series, oldest
// day first.
func (s *workoutService) CalorieBalance(ctx context.Context, userID primitive.ObjectID, days int) ([]analytics.DayBalance, error) {
	entries, logs, err := s.fetchHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CalorieBalance(entries, logs, days, s.now()), nil
}

func (s *workoutService) fetchHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, []domain.WorkoutLog, error) {
	if userID == primitive.NilObjectID {
		return nil, nil, ErrWorkoutValidation
	}
	entries, err := s.foodRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	logs, err := s.workoutRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return entries, logs, nil
}
