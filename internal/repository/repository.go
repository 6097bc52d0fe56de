package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Every collection is user-scoped: reads and deletes always filter on the
// owning user, so one user can never see or touch another user's records.
// Implementations exist for MongoDB (repository/mongo) and in-memory
// storage (repository/memory); callers must not depend on which one is
// behind the interface.

// UserRepository defines the interface for interacting with user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

// FoodEntryRepository defines the interface for interacting with logged meals.
type FoodEntryRepository interface {
	Create(ctx context.Context, entry *domain.FoodEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.FoodEntry, error)
	GetAll(ctx context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodEntry, error)
	Update(ctx context.Context, entry *domain.FoodEntry) error
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// ProgressRepository defines the interface for interacting with progress entries.
type ProgressRepository interface {
	Create(ctx context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.ProgressEntry, error)
	GetAll(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
	// GetLatest returns the most recent entry by date, or ErrNotFound.
	GetLatest(ctx context.Context, userID primitive.ObjectID) (*domain.ProgressEntry, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// TrainingPlanRepository defines the interface for interacting with training plans.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.TrainingPlan, error)
	GetAll(ctx context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error)
	Update(ctx context.Context, plan *domain.TrainingPlan) error
	// DeactivateAll clears the active flag on every plan of the user.
	DeactivateAll(ctx context.Context, userID primitive.ObjectID) error
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// WorkoutLogRepository defines the interface for interacting with workout
// logs. Logs are immutable after creation, so there is no Update: the
// aggregate totals are snapshots taken at logging time.
type WorkoutLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.WorkoutLog, error)
	GetAll(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error)
	// GetByDateRange returns logs with from <= date <= to (ISO date strings).
	GetByDateRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.WorkoutLog, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}
