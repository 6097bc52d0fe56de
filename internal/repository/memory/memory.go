// Package memory provides in-memory implementations of the repository
// interfaces. They back unit tests and local development without a
// running MongoDB; behavior mirrors the mongo implementations, including
// user scoping, sort order and ErrNotFound semantics.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
)

// Compile-time interface checks.
var (
	_ repository.UserRepository         = (*UserRepository)(nil)
	_ repository.FoodEntryRepository    = (*FoodEntryRepository)(nil)
	_ repository.ProgressRepository     = (*ProgressRepository)(nil)
	_ repository.TrainingPlanRepository = (*TrainingPlanRepository)(nil)
	_ repository.WorkoutLogRepository   = (*WorkoutLogRepository)(nil)
)

// UserRepository stores users in a map keyed by ID.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.RepositoryError("user with this email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

// FoodEntryRepository stores food entries in a map keyed by ID.
type FoodEntryRepository struct {
	mu      sync.RWMutex
	entries map[primitive.ObjectID]domain.FoodEntry
}

func NewFoodEntryRepository() *FoodEntryRepository {
	return &FoodEntryRepository{entries: make(map[primitive.ObjectID]domain.FoodEntry)}
}

func (r *FoodEntryRepository) Create(_ context.Context, entry *domain.FoodEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = *entry
	return entry.ID, nil
}

func (r *FoodEntryRepository) GetByID(_ context.Context, userID, id primitive.ObjectID) (*domain.FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	entry := e
	return &entry, nil
}

func (r *FoodEntryRepository) GetAll(_ context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.FoodEntry{}
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FoodEntryRepository) GetByDate(_ context.Context, userID primitive.ObjectID, date string) ([]domain.FoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.FoodEntry{}
	for _, e := range r.entries {
		if e.UserID == userID && e.Date == date {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FoodEntryRepository) Update(_ context.Context, entry *domain.FoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[entry.ID]
	if !ok || existing.UserID != entry.UserID {
		return repository.ErrNotFound
	}
	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = time.Now().UTC()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *FoodEntryRepository) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// ProgressRepository stores progress entries in a map keyed by ID.
type ProgressRepository struct {
	mu      sync.RWMutex
	entries map[primitive.ObjectID]domain.ProgressEntry
}

func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{entries: make(map[primitive.ObjectID]domain.ProgressEntry)}
}

func (r *ProgressRepository) Create(_ context.Context, entry *domain.ProgressEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = *entry
	return entry.ID, nil
}

func (r *ProgressRepository) GetByID(_ context.Context, userID, id primitive.ObjectID) (*domain.ProgressEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	entry := e
	return &entry, nil
}

func (r *ProgressRepository) GetAll(_ context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.ProgressEntry{}
	for _, e := range r.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *ProgressRepository) GetLatest(ctx context.Context, userID primitive.ObjectID) (*domain.ProgressEntry, error) {
	entries, err := r.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	latest := entries[0]
	return &latest, nil
}

func (r *ProgressRepository) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// TrainingPlanRepository stores training plans in a map keyed by ID.
type TrainingPlanRepository struct {
	mu    sync.RWMutex
	plans map[primitive.ObjectID]domain.TrainingPlan
}

func NewTrainingPlanRepository() *TrainingPlanRepository {
	return &TrainingPlanRepository{plans: make(map[primitive.ObjectID]domain.TrainingPlan)}
}

func (r *TrainingPlanRepository) Create(_ context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = *plan
	return plan.ID, nil
}

func (r *TrainingPlanRepository) GetByID(_ context.Context, userID, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	plan := p
	return &plan, nil
}

func (r *TrainingPlanRepository) GetAll(_ context.Context, userID primitive.ObjectID) ([]domain.TrainingPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.TrainingPlan{}
	for _, p := range r.plans {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *TrainingPlanRepository) Update(_ context.Context, plan *domain.TrainingPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.plans[plan.ID]
	if !ok || existing.UserID != plan.UserID {
		return repository.ErrNotFound
	}
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = time.Now().UTC()
	r.plans[plan.ID] = *plan
	return nil
}

func (r *TrainingPlanRepository) DeactivateAll(_ context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.plans {
		if p.UserID == userID && p.IsActive {
			p.IsActive = false
			p.UpdatedAt = time.Now().UTC()
			r.plans[id] = p
		}
	}
	return nil
}

func (r *TrainingPlanRepository) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

// WorkoutLogRepository stores workout logs in a map keyed by ID.
type WorkoutLogRepository struct {
	mu   sync.RWMutex
	logs map[primitive.ObjectID]domain.WorkoutLog
}

func NewWorkoutLogRepository() *WorkoutLogRepository {
	return &WorkoutLogRepository{logs: make(map[primitive.ObjectID]domain.WorkoutLog)}
}

func (r *WorkoutLogRepository) Create(_ context.Context, log *domain.WorkoutLog) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now
	r.logs[log.ID] = *log
	return log.ID, nil
}

func (r *WorkoutLogRepository) GetByID(_ context.Context, userID, id primitive.ObjectID) (*domain.WorkoutLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return nil, repository.ErrNotFound
	}
	log := l
	return &log, nil
}

func (r *WorkoutLogRepository) GetAll(_ context.Context, userID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.WorkoutLog{}
	for _, l := range r.logs {
		if l.UserID == userID {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *WorkoutLogRepository) GetByDateRange(_ context.Context, userID primitive.ObjectID, from, to string) ([]domain.WorkoutLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.WorkoutLog{}
	for _, l := range r.logs {
		if l.UserID == userID && l.Date >= from && l.Date <= to {
			result = append(result, l)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

func (r *WorkoutLogRepository) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[id]
	if !ok || l.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}
