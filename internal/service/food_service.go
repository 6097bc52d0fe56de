package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/analytics"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
	"gymtracker/app/internal/storage"
	"gymtracker/app/internal/workout"
)

// --- Error Definitions ---
var (
	ErrFoodEntryNotFound = errors.New("food entry not found")
	ErrFoodValidation    = errors.New("food entry validation failed")
)

// LogMealInput carries the client's inputs for logging a meal.
type LogMealInput struct {
	PhotoDataURL string
	MealType     domain.MealType
	Date         string // ISO date; empty means today
	Description  string
}

// --- Service Interface ---
type FoodService interface {
	LogMeal(ctx context.Context, userID primitive.ObjectID, input LogMealInput) (*domain.FoodEntry, error)
	GetEntries(ctx context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, error)
	GetEntriesByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodEntry, error)
	GetEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*domain.FoodEntry, error)
	OverrideNutrition(ctx context.Context, userID, entryID primitive.ObjectID, override domain.ManualOverride) (*domain.FoodEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID primitive.ObjectID) error
	GetPhotoURL(ctx context.Context, userID, entryID primitive.ObjectID) (string, error)
	TodaySummary(ctx context.Context, userID primitive.ObjectID) (analytics.NutritionTotals, error)
}

// --- Service Implementation ---

// foodService implements the FoodService interface.
type foodService struct {
	foodRepo repository.FoodEntryRepository
	analyzer ai.Service
	storage  storage.FileStorage
}

// NewFoodService creates a new instance of foodService.
func NewFoodService(foodRepo repository.FoodEntryRepository, analyzer ai.Service, fileStorage storage.FileStorage) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		analyzer: analyzer,
		storage:  fileStorage,
	}
}

// LogMeal stores the meal photo, runs AI nutrition analysis and persists
// the entry. Analysis failure does not lose the meal: the entry is saved
// without analysis and nutrition can be filled in manually later.
func (s *foodService) LogMeal(ctx context.Context, userID primitive.ObjectID, input LogMealInput) (*domain.FoodEntry, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrFoodValidation
	}
	if input.MealType == "" {
		return nil, ErrFoodValidation
	}
	contentType, photoBytes, err := decodeDataURL(input.PhotoDataURL)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(workout.DateLayout)
	}

	photoKey := storage.PhotoKey(storage.FoodPhotoPrefix)
	if err := s.storage.Upload(ctx, photoKey, contentType, photoBytes); err != nil {
		return nil, err
	}

	entry := &domain.FoodEntry{
		UserID:      userID,
		Photo:       photoKey,
		MealType:    input.MealType,
		Date:        date,
		Description: input.Description,
	}

	analysis, err := s.analyzer.AnalyzeFood(ctx, input.PhotoDataURL, input.MealType)
	if err != nil {
		log.Printf("WARN: food analysis failed for user %s: %v", userID.Hex(), err)
	} else {
		entry.Analysis = analysis
	}

	entryID, err := s.foodRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

// GetEntries retrieves all food entries of the user, newest first.
func (s *foodService) GetEntries(ctx context.Context, userID primitive.ObjectID) ([]domain.FoodEntry, error) {
	return s.foodRepo.GetAll(ctx, userID)
}

// GetEntriesByDate retrieves the user's food entries for one date.
func (s *foodService) GetEntriesByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodEntry, error) {
	if date == "" {
		date = time.Now().Format(workout.DateLayout)
	}
	return s.foodRepo.GetByDate(ctx, userID, date)
}

// GetEntry retrieves a single food entry.
func (s *foodService) GetEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*domain.FoodEntry, error) {
	entry, err := s.foodRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// OverrideNutrition attaches a manual nutrition correction to an entry.
// Only the fields set in the override replace the AI estimates; nil
// fields keep falling through to the analysis values.
func (s *foodService) OverrideNutrition(ctx context.Context, userID, entryID primitive.ObjectID, override domain.ManualOverride) (*domain.FoodEntry, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Override = &override
	if err := s.foodRepo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFoodEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a food entry and its stored photo.
func (s *foodService) DeleteEntry(ctx context.Context, userID, entryID primitive.ObjectID) error {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.foodRepo.Delete(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFoodEntryNotFound
		}
		return err
	}

	// Best effort: an orphaned object is preferable to a dangling entry.
	if entry.Photo != "" {
		if err := s.storage.DeleteObject(ctx, entry.Photo); err != nil {
			log.Printf("WARN: failed to delete photo %s: %v", entry.Photo, err)
		}
	}
	return nil
}

// TodaySummary sums today's nutrition, with manual overrides taking
// precedence over AI estimates per field.
func (s *foodService) TodaySummary(ctx context.Context, userID primitive.ObjectID) (analytics.NutritionTotals, error) {
	now := time.Now()
	entries, err := s.foodRepo.GetByDate(ctx, userID, now.Format(workout.DateLayout))
	if err != nil {
		return analytics.NutritionTotals{}, err
	}
	return analytics.TodayTotals(entries, now), nil
}

// GetPhotoURL returns a presigned download URL for the entry's photo.
func (s *foodService) GetPhotoURL(ctx context.Context, userID, entryID primitive.ObjectID) (string, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return "", err
	}
	if entry.Photo == "" {
		return "", ErrFoodEntryNotFound
	}
	return s.storage.GeneratePresignedDownloadURL(ctx, entry.Photo, storage.DefaultPresignedURLExpiry)
}
