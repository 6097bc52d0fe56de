package service

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/repository"
	"gymtracker/app/internal/storage"
	"gymtracker/app/internal/workout"
)

// --- Error Definitions ---
var (
	ErrProgressEntryNotFound = errors.New("progress entry not found")
	ErrProgressValidation    = errors.New("progress entry validation failed")
)

// LogProgressInput carries the client's inputs for a progress check-in.
type LogProgressInput struct {
	PhotoDataURL         string
	PreviousPhotoDataURL string // optional; enables before/after comparison
	Date                 string // ISO date; empty means today
	WeightKg             *float64
	BodyFatPct           *float64
	Measurements         *domain.Measurements
	Notes                string
}

// --- Service Interface ---
type ProgressService interface {
	LogProgress(ctx context.Context, userID primitive.ObjectID, input LogProgressInput) (*domain.ProgressEntry, error)
	GetEntries(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error)
	GetEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*domain.ProgressEntry, error)
	GetLatest(ctx context.Context, userID primitive.ObjectID) (*domain.ProgressEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID primitive.ObjectID) error
	GetPhotoURL(ctx context.Context, userID, entryID primitive.ObjectID) (string, error)
}

// --- Service Implementation ---

// progressService implements the ProgressService interface.
type progressService struct {
	progressRepo repository.ProgressRepository
	analyzer     ai.Service
	storage      storage.FileStorage
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository, analyzer ai.Service, fileStorage storage.FileStorage) ProgressService {
	return &progressService{
		progressRepo: progressRepo,
		analyzer:     analyzer,
		storage:      fileStorage,
	}
}

// LogProgress stores the physique photo, runs AI analysis (comparing
// against the previous photo when one is supplied) and persists the
// entry. Analysis failure does not lose the check-in.
func (s *progressService) LogProgress(ctx context.Context, userID primitive.ObjectID, input LogProgressInput) (*domain.ProgressEntry, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrProgressValidation
	}
	contentType, photoBytes, err := decodeDataURL(input.PhotoDataURL)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(workout.DateLayout)
	}

	photoKey := storage.PhotoKey(storage.ProgressPhotoPrefix)
	if err := s.storage.Upload(ctx, photoKey, contentType, photoBytes); err != nil {
		return nil, err
	}

	entry := &domain.ProgressEntry{
		UserID:       userID,
		Photo:        photoKey,
		Date:         date,
		WeightKg:     input.WeightKg,
		BodyFatPct:   input.BodyFatPct,
		Measurements: input.Measurements,
		Notes:        input.Notes,
	}

	analysis, err := s.analyzer.AnalyzeProgress(ctx, input.PhotoDataURL, input.PreviousPhotoDataURL)
	if err != nil {
		log.Printf("WARN: progress analysis failed for user %s: %v", userID.Hex(), err)
	} else {
		entry.Analysis = analysis
	}

	entryID, err := s.progressRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID
	return entry, nil
}

// GetEntries retrieves all progress entries of the user, newest first.
func (s *progressService) GetEntries(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressEntry, error) {
	return s.progressRepo.GetAll(ctx, userID)
}

// GetEntry retrieves a single progress entry.
func (s *progressService) GetEntry(ctx context.Context, userID, entryID primitive.ObjectID) (*domain.ProgressEntry, error) {
	entry, err := s.progressRepo.GetByID(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// GetLatest retrieves the most recent progress entry.
func (s *progressService) GetLatest(ctx context.Context, userID primitive.ObjectID) (*domain.ProgressEntry, error) {
	entry, err := s.progressRepo.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgressEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a progress entry and its stored photo.
func (s *progressService) DeleteEntry(ctx context.Context, userID, entryID primitive.ObjectID) error {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	if err := s.progressRepo.Delete(ctx, userID, entryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgressEntryNotFound
		}
		return err
	}

	if entry.Photo != "" {
		if err := s.storage.DeleteObject(ctx, entry.Photo); err != nil {
			log.Printf("WARN: failed to delete photo %s: %v", entry.Photo, err)
		}
	}
	return nil
}

// GetPhotoURL returns a presigned download URL for the entry's photo.
func (s *progressService) GetPhotoURL(ctx context.Context, userID, entryID primitive.ObjectID) (string, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return "", err
	}
	if entry.Photo == "" {
		return "", ErrProgressEntryNotFound
	}
	return s.storage.GeneratePresignedDownloadURL(ctx, entry.Photo, storage.DefaultPresignedURLExpiry)
}
