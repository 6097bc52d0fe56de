package service

import (
	"context"
	"sync"
	"time"

	"gymtracker/app/internal/ai"
	"gymtracker/app/internal/domain"
)

// stubAI returns canned analysis results and records the requests it saw.
type stubAI struct {
	mu            sync.Mutex
	foodResult    *domain.FoodAnalysis
	progressRes   *domain.ProgressAnalysis
	planResult    *ai.GeneratedPlan
	err           error
	planRequests  []ai.PlanRequest
	foodCalls     int
	progressCalls int
}

func (s *stubAI) AnalyzeFood(_ context.Context, _ string, _ domain.MealType) (*domain.FoodAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foodCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.foodResult, nil
}

func (s *stubAI) AnalyzeProgress(_ context.Context, _, _ string) (*domain.ProgressAnalysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progressCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.progressRes, nil
}

func (s *stubAI) GeneratePlan(_ context.Context, req ai.PlanRequest) (*ai.GeneratedPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planRequests = append(s.planRequests, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.planResult, nil
}

// fakeStorage keeps uploaded objects in a map.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, objectKey, _ string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectKey] = data
	return nil
}

func (f *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://storage.test/upload/" + objectKey, nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/get/" + objectKey, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectKey)
	return nil
}

func (f *fakeStorage) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// tiny valid JPEG-ish payload as a data URL
const testPhotoDataURL = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="
