// Package ai wraps the OpenAI chat completions API for the three
// vision/generation features: food photo analysis, progress photo
// analysis and training plan generation. Responses are requested as
// bare JSON and run through tolerant parsers, since models occasionally
// wrap output in markdown fences despite instructions.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"gymtracker/app/internal/domain"
)

// ErrEmptyResponse indicates the model returned no usable content.
var ErrEmptyResponse = errors.New("ai: empty model response")

// Service defines AI-backed analysis operations.
type Service interface {
	AnalyzeFood(ctx context.Context, imageDataURL string, mealType domain.MealType) (*domain.FoodAnalysis, error)
	AnalyzeProgress(ctx context.Context, imageDataURL, previousImageDataURL string) (*domain.ProgressAnalysis, error)
	GeneratePlan(ctx context.Context, req PlanRequest) (*GeneratedPlan, error)
}

// PlanRequest carries the user's inputs for plan generation.
type PlanRequest struct {
	Goal          domain.TrainingGoal
	FitnessLevel  domain.FitnessLevel
	DaysPerWeek   int
	Equipment     []string
	Notes         string
	ExerciseNames []string // catalog names the model must pick from
}

// GeneratedPlan is the model's plan output before it is attached to a
// user and persisted.
type GeneratedPlan struct {
	Name        string
	Duration    string
	WorkoutDays []domain.WorkoutDay
}

type client struct {
	api   openai.Client
	model openai.ChatModel
}

// NewClient creates an OpenAI-backed Service. An empty model selects GPT-4o.
func NewClient(apiKey, model string) Service {
	m := openai.ChatModel(model)
	if m == "" {
		m = openai.ChatModelGPT4o
	}
	return &client{
		api:   openai.NewClient(option.WithAPIKey(apiKey)),
		model: m,
	}
}

// AnalyzeFood sends a food photo for nutritional estimation.
func (c *client) AnalyzeFood(ctx context.Context, imageDataURL string, mealType domain.MealType) (*domain.FoodAnalysis, error) {
	if imageDataURL == "" {
		return nil, errors.New("ai: image is required")
	}

	mt := string(mealType)
	if mt == "" {
		mt = "unknown"
	}
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(fmt.Sprintf("%s\n\nMeal type: %s", foodAnalysisPrompt, mt)),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imageDataURL}),
	}

	text, err := c.complete(ctx, parts)
	if err != nil {
		return nil, err
	}
	return ParseFoodAnalysis(text)
}

// AnalyzeProgress sends a physique photo for assessment. When a previous
// photo is provided the model compares the two (older first, newer second).
func (c *client) AnalyzeProgress(ctx context.Context, imageDataURL, previousImageDataURL string) (*domain.ProgressAnalysis, error) {
	if imageDataURL == "" {
		return nil, errors.New("ai: image is required")
	}

	prompt := progressAnalysisPrompt
	if previousImageDataURL != "" {
		prompt = progressComparisonPrompt
	}
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(prompt),
	}
	if previousImageDataURL != "" {
		parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: previousImageDataURL}))
	}
	parts = append(parts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imageDataURL}))

	text, err := c.complete(ctx, parts)
	if err != nil {
		return nil, err
	}
	return ParseProgressAnalysis(text)
}

// GeneratePlan asks the model for a full training plan constrained to
// the exercise names in the request.
func (c *client) GeneratePlan(ctx context.Context, req PlanRequest) (*GeneratedPlan, error) {
	if req.Goal == "" || req.FitnessLevel == "" || req.DaysPerWeek <= 0 {
		return nil, errors.New("ai: goal, fitness level and days per week are required")
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(trainingPlanPrompt(req)),
	}
	text, err := c.complete(ctx, parts)
	if err != nil {
		return nil, err
	}
	return ParseTrainingPlan(text)
}

func (c *client) complete(ctx context.Context, parts []openai.ChatCompletionContentPartUnionParam) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	})
	if err != nil {
		return "", fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return completion.Choices[0].Message.Content, nil
}
