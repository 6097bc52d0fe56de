package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Measurements holds optional body measurements in centimeters.
type Measurements struct {
	Chest  *float64 `bson:"chest,omitempty" json:"chest,omitempty"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist,omitempty"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips,omitempty"`
	Biceps *float64 `bson:"biceps,omitempty" json:"biceps,omitempty"`
	Thighs *float64 `bson:"thighs,omitempty" json:"thighs,omitempty"`
}

// MuscleGroupNote is a per-muscle-group observation from a progress analysis.
type MuscleGroupNote struct {
	Group string `bson:"group" json:"group"`
	Note  string `bson:"note" json:"note"`
}

// ProgressAnalysis is the structured result of analyzing a progress photo.
type ProgressAnalysis struct {
	Observations     string            `bson:"observations" json:"observations"`
	EstimatedBodyFat string            `bson:"estimatedBodyFat" json:"estimatedBodyFat"`
	MuscleGroupNotes []MuscleGroupNote `bson:"muscleGroupNotes" json:"muscleGroupNotes"`
	ComparisonNotes  string            `bson:"comparisonNotes" json:"comparisonNotes"`
	Recommendations  []string          `bson:"recommendations" json:"recommendations"`
}

// ProgressEntry is a body-progress check-in (photo plus optional metrics),
// owned by a user.
type ProgressEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Photo        string             `bson:"photo" json:"photo"`
	Thumbnail    string             `bson:"thumbnail" json:"thumbnail"`
	Date         string             `bson:"date" json:"date"` // ISO 8601 date
	WeightKg     *float64           `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	BodyFatPct   *float64           `bson:"bodyFatPct,omitempty" json:"bodyFatPct,omitempty"`
	Measurements *Measurements      `bson:"measurements,omitempty" json:"measurements,omitempty"`
	Analysis     *ProgressAnalysis  `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
