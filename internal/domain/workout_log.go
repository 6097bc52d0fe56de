package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedExercise is one exercise as actually performed within a workout
// log. CaloriesBurned is a snapshot taken at logging time; it is never
// recomputed, so historical logs stay stable even if the exercise catalog
// is revised later.
type LoggedExercise struct {
	Name           string   `bson:"name" json:"name"`
	MuscleGroup    string   `bson:"muscleGroup" json:"muscleGroup"`
	Sets           int      `bson:"sets" json:"sets"`
	Reps           int      `bson:"reps" json:"reps"`
	RestSeconds    int      `bson:"restSeconds" json:"restSeconds"`
	WeightKg       *float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	CaloriesBurned float64  `bson:"caloriesBurned" json:"caloriesBurned"`
}

// WorkoutLog records a completed workout day. The aggregate totals are a
// fold over Exercises computed once at creation and persisted denormalized;
// the log is immutable after creation except through deletion.
type WorkoutLog struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	TrainingPlanID   primitive.ObjectID `bson:"trainingPlanId" json:"trainingPlanId"`
	TrainingPlanName string             `bson:"trainingPlanName" json:"trainingPlanName"`
	DayNumber        int                `bson:"dayNumber" json:"dayNumber"`
	DayName          string             `bson:"dayName" json:"dayName"`
	Date             string             `bson:"date" json:"date"` // ISO 8601 date
	BodyWeightKg     float64            `bson:"bodyWeightKg" json:"bodyWeightKg"`
	Exercises        []LoggedExercise   `bson:"exercises" json:"exercises"`
	TotalCalories    float64            `bson:"totalCalories" json:"totalCalories"`
	TotalVolume      float64            `bson:"totalVolume" json:"totalVolume"`
	DurationMinutes  float64            `bson:"durationMinutes" json:"durationMinutes"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
