package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FitnessLevel describes the experience level a plan is written for.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// TrainingGoal is the primary objective of a training plan.
type TrainingGoal string

const (
	GoalMuscleGain     TrainingGoal = "muscle_gain"
	GoalFatLoss        TrainingGoal = "fat_loss"
	GoalStrength       TrainingGoal = "strength"
	GoalEndurance      TrainingGoal = "endurance"
	GoalGeneralFitness TrainingGoal = "general_fitness"
)

// PlannedExercise is one exercise within a workout day as authored by the
// plan generator. Reps is a free-form range string (e.g. "8-12") since
// plans prescribe ranges, not exact counts.
type PlannedExercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        string `bson:"reps" json:"reps"`
	RestSeconds int    `bson:"restSeconds" json:"restSeconds"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
	MuscleGroup string `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`
}

// WorkoutDay is one day of a training plan.
type WorkoutDay struct {
	DayNumber         int               `bson:"dayNumber" json:"dayNumber"`
	Name              string            `bson:"name" json:"name"` // e.g. "Upper Body Push"
	FocusMuscleGroups []string          `bson:"focusMuscleGroups" json:"focusMuscleGroups"`
	Exercises         []PlannedExercise `bson:"exercises" json:"exercises"`
	EstimatedDuration int               `bson:"estimatedDuration" json:"estimatedDuration"` // minutes
	RestDay           bool              `bson:"restDay" json:"restDay"`
}

// TrainingPlan is a generated multi-day plan, owned by a user. At most one
// plan per user is active at a time; activation is enforced by the service
// layer, not the document itself.
type TrainingPlan struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Goal         TrainingGoal       `bson:"goal" json:"goal"`
	FitnessLevel FitnessLevel       `bson:"fitnessLevel" json:"fitnessLevel"`
	DaysPerWeek  int                `bson:"daysPerWeek" json:"daysPerWeek"`
	Equipment    []string           `bson:"equipment" json:"equipment"`
	Duration     string             `bson:"duration" json:"duration"` // e.g. "4 weeks"
	WorkoutDays  []WorkoutDay       `bson:"workoutDays" json:"workoutDays"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Day returns the workout day with the given number, or nil.
func (p *TrainingPlan) Day(number int) *WorkoutDay {
	for i := range p.WorkoutDays {
		if p.WorkoutDays[i].DayNumber == number {
			return &p.WorkoutDays[i]
		}
	}
	return nil
}
