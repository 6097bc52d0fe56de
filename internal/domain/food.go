package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType classifies a food entry by meal.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MacroNutrients holds a macro breakdown in grams.
type MacroNutrients struct {
	Protein float64 `bson:"protein" json:"protein"`
	Carbs   float64 `bson:"carbs" json:"carbs"`
	Fat     float64 `bson:"fat" json:"fat"`
	Fiber   float64 `bson:"fiber" json:"fiber"`
}

// FoodItem is one itemized food from an AI meal analysis.
type FoodItem struct {
	Name     string         `bson:"name" json:"name"`
	Calories float64        `bson:"calories" json:"calories"`
	Portion  string         `bson:"portion" json:"portion"`
	Macros   MacroNutrients `bson:"macros" json:"macros"`
}

// FoodAnalysis is the structured result of analyzing a meal photo.
type FoodAnalysis struct {
	FoodItems     []FoodItem     `bson:"foodItems" json:"foodItems"`
	TotalCalories float64        `bson:"totalCalories" json:"totalCalories"`
	TotalMacros   MacroNutrients `bson:"totalMacros" json:"totalMacros"`
	MealRating    int            `bson:"mealRating" json:"mealRating"` // 1-10
	HealthNotes   string         `bson:"healthNotes" json:"healthNotes"`
}

// ManualOverride lets the user correct AI-estimated values on a food
// entry. Nil fields mean "keep the AI estimate".
type ManualOverride struct {
	Calories *float64 `bson:"calories,omitempty" json:"calories,omitempty"`
	Protein  *float64 `bson:"protein,omitempty" json:"protein,omitempty"`
	Carbs    *float64 `bson:"carbs,omitempty" json:"carbs,omitempty"`
	Fat      *float64 `bson:"fat,omitempty" json:"fat,omitempty"`
	Fiber    *float64 `bson:"fiber,omitempty" json:"fiber,omitempty"`
}

// FoodEntry is a logged meal, owned by a user.
type FoodEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Photo       string             `bson:"photo" json:"photo"`         // Object key or URL of the full photo
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"` // Object key or URL of the thumbnail
	MealType    MealType           `bson:"mealType" json:"mealType"`
	Date        string             `bson:"date" json:"date"` // ISO 8601 date, e.g. "2025-06-14"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Analysis    *FoodAnalysis      `bson:"analysis,omitempty" json:"analysis,omitempty"`
	Override    *ManualOverride    `bson:"override,omitempty" json:"override,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveCalories returns the calories counted for this entry:
// the manual override when present, else the AI estimate, else 0.
func (e *FoodEntry) EffectiveCalories() float64 {
	if e.Override != nil && e.Override.Calories != nil {
		return *e.Override.Calories
	}
	if e.Analysis != nil {
		return e.Analysis.TotalCalories
	}
	return 0
}
