// Package analytics derives read-only dashboard views from persisted food
// entries and workout-log aggregates. Everything here is a pure function
// over already-fetched records.
package analytics

import (
	"time"

	"gymtracker/app/internal/domain"
	"gymtracker/app/internal/workout"
)

// maxStreakDays bounds the streak walk; nobody needs credit past a year.
const maxStreakDays = 365

// DayStreak counts consecutive days with at least one food entry,
// walking backward one calendar day at a time starting from today and
// stopping at the first gap. It is a greedy run count anchored at today,
// not a longest-run-anywhere search.
func DayStreak(entries []domain.FoodEntry, today time.Time) int {
	dates := make(map[string]bool, len(entries))
	for _, e := range entries {
		dates[e.Date] = true
	}

	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		if !dates[today.AddDate(0, 0, -i).Format(workout.DateLayout)] {
			break
		}
		streak++
	}
	return streak
}

// NutritionTotals is a summed nutrition view over food entries.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// TodayTotals sums nutrition over today's food entries. Manual overrides
// take precedence over AI estimates per field; entries with neither
// contribute zero.
func TodayTotals(entries []domain.FoodEntry, today time.Time) NutritionTotals {
	todayStr := today.Format(workout.DateLayout)
	var totals NutritionTotals
	for _, e := range entries {
		if e.Date != todayStr {
			continue
		}
		totals.Calories += e.EffectiveCalories()

		var macros domain.MacroNutrients
		if e.Analysis != nil {
			macros = e.Analysis.TotalMacros
		}
		totals.Protein += override(e.Override, func(o *domain.ManualOverride) *float64 { return o.Protein }, macros.Protein)
		totals.Carbs += override(e.Override, func(o *domain.ManualOverride) *float64 { return o.Carbs }, macros.Carbs)
		totals.Fat += override(e.Override, func(o *domain.ManualOverride) *float64 { return o.Fat }, macros.Fat)
		totals.Fiber += override(e.Override, func(o *domain.ManualOverride) *float64 { return o.Fiber }, macros.Fiber)
	}
	return totals
}

func override(o *domain.ManualOverride, field func(*domain.ManualOverride) *float64, fallback float64) float64 {
	if o != nil {
		if v := field(o); v != nil {
			return *v
		}
	}
	return fallback
}

// DayBalance is one day of the calories-in-vs-out series.
type DayBalance struct {
	Date   string  `json:"date"`
	Eaten  float64 `json:"eaten"`
	Burned float64 `json:"burned"`
}

// CalorieBalance produces the trailing `days`-day series of calories eaten
// (food entries) against calories burned (workout logs), oldest first.
// Dates with no data report zeros.
func CalorieBalance(entries []domain.FoodEntry, logs []domain.WorkoutLog, days int, today time.Time) []DayBalance {
	if days <= 0 {
		return nil
	}

	eatenByDate := make(map[string]float64, len(entries))
	for _, e := range entries {
		eatenByDate[e.Date] += e.EffectiveCalories()
	}
	burned := workout.DailyCaloriesBurned(logs, days, today)

	series := make([]DayBalance, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format(workout.DateLayout)
		series = append(series, DayBalance{
			Date:   date,
			Eaten:  eatenByDate[date],
			Burned: burned[date],
		})
	}
	return series
}

// DashboardStats is the stat-card summary shown on the home screen.
type DashboardStats struct {
	DayStreak           int     `json:"dayStreak"`
	MealsLogged         int     `json:"mealsLogged"`
	WorkoutsThisWeek    int     `json:"workoutsThisWeek"`
	CaloriesBurnedToday float64 `json:"caloriesBurnedToday"`
}

// Dashboard assembles the stat cards from food entries and workout logs.
func Dashboard(entries []domain.FoodEntry, logs []domain.WorkoutLog, today time.Time) DashboardStats {
	return DashboardStats{
		DayStreak:           DayStreak(entries, today),
		MealsLogged:         len(entries),
		WorkoutsThisWeek:    workout.WeeklyWorkoutCount(logs, today),
		CaloriesBurnedToday: workout.TodayCaloriesBurned(logs, today),
	}
}
