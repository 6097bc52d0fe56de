package workout

import (
	"time"

	"gymtracker/app/internal/domain"
)

// DateLayout is the ISO 8601 calendar-date form used on all persisted
// entries. Dates are compared as strings on the host's local calendar;
// there is no timezone conversion.
const DateLayout = "2006-01-02"

// DailyCaloriesBurned maps each of the last `days` calendar dates (ending
// at today, inclusive) to the summed TotalCalories of the workout logs on
// that date. Every requested date is present in the result, 0 when no log
// matches. A non-positive day count yields an empty map.
func DailyCaloriesBurned(logs []domain.WorkoutLog, days int, today time.Time) map[string]float64 {
	result := make(map[string]float64, max(days, 0))
	for i := days - 1; i >= 0; i-- {
		result[today.AddDate(0, 0, -i).Format(DateLayout)] = 0
	}
	for _, l := range logs {
		if _, ok := result[l.Date]; ok {
			result[l.Date] += l.TotalCalories
		}
	}
	return result
}

// TodayCaloriesBurned is the single-day case of DailyCaloriesBurned.
func TodayCaloriesBurned(logs []domain.WorkoutLog, today time.Time) float64 {
	return DailyCaloriesBurned(logs, 1, today)[today.Format(DateLayout)]
}

// WeeklyWorkoutCount counts logs whose date falls in the trailing 7-day
// window ending today, both endpoints inclusive.
func WeeklyWorkoutCount(logs []domain.WorkoutLog, today time.Time) int {
	weekAgo := today.AddDate(0, 0, -6).Format(DateLayout)
	todayStr := today.Format(DateLayout)
	count := 0
	for _, l := range logs {
		if l.Date >= weekAgo && l.Date <= todayStr {
			count++
		}
	}
	return count
}
