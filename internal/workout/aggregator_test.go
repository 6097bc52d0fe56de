package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymtracker/app/internal/calories"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/domain"
)

func intPtr(v int) *int         { return &v }
func fltPtr(v float64) *float64 { return &v }

func testCatalog() *catalog.Catalog {
	return catalog.NewWithEntries([]catalog.Entry{
		{
			ID: "bench_press", Name: "Bench Press", Category: catalog.CategoryChest,
			MET: 6.0, DefaultRepsPerSet: 8, SecondsPerRep: 3,
		},
		{
			ID: "squat", Name: "Squat", Category: catalog.CategoryLegs,
			MET: 6.0, DefaultRepsPerSet: 8, SecondsPerRep: 4,
		},
	})
}

func testDay() domain.WorkoutDay {
	return domain.WorkoutDay{
		DayNumber: 1,
		Name:      "Push Day",
		Exercises: []domain.PlannedExercise{
			{Name: "Bench Press", Sets: 4, Reps: "8-12", RestSeconds: 90, MuscleGroup: "Chest"},
			{Name: "Squat", Sets: 3, Reps: "10", RestSeconds: 120, MuscleGroup: "Legs"},
		},
	}
}

func TestDayTotalsMatchesPerExerciseEstimates(t *testing.T) {
	agg := NewAggregator(testCatalog())

	got, err := agg.DayTotals(testDay(), 80, nil)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 2)

	bench, err := calories.Estimate(calories.Performance{
		MET: 6.0, BodyWeightKg: 80, Sets: 4, RepsPerSet: 8, SecondsPerRep: 3, RestSeconds: 90,
	})
	require.NoError(t, err)
	squat, err := calories.Estimate(calories.Performance{
		MET: 6.0, BodyWeightKg: 80, Sets: 3, RepsPerSet: 10, SecondsPerRep: 4, RestSeconds: 120,
	})
	require.NoError(t, err)

	assert.Equal(t, bench, got.Exercises[0].Burn)
	assert.Equal(t, squat, got.Exercises[1].Burn)
	assert.Equal(t, bench.TotalCalories+squat.TotalCalories, got.TotalCalories)
	assert.Equal(t, bench.TotalMinutes+squat.TotalMinutes, got.DurationMinutes)

	// "8-12" contributes its leading integer.
	assert.Equal(t, 8, got.Exercises[0].Reps)
	assert.Equal(t, 10, got.Exercises[1].Reps)

	// No external load anywhere: volume is zero by design.
	assert.Equal(t, 0.0, got.TotalVolume)
}

func TestDayTotalsAppliesOverrides(t *testing.T) {
	agg := NewAggregator(testCatalog())

	overrides := map[int]Overrides{
		0: {Sets: intPtr(5), Reps: intPtr(5), RestSeconds: intPtr(180), WeightKg: fltPtr(100)},
	}
	got, err := agg.DayTotals(testDay(), 80, overrides)
	require.NoError(t, err)

	ex := got.Exercises[0]
	assert.Equal(t, 5, ex.Sets)
	assert.Equal(t, 5, ex.Reps)
	assert.Equal(t, 180, ex.RestSeconds)
	require.NotNil(t, ex.WeightKg)
	assert.Equal(t, 100.0, *ex.WeightKg)

	// volume = sets × reps × weight for the loaded exercise only.
	assert.Equal(t, 5.0*5*100, got.TotalVolume)

	// The second exercise keeps its plan-authored values.
	assert.Equal(t, 3, got.Exercises[1].Sets)
	assert.Nil(t, got.Exercises[1].WeightKg)
}

func TestDayTotalsLoadIncreasesCalories(t *testing.T) {
	agg := NewAggregator(testCatalog())

	plain, err := agg.DayTotals(testDay(), 80, nil)
	require.NoError(t, err)
	loaded, err := agg.DayTotals(testDay(), 80, map[int]Overrides{0: {WeightKg: fltPtr(80)}})
	require.NoError(t, err)

	assert.Greater(t, loaded.TotalCalories, plain.TotalCalories)
}

func TestDayTotalsUnknownNameUsesDefaultEntry(t *testing.T) {
	agg := NewAggregator(testCatalog())

	day := domain.WorkoutDay{
		Exercises: []domain.PlannedExercise{
			{Name: "Zzqx Exercise 123", Sets: 3, Reps: "12", RestSeconds: 60},
		},
	}
	got, err := agg.DayTotals(day, 70, nil)
	require.NoError(t, err)
	require.Len(t, got.Exercises, 1)

	want, err := calories.Estimate(calories.Performance{
		MET: 5.0, BodyWeightKg: 70, Sets: 3, RepsPerSet: 12, SecondsPerRep: 3, RestSeconds: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got.Exercises[0].Burn)
	assert.Positive(t, got.TotalCalories)
}

func TestDayTotalsRestAndEmptyDays(t *testing.T) {
	agg := NewAggregator(testCatalog())

	rest, err := agg.DayTotals(domain.WorkoutDay{RestDay: true}, 80, nil)
	require.NoError(t, err)
	assert.Equal(t, DayTotals{}, rest)

	empty, err := agg.DayTotals(domain.WorkoutDay{}, 80, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.TotalCalories)
	assert.Empty(t, empty.Exercises)
}

func TestDayTotalsRejectsInvalidBodyWeight(t *testing.T) {
	agg := NewAggregator(testCatalog())

	_, err := agg.DayTotals(testDay(), 0, nil)
	assert.ErrorIs(t, err, calories.ErrInvalidBodyWeight)
}

func TestLoggedExercisesSnapshot(t *testing.T) {
	agg := NewAggregator(testCatalog())

	totals, err := agg.DayTotals(testDay(), 80, map[int]Overrides{0: {WeightKg: fltPtr(60)}})
	require.NoError(t, err)

	logged := totals.LoggedExercises()
	require.Len(t, logged, 2)
	assert.Equal(t, "Bench Press", logged[0].Name)
	assert.Equal(t, "Chest", logged[0].MuscleGroup)
	assert.Equal(t, totals.Exercises[0].Burn.TotalCalories, logged[0].CaloriesBurned)
	require.NotNil(t, logged[0].WeightKg)
	assert.Equal(t, 60.0, *logged[0].WeightKg)
	assert.Nil(t, logged[1].WeightKg)
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"10", 10, true},
		{"8-12", 8, true},
		{" 15 ", 15, true},
		{"12 per leg", 12, true},
		{"AMRAP", 0, false},
		{"", 0, false},
		{"0", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingInt(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestDailyCaloriesBurnedSeries(t *testing.T) {
	today := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	// Zero logs: all dates present, all zero.
	series := DailyCaloriesBurned(nil, 7, today)
	require.Len(t, series, 7)
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, -i).Format(DateLayout)
		v, ok := series[date]
		assert.True(t, ok, "missing date %s", date)
		assert.Equal(t, 0.0, v)
	}

	logs := []domain.WorkoutLog{
		{Date: "2025-06-14", TotalCalories: 186.9},
		{Date: "2025-06-14", TotalCalories: 100.0},
		{Date: "2025-06-12", TotalCalories: 250.5},
		{Date: "2025-05-01", TotalCalories: 999.0}, // outside window
	}
	series = DailyCaloriesBurned(logs, 7, today)
	assert.Equal(t, 286.9, series["2025-06-14"])
	assert.Equal(t, 250.5, series["2025-06-12"])
	assert.Equal(t, 0.0, series["2025-06-13"])
	assert.NotContains(t, series, "2025-05-01")

	assert.Empty(t, DailyCaloriesBurned(logs, 0, today))
}

func TestTodayCaloriesBurned(t *testing.T) {
	today := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	logs := []domain.WorkoutLog{
		{Date: "2025-06-14", TotalCalories: 120.0},
		{Date: "2025-06-13", TotalCalories: 300.0},
	}
	assert.Equal(t, 120.0, TodayCaloriesBurned(logs, today))
	assert.Equal(t, 0.0, TodayCaloriesBurned(nil, today))
}

func TestWeeklyWorkoutCount(t *testing.T) {
	today := time.Date(2025, 6, 14, 8, 0, 0, 0, time.UTC)
	logs := []domain.WorkoutLog{
		{Date: "2025-06-14"}, // today
		{Date: "2025-06-08"}, // exactly 6 days back: inclusive
		{Date: "2025-06-07"}, // 7 days back: outside
		{Date: "2025-06-20"}, // future-dated: outside
	}
	assert.Equal(t, 2, WeeklyWorkoutCount(logs, today))
	assert.Equal(t, 0, WeeklyWorkoutCount(nil, today))
}
