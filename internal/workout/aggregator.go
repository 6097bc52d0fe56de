// Package workout folds per-exercise calorie estimates into day-level
// totals and multi-day summaries over persisted workout logs.
package workout

import (
	"strings"

	"gymtracker/app/internal/calories"
	"gymtracker/app/internal/catalog"
	"gymtracker/app/internal/domain"
)

// fallbackReps is used when a plan's rep-range string has no parseable
// leading integer and no override is supplied.
const fallbackReps = 10

// Overrides carries user-edited values for one exercise. Nil fields fall
// back to the plan's authored values.
type Overrides struct {
	Sets        *int
	Reps        *int
	RestSeconds *int
	WeightKg    *float64
}

// ExerciseEstimate is the resolved performance and calorie estimate for
// one exercise of a workout day.
type ExerciseEstimate struct {
	Name        string              `json:"name"`
	MuscleGroup string              `json:"muscleGroup"`
	Sets        int                 `json:"sets"`
	Reps        int                 `json:"reps"`
	RestSeconds int                 `json:"restSeconds"`
	WeightKg    *float64            `json:"weightKg,omitempty"`
	Burn        calories.BurnResult `json:"burn"`
}

// DayTotals aggregates a whole workout day.
type DayTotals struct {
	TotalCalories   float64            `json:"totalCalories"`
	TotalVolume     float64            `json:"totalVolume"`
	DurationMinutes float64            `json:"durationMinutes"`
	Exercises       []ExerciseEstimate `json:"exercises"`
}

// Aggregator resolves exercise names through the catalog and estimates
// calorie burn per exercise. Construct once and share; it is stateless
// beyond the immutable catalog reference.
type Aggregator struct {
	catalog *catalog.Catalog
}

func NewAggregator(c *catalog.Catalog) *Aggregator {
	return &Aggregator{catalog: c}
}

// DayTotals estimates calories, volume and duration for every exercise of
// a plan day, applying per-exercise overrides keyed by position in the
// day's exercise list. Rest days and empty days yield zero totals.
//
// Names that miss the catalog still produce numbers via the default entry;
// AI-generated plans routinely drift from the curated catalog and a whole
// day's estimate must not fail over one unknown name. The only error is a
// non-positive body weight, which the estimator rejects by contract.
func (a *Aggregator) DayTotals(day domain.WorkoutDay, bodyWeightKg float64, overrides map[int]Overrides) (DayTotals, error) {
	totals := DayTotals{}
	if day.RestDay {
		return totals, nil
	}

	for i, ex := range day.Exercises {
		est, err := a.estimateExercise(ex, bodyWeightKg, overrides[i])
		if err != nil {
			return DayTotals{}, err
		}

		totals.TotalCalories += est.Burn.TotalCalories
		totals.DurationMinutes += est.Burn.TotalMinutes
		if est.WeightKg != nil {
			// Bodyweight exercises contribute zero volume: volume
			// tracking assumes external resistance.
			totals.TotalVolume += float64(est.Sets) * float64(est.Reps) * *est.WeightKg
		}
		totals.Exercises = append(totals.Exercises, est)
	}
	return totals, nil
}

func (a *Aggregator) estimateExercise(ex domain.PlannedExercise, bodyWeightKg float64, ov Overrides) (ExerciseEstimate, error) {
	entry := a.catalog.Resolve(ex.Name)

	sets := ex.Sets
	if ov.Sets != nil {
		sets = *ov.Sets
	}
	reps := fallbackReps
	if n, ok := parseLeadingInt(ex.Reps); ok {
		reps = n
	}
	if ov.Reps != nil {
		reps = *ov.Reps
	}
	rest := ex.RestSeconds
	if ov.RestSeconds != nil {
		rest = *ov.RestSeconds
	}

	burn, err := calories.Estimate(calories.Performance{
		MET:           entry.MET,
		BodyWeightKg:  bodyWeightKg,
		Sets:          sets,
		RepsPerSet:    reps,
		SecondsPerRep: entry.SecondsPerRep,
		RestSeconds:   float64(rest),
		LiftWeightKg:  ov.WeightKg,
	})
	if err != nil {
		return ExerciseEstimate{}, err
	}

	return ExerciseEstimate{
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
		Sets:        sets,
		Reps:        reps,
		RestSeconds: rest,
		WeightKg:    ov.WeightKg,
		Burn:        burn,
	}, nil
}

// LoggedExercises converts a day estimate into the snapshot form persisted
// on a workout log.
func (t DayTotals) LoggedExercises() []domain.LoggedExercise {
	out := make([]domain.LoggedExercise, 0, len(t.Exercises))
	for _, e := range t.Exercises {
		out = append(out, domain.LoggedExercise{
			Name:           e.Name,
			MuscleGroup:    e.MuscleGroup,
			Sets:           e.Sets,
			Reps:           e.Reps,
			RestSeconds:    e.RestSeconds,
			WeightKg:       e.WeightKg,
			CaloriesBurned: e.Burn.TotalCalories,
		})
	}
	return out
}

// parseLeadingInt extracts the leading integer of a rep-range string, so
// "8-12" contributes 8 and "10" contributes 10.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 || n == 0 {
		return 0, false
	}
	return n, true
}
