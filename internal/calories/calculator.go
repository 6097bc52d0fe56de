// Package calories implements the MET-based calorie burn model used for
// workout previews and persisted workout-log snapshots.
//
// The model follows the standard kcal/min formula:
//
//	kcal/min = MET × 3.5 × bodyWeight(kg) / 200
//
// For resistance training the performance is split into an active phase
// (sets × repsPerSet × secondsPerRep) billed at the exercise's MET, and a
// rest phase ((sets − 1) × restSeconds) billed at a fixed 1.5 MET to model
// elevated between-set metabolism. When an external load is supplied the
// active MET is scaled by the ratio of lifted weight to body weight:
//
//	adjustedMET = baseMET × (1 + liftWeight/bodyWeight × 0.2)
//
// giving roughly 20% extra burn when lifting one's body weight equivalent.
package calories

import (
	"errors"
	"math"
)

var (
	ErrInvalidBodyWeight = errors.New("body weight must be positive")
	ErrInvalidMET        = errors.New("MET must be positive")
	ErrInvalidSets       = errors.New("sets must be at least 1")
	ErrInvalidReps       = errors.New("reps per set must be at least 1")
	ErrInvalidTempo      = errors.New("seconds per rep must be positive")
	ErrInvalidRest       = errors.New("rest seconds must not be negative")
)

// Performance describes a single exercise performance to estimate.
// LiftWeightKg is nil for bodyweight work; nil and a pointer to 0 are
// equivalent (no load adjustment).
type Performance struct {
	MET           float64
	BodyWeightKg  float64
	Sets          int
	RepsPerSet    int
	SecondsPerRep float64
	RestSeconds   float64
	LiftWeightKg  *float64
}

// BurnResult is the estimate breakdown. Every field is independently
// rounded to one decimal, so Total equals Active+Rest only within
// rounding tolerance.
type BurnResult struct {
	TotalCalories  float64 `json:"totalCalories"`
	ActiveCalories float64 `json:"activeCalories"`
	RestCalories   float64 `json:"restCalories"`
	ActiveMinutes  float64 `json:"activeMinutes"`
	RestMinutes    float64 `json:"restMinutes"`
	TotalMinutes   float64 `json:"totalMinutes"`
}

// Estimate computes the calorie burn for one exercise performance.
//
// It is a pure function: no I/O, no shared state, deterministic for
// identical inputs, safe to call concurrently. Invalid inputs are
// rejected rather than clamped — callers own input sanitization (the UI
// clamps its fields to sensible minimums before calling).
func Estimate(p Performance) (BurnResult, error) {
	if err := p.validate(); err != nil {
		return BurnResult{}, err
	}

	loadFactor := 1.0
	if p.LiftWeightKg != nil && *p.LiftWeightKg > 0 {
		loadFactor = 1 + (*p.LiftWeightKg/p.BodyWeightKg)*0.2
	}
	adjustedMET := p.MET * loadFactor

	activeSeconds := float64(p.Sets) * float64(p.RepsPerSet) * p.SecondsPerRep
	restTotalSeconds := math.Max(0, float64(p.Sets-1)) * p.RestSeconds

	activeMinutes := activeSeconds / 60
	restMinutes := restTotalSeconds / 60

	activeCalories := adjustedMET * 3.5 * p.BodyWeightKg / 200 * activeMinutes
	restCalories := restMET * 3.5 * p.BodyWeightKg / 200 * restMinutes

	return BurnResult{
		TotalCalories:  round1(activeCalories + restCalories),
		ActiveCalories: round1(activeCalories),
		RestCalories:   round1(restCalories),
		ActiveMinutes:  round1(activeMinutes),
		RestMinutes:    round1(restMinutes),
		TotalMinutes:   round1(activeMinutes + restMinutes),
	}, nil
}

// restMET is the fixed intensity billed for inter-set rest, independent of
// the exercise's own MET.
const restMET = 1.5

func (p Performance) validate() error {
	switch {
	case p.BodyWeightKg <= 0:
		return ErrInvalidBodyWeight
	case p.MET <= 0:
		return ErrInvalidMET
	case p.Sets < 1:
		return ErrInvalidSets
	case p.RepsPerSet < 1:
		return ErrInvalidReps
	case p.SecondsPerRep <= 0:
		return ErrInvalidTempo
	case p.RestSeconds < 0:
		return ErrInvalidRest
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
