package calories

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestEstimateReferenceScenario(t *testing.T) {
	// MET 6.0, 80 kg, 4×10 @ 3 s/rep, 90 s rest, no load:
	// active 4×10×3 = 120 s (2 min), rest 3×90 = 270 s (4.5 min).
	got, err := Estimate(Performance{
		MET:           6.0,
		BodyWeightKg:  80,
		Sets:          4,
		RepsPerSet:    10,
		SecondsPerRep: 3,
		RestSeconds:   90,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, got.ActiveMinutes)
	assert.Equal(t, 4.5, got.RestMinutes)
	assert.Equal(t, 6.5, got.TotalMinutes)
	// active: 6.0 × 3.5 × 80 / 200 × 2 = 16.8
	assert.Equal(t, 16.8, got.ActiveCalories)
	// rest: 1.5 × 3.5 × 80 / 200 × 4.5 = 9.45, rounded to 9.5
	assert.Equal(t, 9.5, got.RestCalories)
	// total: 16.8 + 9.45 = 26.25, rounded to 26.3
	assert.Equal(t, 26.3, got.TotalCalories)
}

func TestEstimateLoadFactor(t *testing.T) {
	// Lifting exactly body weight scales MET by 1.2: 6.0 -> 7.2.
	got, err := Estimate(Performance{
		MET:           6.0,
		BodyWeightKg:  80,
		Sets:          4,
		RepsPerSet:    10,
		SecondsPerRep: 3,
		RestSeconds:   90,
		LiftWeightKg:  ptr(80),
	})
	require.NoError(t, err)

	// active: 7.2 × 3.5 × 80 / 200 × 2 = 20.16, rounded to 20.2
	assert.Equal(t, 20.2, got.ActiveCalories)
	assert.Equal(t, 9.5, got.RestCalories) // rest is unaffected by load
	// total: 20.16 + 9.45 = 29.61, rounded to 29.6
	assert.Equal(t, 29.6, got.TotalCalories)
}

func TestEstimateNilLoadEqualsZeroLoad(t *testing.T) {
	base := Performance{
		MET:           5.0,
		BodyWeightKg:  70,
		Sets:          3,
		RepsPerSet:    12,
		SecondsPerRep: 2,
		RestSeconds:   60,
	}
	withZero := base
	withZero.LiftWeightKg = ptr(0)

	a, err := Estimate(base)
	require.NoError(t, err)
	b, err := Estimate(withZero)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEstimateSingleSetHasNoRest(t *testing.T) {
	got, err := Estimate(Performance{
		MET:           6.0,
		BodyWeightKg:  80,
		Sets:          1,
		RepsPerSet:    10,
		SecondsPerRep: 3,
		RestSeconds:   300, // irrelevant with a single set
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.RestCalories)
	assert.Equal(t, 0.0, got.RestMinutes)
	assert.Equal(t, got.ActiveCalories, got.TotalCalories)
}

func TestEstimateRestMonotonicInSets(t *testing.T) {
	base := Performance{
		MET:           6.0,
		BodyWeightKg:  80,
		Sets:          1,
		RepsPerSet:    10,
		SecondsPerRep: 3,
		RestSeconds:   90,
	}
	one, err := Estimate(base)
	require.NoError(t, err)

	base.Sets = 2
	two, err := Estimate(base)
	require.NoError(t, err)

	assert.Greater(t, two.RestCalories, one.RestCalories)
	// Active calories scale proportionally with sets.
	assert.InDelta(t, one.ActiveCalories*2, two.ActiveCalories, 0.1)
}

func TestEstimateTotalIsActivePlusRest(t *testing.T) {
	cases := []Performance{
		{MET: 3.5, BodyWeightKg: 55.5, Sets: 3, RepsPerSet: 12, SecondsPerRep: 2, RestSeconds: 45},
		{MET: 6.0, BodyWeightKg: 102, Sets: 5, RepsPerSet: 5, SecondsPerRep: 4, RestSeconds: 180, LiftWeightKg: ptr(140)},
		{MET: 9.5, BodyWeightKg: 68, Sets: 4, RepsPerSet: 15, SecondsPerRep: 2, RestSeconds: 30, LiftWeightKg: ptr(24)},
		{MET: 8.0, BodyWeightKg: 91.3, Sets: 2, RepsPerSet: 12, SecondsPerRep: 3, RestSeconds: 0},
	}
	for _, p := range cases {
		got, err := Estimate(p)
		require.NoError(t, err)

		// Each field is rounded independently, so allow rounding slack.
		assert.InDelta(t, got.ActiveCalories+got.RestCalories, got.TotalCalories, 0.11)
		assert.InDelta(t, got.ActiveMinutes+got.RestMinutes, got.TotalMinutes, 0.11)
		assert.GreaterOrEqual(t, got.TotalCalories, 0.0)
	}
}

func TestEstimateRejectsInvalidInput(t *testing.T) {
	valid := Performance{
		MET:           6.0,
		BodyWeightKg:  80,
		Sets:          3,
		RepsPerSet:    10,
		SecondsPerRep: 3,
		RestSeconds:   60,
	}

	cases := []struct {
		name    string
		mutate  func(*Performance)
		wantErr error
	}{
		{"zero body weight", func(p *Performance) { p.BodyWeightKg = 0 }, ErrInvalidBodyWeight},
		{"negative body weight", func(p *Performance) { p.BodyWeightKg = -70 }, ErrInvalidBodyWeight},
		{"zero MET", func(p *Performance) { p.MET = 0 }, ErrInvalidMET},
		{"zero sets", func(p *Performance) { p.Sets = 0 }, ErrInvalidSets},
		{"zero reps", func(p *Performance) { p.RepsPerSet = 0 }, ErrInvalidReps},
		{"zero tempo", func(p *Performance) { p.SecondsPerRep = 0 }, ErrInvalidTempo},
		{"negative rest", func(p *Performance) { p.RestSeconds = -1 }, ErrInvalidRest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			_, err := Estimate(p)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, round1(1.24))
	assert.Equal(t, 1.3, round1(1.25))
	assert.Equal(t, -0.0, round1(-0.04))
	assert.True(t, math.Abs(round1(186.94)-186.9) < 1e-9)
}
