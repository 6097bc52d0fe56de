package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactCaseInsensitive(t *testing.T) {
	c := New()

	exact, ok := c.Lookup("Bench Press")
	require.True(t, ok)

	lower := c.Resolve("bench press")
	upper := c.Resolve("BENCH PRESS")

	assert.Equal(t, exact.ID, lower.ID)
	assert.Equal(t, exact.ID, upper.ID)
}

func TestResolveNormalizedAndPlural(t *testing.T) {
	c := New()

	tests := map[string]string{
		"Squats":               "squat",
		"barbell squat":        "squat",
		"Push Ups":             "push_up",
		"push-up":              "push_up",
		"Lunges":               "lunge",
		"Lateral Raises":       "lateral_raise",
		"Dumbbell Bicep Curls": "bicep_curl",
	}
	for input, wantID := range tests {
		got := c.Resolve(input)
		assert.Equal(t, wantID, got.ID, "input %q", input)
	}
}

func TestResolveNonsenseFallsBackToDefault(t *testing.T) {
	c := New()

	got := c.Resolve("Zzqx Exercise 123")
	assert.Equal(t, c.Default().ID, got.ID)
	assert.Equal(t, 5.0, got.MET)
	assert.Equal(t, 10, got.DefaultRepsPerSet)

	_, ok := c.Lookup("Zzqx Exercise 123")
	assert.False(t, ok)
}

func TestResolveEmptyAndWhitespace(t *testing.T) {
	c := New()

	assert.Equal(t, c.Default().ID, c.Resolve("").ID)
	assert.Equal(t, c.Default().ID, c.Resolve("   ").ID)
	assert.Equal(t, c.Default().ID, c.Resolve("!!!").ID)
}

func TestResolveDeterministic(t *testing.T) {
	c := New()

	first := c.Resolve("press")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first.ID, c.Resolve("press").ID)
	}

	// A second catalog built from the same data resolves identically.
	other := New()
	assert.Equal(t, first.ID, other.Resolve("press").ID)
}

func TestResolveDuplicateNamesFirstEntryWins(t *testing.T) {
	c := NewWithEntries([]Entry{
		{ID: "row_a", Name: "Cable Row", Category: CategoryBack, MET: 4.0, DefaultRepsPerSet: 10, SecondsPerRep: 3},
		{ID: "row_b", Name: "cable row", Category: CategoryBack, MET: 6.0, DefaultRepsPerSet: 8, SecondsPerRep: 2},
	})

	// Exact and fallback tiers agree: catalog order breaks the tie.
	exact, ok := c.Lookup("Cable Row")
	require.True(t, ok)
	assert.Equal(t, "row_a", exact.ID)
	assert.Equal(t, "row_a", c.Resolve("cable rows").ID)
}

func TestCatalogInvariants(t *testing.T) {
	c := New()
	require.NotEmpty(t, c.Entries())

	seen := make(map[string]bool)
	for _, e := range c.Entries() {
		assert.Positive(t, e.MET, "MET for %s", e.ID)
		assert.Positive(t, e.SecondsPerRep, "seconds per rep for %s", e.ID)
		assert.Positive(t, e.DefaultRepsPerSet, "default reps for %s", e.ID)
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		_, ok := CategoryLabels[e.Category]
		assert.True(t, ok, "unknown category %q on %s", e.Category, e.ID)
	}
}

func TestByCategory(t *testing.T) {
	c := New()
	legs := c.ByCategory(CategoryLegs)
	require.NotEmpty(t, legs)
	for _, e := range legs {
		assert.Equal(t, CategoryLegs, e.Category)
	}
}
