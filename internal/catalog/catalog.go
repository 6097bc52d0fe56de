package catalog

// Category groups exercises by the body region they train.
type Category string

const (
	CategoryChest     Category = "chest"
	CategoryBack      Category = "back"
	CategoryShoulders Category = "shoulders"
	CategoryArms      Category = "arms"
	CategoryLegs      Category = "legs"
	CategoryCore      Category = "core"
	CategoryFullBody  Category = "full_body"
	CategoryCardio    Category = "cardio"
)

// CategoryLabels maps categories to display names.
var CategoryLabels = map[Category]string{
	CategoryChest:     "Chest",
	CategoryBack:      "Back",
	CategoryShoulders: "Shoulders",
	CategoryArms:      "Arms",
	CategoryLegs:      "Legs",
	CategoryCore:      "Core",
	CategoryFullBody:  "Full Body",
	CategoryCardio:    "Cardio",
}

// MuscleGroup identifies one of the sixteen tracked muscle groups.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleFrontDelts MuscleGroup = "front_delts"
	MuscleSideDelts  MuscleGroup = "side_delts"
	MuscleRearDelts  MuscleGroup = "rear_delts"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleAbs        MuscleGroup = "abs"
	MuscleObliques   MuscleGroup = "obliques"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleTraps      MuscleGroup = "traps"
	MuscleLats       MuscleGroup = "lats"
	MuscleLowerBack  MuscleGroup = "lower_back"
)

// MuscleGroupLabels maps muscle group ids to display names.
var MuscleGroupLabels = map[MuscleGroup]string{
	MuscleChest:      "Chest",
	MuscleFrontDelts: "Front Delts",
	MuscleSideDelts:  "Side Delts",
	MuscleRearDelts:  "Rear Delts",
	MuscleBiceps:     "Biceps",
	MuscleTriceps:    "Triceps",
	MuscleForearms:   "Forearms",
	MuscleAbs:        "Abs",
	MuscleObliques:   "Obliques",
	MuscleQuads:      "Quads",
	MuscleHamstrings: "Hamstrings",
	MuscleGlutes:     "Glutes",
	MuscleCalves:     "Calves",
	MuscleTraps:      "Traps",
	MuscleLats:       "Lats",
	MuscleLowerBack:  "Lower Back",
}

// MuscleLabel returns the display name for a muscle group id, falling back
// to the raw id for unknown values.
func MuscleLabel(id MuscleGroup) string {
	if label, ok := MuscleGroupLabels[id]; ok {
		return label
	}
	return string(id)
}

// Entry describes one exercise's metabolic and muscular properties.
// Entries are static reference data, read-only for the process lifetime.
//
// MET is the metabolic equivalent of task used by the calorie estimator;
// SecondsPerRep is the assumed concentric+eccentric duration of one rep.
type Entry struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Category          Category      `json:"category"`
	MET               float64       `json:"met"`
	PrimaryMuscles    []MuscleGroup `json:"primaryMuscles"`
	SecondaryMuscles  []MuscleGroup `json:"secondaryMuscles"`
	Description       string        `json:"description"`
	DefaultRepsPerSet int           `json:"defaultRepsPerSet"`
	SecondsPerRep     float64       `json:"secondsPerRep"`
}

// Catalog is the in-memory exercise reference catalog. Construct one with
// New at process start and pass it to the components that need it; it is
// immutable afterwards and safe for concurrent use.
type Catalog struct {
	entries []Entry
	byName  map[string]int // normalized display name -> index into entries
	def     Entry
}

// New builds a catalog from the built-in exercise database.
func New() *Catalog {
	return NewWithEntries(builtinExercises)
}

// NewWithEntries builds a catalog from the given entries. Exposed so tests
// can construct small fixed catalogs.
func NewWithEntries(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
		def:     defaultExercise,
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		key := normalize(e.Name)
		// First entry wins on duplicate names, matching the tie-break
		// order of the fallback match tiers.
		if _, exists := c.byName[key]; !exists {
			c.byName[key] = i
		}
	}
	return c
}

// Entries returns all catalog entries in their fixed order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Default returns the fallback entry used when a name cannot be matched.
func (c *Catalog) Default() Entry {
	return c.def
}

// ByCategory returns the entries belonging to the given category,
// preserving catalog order.
func (c *Catalog) ByCategory(cat Category) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// defaultExercise is the entry returned when no catalog match exists.
// MET 5.0 is a mid-range resistance-training intensity; the rep and tempo
// defaults are generic so AI-generated exercise names outside the catalog
// still produce a usable estimate.
var defaultExercise = Entry{
	ID:                "generic_resistance",
	Name:              "Resistance Exercise",
	Category:          CategoryFullBody,
	MET:               5.0,
	PrimaryMuscles:    nil,
	SecondaryMuscles:  nil,
	Description:       "Generic resistance exercise used when a name has no catalog match.",
	DefaultRepsPerSet: 10,
	SecondsPerRep:     3,
}
