package catalog

// builtinExercises is the curated exercise database. MET values follow
// the Compendium of Physical Activities' resistance-training and
// conditioning entries, narrowed per movement; tempo and rep defaults are
// conventional gym programming values.
var builtinExercises = []Entry{
	// --- Chest ---
	{
		ID: "bench_press", Name: "Bench Press", Category: CategoryChest, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleChest},
		SecondaryMuscles:  []MuscleGroup{MuscleTriceps, MuscleFrontDelts},
		Description:       "Barbell press from a flat bench.",
		DefaultRepsPerSet: 8, SecondsPerRep: 3,
	},
	{
		ID: "incline_dumbbell_press", Name: "Incline Dumbbell Press", Category: CategoryChest, MET: 5.5,
		PrimaryMuscles:    []MuscleGroup{MuscleChest, MuscleFrontDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTriceps},
		Description:       "Dumbbell press on an incline bench, emphasizing the upper chest.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "push_up", Name: "Push-Up", Category: CategoryChest, MET: 3.8,
		PrimaryMuscles:    []MuscleGroup{MuscleChest},
		SecondaryMuscles:  []MuscleGroup{MuscleTriceps, MuscleFrontDelts, MuscleAbs},
		Description:       "Bodyweight horizontal press.",
		DefaultRepsPerSet: 15, SecondsPerRep: 2,
	},
	{
		ID: "chest_fly", Name: "Chest Fly", Category: CategoryChest, MET: 4.5,
		PrimaryMuscles:    []MuscleGroup{MuscleChest},
		SecondaryMuscles:  []MuscleGroup{MuscleFrontDelts},
		Description:       "Dumbbell or cable fly isolating the pectorals.",
		DefaultRepsPerSet: 12, SecondsPerRep: 3,
	},
	{
		ID: "chest_dip", Name: "Chest Dip", Category: CategoryChest, MET: 5.5,
		PrimaryMuscles:    []MuscleGroup{MuscleChest, MuscleTriceps},
		SecondaryMuscles:  []MuscleGroup{MuscleFrontDelts},
		Description:       "Parallel-bar dip with forward lean.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},

	// --- Back ---
	{
		ID: "deadlift", Name: "Deadlift", Category: CategoryBack, MET: 6.5,
		PrimaryMuscles:    []MuscleGroup{MuscleLowerBack, MuscleGlutes, MuscleHamstrings},
		SecondaryMuscles:  []MuscleGroup{MuscleTraps, MuscleForearms, MuscleQuads},
		Description:       "Barbell hip-hinge pull from the floor.",
		DefaultRepsPerSet: 5, SecondsPerRep: 4,
	},
	{
		ID: "pull_up", Name: "Pull-Up", Category: CategoryBack, MET: 5.8,
		PrimaryMuscles:    []MuscleGroup{MuscleLats},
		SecondaryMuscles:  []MuscleGroup{MuscleBiceps, MuscleRearDelts, MuscleForearms},
		Description:       "Bodyweight vertical pull, overhand grip.",
		DefaultRepsPerSet: 8, SecondsPerRep: 3,
	},
	{
		ID: "bent_over_row", Name: "Bent-Over Row", Category: CategoryBack, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleLats, MuscleTraps},
		SecondaryMuscles:  []MuscleGroup{MuscleBiceps, MuscleRearDelts, MuscleLowerBack},
		Description:       "Barbell row from a hinged position.",
		DefaultRepsPerSet: 8, SecondsPerRep: 3,
	},
	{
		ID: "lat_pulldown", Name: "Lat Pulldown", Category: CategoryBack, MET: 4.5,
		PrimaryMuscles:    []MuscleGroup{MuscleLats},
		SecondaryMuscles:  []MuscleGroup{MuscleBiceps, MuscleRearDelts},
		Description:       "Cable pulldown to the upper chest.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "seated_cable_row", Name: "Seated Cable Row", Category: CategoryBack, MET: 4.8,
		PrimaryMuscles:    []MuscleGroup{MuscleLats, MuscleTraps},
		SecondaryMuscles:  []MuscleGroup{MuscleBiceps, MuscleRearDelts},
		Description:       "Horizontal cable row from a seated position.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "back_extension", Name: "Back Extension", Category: CategoryBack, MET: 3.8,
		PrimaryMuscles:    []MuscleGroup{MuscleLowerBack},
		SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleHamstrings},
		Description:       "Hyperextension over a roman chair.",
		DefaultRepsPerSet: 12, SecondsPerRep: 3,
	},

	// --- Shoulders ---
	{
		ID: "overhead_press", Name: "Overhead Press", Category: CategoryShoulders, MET: 5.5,
		PrimaryMuscles:    []MuscleGroup{MuscleFrontDelts, MuscleSideDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTriceps, MuscleTraps},
		Description:       "Standing barbell press overhead.",
		DefaultRepsPerSet: 8, SecondsPerRep: 3,
	},
	{
		ID: "lateral_raise", Name: "Lateral Raise", Category: CategoryShoulders, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleSideDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTraps},
		Description:       "Dumbbell raise to the side, isolating the medial delt.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "face_pull", Name: "Face Pull", Category: CategoryShoulders, MET: 3.8,
		PrimaryMuscles:    []MuscleGroup{MuscleRearDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTraps},
		Description:       "High cable pull towards the face.",
		DefaultRepsPerSet: 15, SecondsPerRep: 2,
	},
	{
		ID: "arnold_press", Name: "Arnold Press", Category: CategoryShoulders, MET: 5.0,
		PrimaryMuscles:    []MuscleGroup{MuscleFrontDelts, MuscleSideDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTriceps},
		Description:       "Rotating dumbbell shoulder press.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "shrug", Name: "Shrug", Category: CategoryShoulders, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleTraps},
		SecondaryMuscles:  []MuscleGroup{MuscleForearms},
		Description:       "Barbell or dumbbell trap shrug.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},

	// --- Arms ---
	{
		ID: "bicep_curl", Name: "Bicep Curl", Category: CategoryArms, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleBiceps},
		SecondaryMuscles:  []MuscleGroup{MuscleForearms},
		Description:       "Standing dumbbell or barbell curl.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "hammer_curl", Name: "Hammer Curl", Category: CategoryArms, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleBiceps, MuscleForearms},
		SecondaryMuscles:  nil,
		Description:       "Neutral-grip dumbbell curl.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "tricep_pushdown", Name: "Tricep Pushdown", Category: CategoryArms, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleTriceps},
		SecondaryMuscles:  nil,
		Description:       "Cable pushdown with rope or bar.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "skull_crusher", Name: "Skull Crusher", Category: CategoryArms, MET: 3.8,
		PrimaryMuscles:    []MuscleGroup{MuscleTriceps},
		SecondaryMuscles:  nil,
		Description:       "Lying tricep extension with EZ bar.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "overhead_tricep_extension", Name: "Overhead Tricep Extension", Category: CategoryArms, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleTriceps},
		SecondaryMuscles:  nil,
		Description:       "Dumbbell extension from behind the head.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},

	// --- Legs ---
	{
		ID: "squat", Name: "Squat", Category: CategoryLegs, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleHamstrings, MuscleLowerBack, MuscleAbs},
		Description:       "Barbell back squat.",
		DefaultRepsPerSet: 8, SecondsPerRep: 4,
	},
	{
		ID: "front_squat", Name: "Front Squat", Category: CategoryLegs, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads},
		SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleAbs},
		Description:       "Barbell squat with front rack position.",
		DefaultRepsPerSet: 8, SecondsPerRep: 4,
	},
	{
		ID: "leg_press", Name: "Leg Press", Category: CategoryLegs, MET: 5.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleHamstrings},
		Description:       "Machine press on a 45-degree sled.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "lunge", Name: "Lunge", Category: CategoryLegs, MET: 5.5,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleHamstrings, MuscleCalves},
		Description:       "Walking or stationary lunge.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "romanian_deadlift", Name: "Romanian Deadlift", Category: CategoryLegs, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleHamstrings, MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleLowerBack, MuscleForearms},
		Description:       "Hip hinge with minimal knee bend.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "leg_extension", Name: "Leg Extension", Category: CategoryLegs, MET: 4.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads},
		SecondaryMuscles:  nil,
		Description:       "Machine knee extension.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "leg_curl", Name: "Leg Curl", Category: CategoryLegs, MET: 4.0,
		PrimaryMuscles:    []MuscleGroup{MuscleHamstrings},
		SecondaryMuscles:  []MuscleGroup{MuscleCalves},
		Description:       "Machine hamstring curl, lying or seated.",
		DefaultRepsPerSet: 12, SecondsPerRep: 2,
	},
	{
		ID: "calf_raise", Name: "Calf Raise", Category: CategoryLegs, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleCalves},
		SecondaryMuscles:  nil,
		Description:       "Standing or seated calf raise.",
		DefaultRepsPerSet: 15, SecondsPerRep: 2,
	},
	{
		ID: "hip_thrust", Name: "Hip Thrust", Category: CategoryLegs, MET: 5.0,
		PrimaryMuscles:    []MuscleGroup{MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleHamstrings, MuscleQuads},
		Description:       "Barbell hip extension with shoulders on a bench.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", Category: CategoryLegs, MET: 6.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleGlutes},
		SecondaryMuscles:  []MuscleGroup{MuscleHamstrings},
		Description:       "Rear-foot-elevated split squat.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},

	// --- Core ---
	{
		ID: "plank", Name: "Plank", Category: CategoryCore, MET: 3.3,
		PrimaryMuscles:    []MuscleGroup{MuscleAbs},
		SecondaryMuscles:  []MuscleGroup{MuscleObliques, MuscleLowerBack},
		Description:       "Isometric hold; one rep is modeled as a 30 second hold.",
		DefaultRepsPerSet: 1, SecondsPerRep: 30,
	},
	{
		ID: "crunch", Name: "Crunch", Category: CategoryCore, MET: 3.0,
		PrimaryMuscles:    []MuscleGroup{MuscleAbs},
		SecondaryMuscles:  nil,
		Description:       "Floor crunch with partial spinal flexion.",
		DefaultRepsPerSet: 15, SecondsPerRep: 2,
	},
	{
		ID: "russian_twist", Name: "Russian Twist", Category: CategoryCore, MET: 3.5,
		PrimaryMuscles:    []MuscleGroup{MuscleObliques},
		SecondaryMuscles:  []MuscleGroup{MuscleAbs},
		Description:       "Seated rotation, optionally weighted.",
		DefaultRepsPerSet: 20, SecondsPerRep: 1.5,
	},
	{
		ID: "hanging_leg_raise", Name: "Hanging Leg Raise", Category: CategoryCore, MET: 4.0,
		PrimaryMuscles:    []MuscleGroup{MuscleAbs},
		SecondaryMuscles:  []MuscleGroup{MuscleObliques, MuscleForearms},
		Description:       "Leg raise from a dead hang.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},
	{
		ID: "ab_wheel_rollout", Name: "Ab Wheel Rollout", Category: CategoryCore, MET: 4.5,
		PrimaryMuscles:    []MuscleGroup{MuscleAbs},
		SecondaryMuscles:  []MuscleGroup{MuscleObliques, MuscleLats},
		Description:       "Rollout from the knees with an ab wheel.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},

	// --- Full body ---
	{
		ID: "burpee", Name: "Burpee", Category: CategoryFullBody, MET: 8.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleChest},
		SecondaryMuscles:  []MuscleGroup{MuscleAbs, MuscleTriceps, MuscleCalves},
		Description:       "Squat thrust with push-up and jump.",
		DefaultRepsPerSet: 12, SecondsPerRep: 3,
	},
	{
		ID: "kettlebell_swing", Name: "Kettlebell Swing", Category: CategoryFullBody, MET: 9.5,
		PrimaryMuscles:    []MuscleGroup{MuscleGlutes, MuscleHamstrings},
		SecondaryMuscles:  []MuscleGroup{MuscleLowerBack, MuscleAbs, MuscleForearms},
		Description:       "Ballistic hip-hinge swing to shoulder height.",
		DefaultRepsPerSet: 15, SecondsPerRep: 2,
	},
	{
		ID: "clean_and_press", Name: "Clean and Press", Category: CategoryFullBody, MET: 8.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleFrontDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleTraps, MuscleGlutes, MuscleTriceps},
		Description:       "Barbell clean into an overhead press.",
		DefaultRepsPerSet: 6, SecondsPerRep: 4,
	},
	{
		ID: "thruster", Name: "Thruster", Category: CategoryFullBody, MET: 8.0,
		PrimaryMuscles:    []MuscleGroup{MuscleQuads, MuscleFrontDelts},
		SecondaryMuscles:  []MuscleGroup{MuscleGlutes, MuscleTriceps},
		Description:       "Front squat flowing into an overhead press.",
		DefaultRepsPerSet: 10, SecondsPerRep: 3,
	},

	// --- Cardio ---
	{
		ID: "jump_rope", Name: "Jump Rope", Category: CategoryCardio, MET: 11.0,
		PrimaryMuscles:    []MuscleGroup{MuscleCalves},
		SecondaryMuscles:  []MuscleGroup{MuscleQuads, MuscleForearms},
		Description:       "Continuous rope skipping; one rep is one jump.",
		DefaultRepsPerSet: 50, SecondsPerRep: 0.5,
	},
	{
		ID: "rowing_machine", Name: "Rowing Machine", Category: CategoryCardio, MET: 7.0,
		PrimaryMuscles:    []MuscleGroup{MuscleLats, MuscleQuads},
		SecondaryMuscles:  []MuscleGroup{MuscleBiceps, MuscleLowerBack, MuscleHamstrings},
		Description:       "Ergometer rowing; one rep is one stroke.",
		DefaultRepsPerSet: 30, SecondsPerRep: 2,
	},
	{
		ID: "jumping_jacks", Name: "Jumping Jacks", Category: CategoryCardio, MET: 7.7,
		PrimaryMuscles:    []MuscleGroup{MuscleCalves, MuscleQuads},
		SecondaryMuscles:  []MuscleGroup{MuscleSideDelts},
		Description:       "Classic calisthenic jump.",
		DefaultRepsPerSet: 30, SecondsPerRep: 1,
	},
	{
		ID: "mountain_climbers", Name: "Mountain Climbers", Category: CategoryCardio, MET: 8.0,
		PrimaryMuscles:    []MuscleGroup{MuscleAbs, MuscleQuads},
		SecondaryMuscles:  []MuscleGroup{MuscleFrontDelts, MuscleCalves},
		Description:       "Alternating knee drives from a plank.",
		DefaultRepsPerSet: 20, SecondsPerRep: 1,
	},
}
