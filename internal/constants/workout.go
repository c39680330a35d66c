package constants

const (
	// Record construction defaults, applied when the optional field is left empty
	DefaultDurationMin   = 45
	DefaultCardioTimeMin = 10
	DefaultCalories      = 300

	// Placeholder records synthesized from the plan
	PlaceholderCardioTimeMin  = 10
	PlaceholderCaloriesPerMin = 8.5

	// Finalized session records
	SessionCaloriesPerMin = 8.0

	// History
	DefaultWorkoutName  = "Workout"
	DefaultHistoryLimit = 5

	// Planning
	MaxExercisesPerSlot      = 6
	DefaultEstimatedDuration = 60
	DefaultPlannedSets       = 1
	DefaultPlannedReps       = 1
	DefaultPlannedRPE        = 5

	// RPE scale and effort bands
	MinRPE             = 1
	MaxRPE             = 10
	RPEBandLightMax    = 3
	RPEBandModerateMax = 6
	RPEBandHardMax     = 8
)

// MuscleGroups lists the suggested muscle groups offered when planning a day.
var MuscleGroups = []string{
	"Shoulders",
	"Quadriceps",
	"Back",
	"Chest",
	"Biceps",
	"Triceps",
	"Glutes",
	"Calves",
	"Abs",
	"Hamstrings",
}
