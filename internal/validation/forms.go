package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/utils"
)

// ExerciseForm is the raw text of the add-exercise form.
type ExerciseForm struct {
	Name        string
	Weight      string
	Sets        string
	Reps        string
	RPE         string
	WorkoutName string
	Duration    string
	CardioTime  string
	Calories    string
}

// ParseExerciseForm builds a new record dated now from form. It reports false,
// without an error, when a required field is missing or out of range so the
// caller can leave the form as the user typed it.
func ParseExerciseForm(form ExerciseForm, now time.Time) (models.ExerciseRecord, bool) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return models.ExerciseRecord{}, false
	}
	weight, ok := parseFloat(form.Weight)
	if !ok || !ValidWeight(weight) {
		return models.ExerciseRecord{}, false
	}
	sets, ok := parseInt(form.Sets)
	if !ok || sets <= 0 {
		return models.ExerciseRecord{}, false
	}
	reps, ok := parseInt(form.Reps)
	if !ok || reps <= 0 {
		return models.ExerciseRecord{}, false
	}
	rpe, ok := parseInt(form.RPE)
	if !ok || !ValidRPE(rpe) {
		return models.ExerciseRecord{}, false
	}

	return models.ExerciseRecord{
		ID:             models.NewID(),
		Name:           name,
		Weight:         weight,
		Sets:           sets,
		Reps:           reps,
		RPE:            rpe,
		Date:           utils.DateString(now),
		WorkoutName:    strings.TrimSpace(form.WorkoutName),
		Duration:       models.IntPtr(optionalInt(form.Duration, constants.DefaultDurationMin)),
		CardioTime:     models.IntPtr(optionalInt(form.CardioTime, constants.DefaultCardioTimeMin)),
		CaloriesBurned: models.IntPtr(optionalInt(form.Calories, constants.DefaultCalories)),
	}, true
}

// PlannedExerciseForm is the raw text of the planned-exercise form.
type PlannedExerciseForm struct {
	Name   string
	Weight string
	Sets   string
	Reps   string
	RPE    string
}

// ParsePlannedExerciseForm applies form on top of base. Empty fields keep the
// base value; a non-empty invalid field rejects the whole form.
func ParsePlannedExerciseForm(form PlannedExerciseForm, base models.PlannedExercise) (models.PlannedExercise, bool) {
	out := base
	if name := strings.TrimSpace(form.Name); name != "" {
		out.Name = name
	}
	if strings.TrimSpace(form.Weight) != "" {
		w, ok := parseFloat(form.Weight)
		if !ok || !ValidWeight(w) {
			return base, false
		}
		out.Weight = w
	}
	for _, f := range []struct {
		raw string
		dst *int
		min int
		max int
	}{
		{form.Sets, &out.Sets, 1, 0},
		{form.Reps, &out.Reps, 1, 0},
		{form.RPE, &out.RPE, constants.MinRPE, constants.MaxRPE},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		v, ok := parseInt(f.raw)
		if !ok || v < f.min || (f.max > 0 && v > f.max) {
			return base, false
		}
		*f.dst = v
	}
	if out.Name == "" {
		return base, false
	}
	return out, true
}

// SlotForm is the raw text of the plan-day form.
type SlotForm struct {
	Day               string
	MuscleGroup       string
	EstimatedDuration string
}

// ParseSlotForm builds an empty slot for the chosen day.
func ParseSlotForm(form SlotForm) (models.WorkoutDaySlot, bool) {
	day, ok := models.ParseWeekday(form.Day)
	if !ok {
		return models.WorkoutDaySlot{}, false
	}
	group := strings.TrimSpace(form.MuscleGroup)
	if group == "" {
		return models.WorkoutDaySlot{}, false
	}
	duration := constants.DefaultEstimatedDuration
	if strings.TrimSpace(form.EstimatedDuration) != "" {
		d, ok := parseInt(form.EstimatedDuration)
		if !ok || d <= 0 {
			return models.WorkoutDaySlot{}, false
		}
		duration = d
	}
	return models.WorkoutDaySlot{
		Day:               day,
		MuscleGroup:       group,
		EstimatedDuration: duration,
		Exercises:         []models.PlannedExercise{},
	}, true
}

// ValidRPE reports whether rpe is on the 1-10 scale.
func ValidRPE(rpe int) bool {
	return rpe >= constants.MinRPE && rpe <= constants.MaxRPE
}

// ValidWeight reports whether w is a finite, non-negative load.
func ValidWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 0)
}

// parseFloat accepts either "." or "," as the decimal separator. NaN and
// infinities are rejected.
func parseFloat(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// optionalInt falls back to def for empty, zero, negative or unparsable input.
func optionalInt(s string, def int) int {
	v, ok := parseInt(s)
	if !ok || v <= 0 {
		return def
	}
	return v
}
