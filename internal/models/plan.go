package models

import "github.com/julianstephens/liftlog/internal/constants"

// PlannedExercise is a prescribed exercise inside a weekday slot.
type PlannedExercise struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	RPE    int     `json:"rpe"`
}

// NewPlannedExercise returns a planned exercise with a fresh id and the planning defaults.
func NewPlannedExercise() PlannedExercise {
	return PlannedExercise{
		ID:   NewID(),
		Sets: constants.DefaultPlannedSets,
		Reps: constants.DefaultPlannedReps,
		RPE:  constants.DefaultPlannedRPE,
	}
}

// WorkoutDaySlot is the planned workout for one weekday.
type WorkoutDaySlot struct {
	Day               string            `json:"day"`
	MuscleGroup       string            `json:"muscleGroup"`
	EstimatedDuration int               `json:"estimatedDuration"` // minutes
	Exercises         []PlannedExercise `json:"exercises"`
}

// WeeklyPlan is the ordered set of weekday slots, at most one per day.
type WeeklyPlan []WorkoutDaySlot

// Slot returns the slot for day, if planned.
func (p WeeklyPlan) Slot(day string) (WorkoutDaySlot, bool) {
	for _, s := range p {
		if s.Day == day {
			return s, true
		}
	}
	return WorkoutDaySlot{}, false
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (p WeeklyPlan) Clone() WeeklyPlan {
	if p == nil {
		return WeeklyPlan{}
	}
	out := make(WeeklyPlan, len(p))
	for i, s := range p {
		out[i] = s.Clone()
	}
	return out
}

// Clone returns a deep copy of the slot.
func (s WorkoutDaySlot) Clone() WorkoutDaySlot {
	c := s
	c.Exercises = append([]PlannedExercise{}, s.Exercises...)
	return c
}
