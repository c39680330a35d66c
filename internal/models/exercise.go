package models

import (
	"strings"

	"github.com/google/uuid"
)

// ExerciseRecord is one completed exercise entry. Records are immutable once created.
type ExerciseRecord struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Weight         float64 `json:"weight"` // kg
	Sets           int     `json:"sets"`
	Reps           int     `json:"reps"`
	RPE            int     `json:"rpe"`
	Date           string  `json:"date"` // YYYY-MM-DD format
	WorkoutName    string  `json:"workoutName,omitempty"`
	Duration       *int    `json:"duration,omitempty"`   // minutes
	CardioTime     *int    `json:"cardioTime,omitempty"` // minutes
	CaloriesBurned *int    `json:"caloriesBurned,omitempty"`
}

// NewID returns a fresh opaque identifier for records and planned exercises.
func NewID() string {
	return uuid.New().String()
}

// Volume is weight x sets x reps.
func (r ExerciseRecord) Volume() float64 {
	return r.Weight * float64(r.Sets) * float64(r.Reps)
}

// DurationMin returns the session duration, or 0 when unset.
func (r ExerciseRecord) DurationMin() int {
	return deref(r.Duration)
}

// CardioMin returns the cardio time, or 0 when unset.
func (r ExerciseRecord) CardioMin() int {
	return deref(r.CardioTime)
}

// Calories returns the calories burned, or 0 when unset.
func (r ExerciseRecord) Calories() int {
	return deref(r.CaloriesBurned)
}

// SameExercise reports whether name refers to this record's exercise, ignoring case and padding.
func (r ExerciseRecord) SameExercise(name string) bool {
	return strings.EqualFold(strings.TrimSpace(r.Name), strings.TrimSpace(name))
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
