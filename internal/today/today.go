// Package today resolves the current weekday against the plan and decides
// which exercises to show for today.
package today

import (
	"math"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/utils"
)

// ResolveDay returns the weekday name for now, in now's location.
func ResolveDay(now time.Time) string {
	return constants.WeekdayNames[now.Weekday()]
}

// PlannedSlot returns today's slot from plan. No slot means a free training day.
func PlannedSlot(plan models.WeeklyPlan, now time.Time) (models.WorkoutDaySlot, bool) {
	return plan.Slot(ResolveDay(now))
}

// Completed returns the records dated today.
func Completed(records []models.ExerciseRecord, now time.Time) []models.ExerciseRecord {
	date := utils.DateString(now)
	var out []models.ExerciseRecord
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// DisplayExercises returns today's completed records when there are any.
// Otherwise it synthesizes placeholder records from today's planned slot,
// or returns nothing on a free training day.
func DisplayExercises(plan models.WeeklyPlan, records []models.ExerciseRecord, now time.Time) []models.ExerciseRecord {
	if done := Completed(records, now); len(done) > 0 {
		return done
	}
	slot, ok := PlannedSlot(plan, now)
	if !ok {
		return []models.ExerciseRecord{}
	}
	return Placeholders(slot, now)
}

// Placeholders builds one unsaved record per planned exercise in slot.
func Placeholders(slot models.WorkoutDaySlot, now time.Time) []models.ExerciseRecord {
	date := utils.DateString(now)
	calories := int(math.Round(float64(slot.EstimatedDuration) * constants.PlaceholderCaloriesPerMin))

	out := make([]models.ExerciseRecord, 0, len(slot.Exercises))
	for _, ex := range slot.Exercises {
		out = append(out, models.ExerciseRecord{
			ID:             ex.ID,
			Name:           ex.Name,
			Weight:         ex.Weight,
			Sets:           ex.Sets,
			Reps:           ex.Reps,
			RPE:            ex.RPE,
			Date:           date,
			WorkoutName:    slot.MuscleGroup,
			Duration:       models.IntPtr(slot.EstimatedDuration),
			CardioTime:     models.IntPtr(constants.PlaceholderCardioTimeMin),
			CaloriesBurned: models.IntPtr(calories),
		})
	}
	return out
}
