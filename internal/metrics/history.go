package metrics

import (
	"sort"
	"strings"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

// Workout is the set of records logged together on one date under one workout name.
type Workout struct {
	Date     string
	Name     string
	Records  []models.ExerciseRecord
	Duration int // minutes, from the first record
	Calories int // from the first record
}

// Volume sums the volume of every record in the workout.
func (w Workout) Volume() float64 {
	total := 0.0
	for _, r := range w.Records {
		total += r.Volume()
	}
	return total
}

// History groups records by date and workout name, newest date first, and
// keeps at most limit workouts. A non-positive limit keeps every workout.
func History(records []models.ExerciseRecord, limit int) []Workout {
	type key struct{ date, name string }
	index := make(map[key]int)
	var workouts []Workout

	for _, r := range records {
		name := strings.TrimSpace(r.WorkoutName)
		if name == "" {
			name = constants.DefaultWorkoutName
		}
		k := key{r.Date, name}
		i, ok := index[k]
		if !ok {
			i = len(workouts)
			index[k] = i
			workouts = append(workouts, Workout{
				Date:     r.Date,
				Name:     name,
				Duration: r.DurationMin(),
				Calories: r.Calories(),
			})
		}
		workouts[i].Records = append(workouts[i].Records, r)
	}

	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].Date > workouts[j].Date
	})
	if limit > 0 && len(workouts) > limit {
		workouts = workouts[:limit]
	}
	return workouts
}
