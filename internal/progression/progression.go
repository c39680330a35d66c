// Package progression compares the two most recent performances of an exercise.
package progression

import (
	"sort"

	"github.com/julianstephens/liftlog/internal/models"
)

// Trend classifies a change between two performances.
type Trend int

const (
	Unchanged Trend = iota
	Improved
	Regressed
)

func (t Trend) String() string {
	switch t {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "unchanged"
	}
}

// Delta is latest minus previous for each load parameter.
type Delta struct {
	Name     string
	Previous models.ExerciseRecord
	Latest   models.ExerciseRecord
	Weight   float64
	Sets     int
	Reps     int
	RPE      int
}

// WeightTrend: heavier is better.
func (d Delta) WeightTrend() Trend { return trendOf(d.Weight, false) }

// SetsTrend: more sets is better.
func (d Delta) SetsTrend() Trend { return trendOf(float64(d.Sets), false) }

// RepsTrend: more reps is better.
func (d Delta) RepsTrend() Trend { return trendOf(float64(d.Reps), false) }

// RPETrend: the same work at lower perceived effort is better.
func (d Delta) RPETrend() Trend { return trendOf(float64(d.RPE), true) }

// VolumeDelta is the change in weight x sets x reps.
func (d Delta) VolumeDelta() float64 {
	return d.Latest.Volume() - d.Previous.Volume()
}

func trendOf(v float64, lowerIsBetter bool) Trend {
	switch {
	case v == 0:
		return Unchanged
	case (v > 0) != lowerIsBetter:
		return Improved
	default:
		return Regressed
	}
}

// Performances returns the records for name, matched case-insensitively,
// ordered by date ascending. Records sharing a date keep their store order.
func Performances(records []models.ExerciseRecord, name string) []models.ExerciseRecord {
	var matched []models.ExerciseRecord
	for _, r := range records {
		if r.SameExercise(name) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date < matched[j].Date
	})
	return matched
}

// CompareLatestTwo returns the change between the two most recent records of
// name. It reports false when fewer than two exist.
func CompareLatestTwo(records []models.ExerciseRecord, name string) (Delta, bool) {
	perf := Performances(records, name)
	if len(perf) < 2 {
		return Delta{}, false
	}
	prev, latest := perf[len(perf)-2], perf[len(perf)-1]
	return Delta{
		Name:     latest.Name,
		Previous: prev,
		Latest:   latest,
		Weight:   latest.Weight - prev.Weight,
		Sets:     latest.Sets - prev.Sets,
		Reps:     latest.Reps - prev.Reps,
		RPE:      latest.RPE - prev.RPE,
	}, true
}

// ExerciseNames returns the distinct exercise names in records, first spelling wins,
// in order of first appearance.
func ExerciseNames(records []models.ExerciseRecord) []string {
	var names []string
	for _, r := range records {
		dup := false
		for _, n := range names {
			if r.SameExercise(n) {
				dup = true
				break
			}
		}
		if !dup {
			names = append(names, r.Name)
		}
	}
	return names
}
