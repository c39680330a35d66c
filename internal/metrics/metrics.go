// Package metrics rolls exercise records up into summary statistics.
package metrics

import (
	"math"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/utils"
)

// Metrics holds the windowed and all-time aggregates.
//
// ActiveDays, AvgSessionDuration, TotalCardioTime and TotalCalories cover the
// trailing window of seven calendar days ending today. TotalVolume, AvgRPE and
// TotalSets cover every record.
type Metrics struct {
	ActiveDays         int     `json:"activeDays"`
	AvgSessionDuration int     `json:"avgSessionDuration"` // minutes
	TotalCardioTime    int     `json:"totalCardioTime"`    // minutes
	TotalCalories      int     `json:"totalCalories"`
	TotalVolume        float64 `json:"totalVolume"` // kg
	AvgRPE             float64 `json:"avgRpe"`
	TotalSets          int     `json:"totalSets"`
}

// Window returns the first and last ISO dates of the trailing window ending on now's date.
func Window(now time.Time) (from, to string) {
	return utils.ShiftDate(now, -(constants.TrailingWindowDays - 1)), utils.DateString(now)
}

// InWindow reports whether date falls in the trailing window ending on now's date.
// ISO dates compare correctly as strings.
func InWindow(date string, now time.Time) bool {
	from, to := Window(now)
	return date >= from && date <= to
}

// ComputeMetrics aggregates records as of now. Empty input yields all zeros.
func ComputeMetrics(records []models.ExerciseRecord, now time.Time) Metrics {
	var m Metrics
	if len(records) == 0 {
		return m
	}

	days := make(map[string]struct{})
	durationSum := 0
	rpeSum := 0
	for _, r := range records {
		m.TotalVolume += r.Volume()
		m.TotalSets += r.Sets
		rpeSum += r.RPE

		if !InWindow(r.Date, now) {
			continue
		}
		days[r.Date] = struct{}{}
		durationSum += r.DurationMin()
		m.TotalCardioTime += r.CardioMin()
		m.TotalCalories += r.Calories()
	}

	m.ActiveDays = len(days)
	if m.ActiveDays > 0 {
		m.AvgSessionDuration = int(math.Round(float64(durationSum) / float64(m.ActiveDays)))
	}
	m.AvgRPE = math.Round(float64(rpeSum)/float64(len(records))*10) / 10
	return m
}

// TodayCount returns how many records are dated today.
func TodayCount(records []models.ExerciseRecord, now time.Time) int {
	date := utils.DateString(now)
	n := 0
	for _, r := range records {
		if r.Date == date {
			n++
		}
	}
	return n
}
