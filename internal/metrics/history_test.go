package metrics

import (
	"fmt"
	"testing"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

func TestHistoryGroupsByDateAndName(t *testing.T) {
	records := []models.ExerciseRecord{
		{ID: "1", Name: "Bench", Date: "2024-05-13", WorkoutName: "Chest", Weight: 60, Sets: 3, Reps: 10, Duration: models.IntPtr(50), CaloriesBurned: models.IntPtr(400)},
		{ID: "2", Name: "Fly", Date: "2024-05-13", WorkoutName: "Chest", Weight: 10, Sets: 3, Reps: 12},
		{ID: "3", Name: "Run", Date: "2024-05-13"},
		{ID: "4", Name: "Squat", Date: "2024-05-14", WorkoutName: "Legs"},
		{ID: "5", Name: "Row", Date: "2024-05-10", WorkoutName: "Back"},
	}

	got := History(records, 0)
	if len(got) != 4 {
		t.Fatalf("expected 4 workouts, got %d", len(got))
	}
	if got[0].Date != "2024-05-14" || got[len(got)-1].Date != "2024-05-10" {
		t.Errorf("expected newest first, got %s ... %s", got[0].Date, got[len(got)-1].Date)
	}

	chest := got[1]
	if chest.Name != "Chest" || len(chest.Records) != 2 {
		t.Fatalf("unexpected chest workout %+v", chest)
	}
	if chest.Duration != 50 || chest.Calories != 400 {
		t.Errorf("duration/calories should come from first record: %d %d", chest.Duration, chest.Calories)
	}
	if chest.Volume() != 1800+360 {
		t.Errorf("Volume() = %v", chest.Volume())
	}
	if got[2].Name != constants.DefaultWorkoutName {
		t.Errorf("unnamed workout should default to %q, got %q", constants.DefaultWorkoutName, got[2].Name)
	}
}

func TestHistoryLimit(t *testing.T) {
	var records []models.ExerciseRecord
	for day := 1; day <= 9; day++ {
		records = append(records, models.ExerciseRecord{Date: fmt.Sprintf("2024-05-%02d", day), WorkoutName: "Full"})
	}
	got := History(records, constants.DefaultHistoryLimit)
	if len(got) != 5 {
		t.Fatalf("expected 5 workouts, got %d", len(got))
	}
	if got[0].Date != "2024-05-09" || got[4].Date != "2024-05-05" {
		t.Errorf("unexpected range %s..%s", got[0].Date, got[4].Date)
	}
}

func TestHistoryEmpty(t *testing.T) {
	if got := History(nil, 5); len(got) != 0 {
		t.Errorf("History(nil) = %v", got)
	}
}
