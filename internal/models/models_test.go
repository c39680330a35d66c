package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExerciseRecordJSONFieldNames(t *testing.T) {
	rec := ExerciseRecord{
		ID:             "abc",
		Name:           "Bench Press",
		Weight:         60,
		Sets:           3,
		Reps:           10,
		RPE:            8,
		Date:           "2024-05-10",
		WorkoutName:    "Chest",
		Duration:       IntPtr(45),
		CardioTime:     IntPtr(10),
		CaloriesBurned: IntPtr(300),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{`"workoutName"`, `"cardioTime"`, `"caloriesBurned"`, `"rpe"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected %s in %s", field, data)
		}
	}
}

func TestExerciseRecordOptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(ExerciseRecord{ID: "x", Name: "Squat", Sets: 1, Reps: 1, RPE: 5, Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{"duration", "cardioTime", "caloriesBurned", "workoutName"} {
		if strings.Contains(string(data), field) {
			t.Errorf("did not expect %s in %s", field, data)
		}
	}
}

func TestExerciseRecordAccessors(t *testing.T) {
	rec := ExerciseRecord{Weight: 50, Sets: 3, Reps: 10}
	if rec.Volume() != 1500 {
		t.Errorf("Volume() = %v, want 1500", rec.Volume())
	}
	if rec.DurationMin() != 0 || rec.CardioMin() != 0 || rec.Calories() != 0 {
		t.Error("expected zero for unset optional fields")
	}
	rec.Duration = IntPtr(30)
	if rec.DurationMin() != 30 {
		t.Errorf("DurationMin() = %d, want 30", rec.DurationMin())
	}
}

func TestSameExercise(t *testing.T) {
	rec := ExerciseRecord{Name: "Bench Press"}
	if !rec.SameExercise(" bench press ") {
		t.Error("expected case-insensitive match")
	}
	if rec.SameExercise("Incline Bench Press") {
		t.Error("did not expect match for different exercise")
	}
}

func TestNewPlannedExerciseDefaults(t *testing.T) {
	p := NewPlannedExercise()
	if p.ID == "" {
		t.Error("expected fresh id")
	}
	if p.Name != "" || p.Weight != 0 || p.Sets != 1 || p.Reps != 1 || p.RPE != 5 {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestWeeklyPlanCloneDoesNotAlias(t *testing.T) {
	plan := WeeklyPlan{{Day: "Monday", Exercises: []PlannedExercise{{ID: "1", Name: "Row"}}}}
	clone := plan.Clone()
	clone[0].Exercises[0].Name = "Deadlift"
	if plan[0].Exercises[0].Name != "Row" {
		t.Error("Clone() aliased exercise slice")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Monday", "Monday", true},
		{"monday", "Monday", true},
		{"wed", "Wednesday", true},
		{" SAT ", "Saturday", true},
		{"mo", "", false},
		{"", "", false},
		{"funday", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseWeekday(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
