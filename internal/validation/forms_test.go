package validation

import (
	"math"
	"testing"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

var now = time.Date(2024, 5, 13, 8, 0, 0, 0, time.UTC)

func validForm() ExerciseForm {
	return ExerciseForm{Name: "Bench Press", Weight: "62,5", Sets: "4", Reps: "8", RPE: "8"}
}

func TestParseExerciseFormDefaults(t *testing.T) {
	rec, ok := ParseExerciseForm(validForm(), now)
	if !ok {
		t.Fatal("expected valid form")
	}
	if rec.ID == "" || rec.Date != "2024-05-13" {
		t.Errorf("expected fresh id and today's date, got %q %q", rec.ID, rec.Date)
	}
	if rec.Weight != 62.5 {
		t.Errorf("Weight = %v, want 62.5", rec.Weight)
	}
	if rec.DurationMin() != constants.DefaultDurationMin ||
		rec.CardioMin() != constants.DefaultCardioTimeMin ||
		rec.Calories() != constants.DefaultCalories {
		t.Errorf("optional defaults not applied: %d %d %d", rec.DurationMin(), rec.CardioMin(), rec.Calories())
	}
}

func TestParseExerciseFormOptionalOverrides(t *testing.T) {
	form := validForm()
	form.Duration, form.CardioTime, form.Calories, form.WorkoutName = "70", "0", "520", " Chest "
	rec, ok := ParseExerciseForm(form, now)
	if !ok {
		t.Fatal("expected valid form")
	}
	if rec.DurationMin() != 70 || rec.CardioMin() != constants.DefaultCardioTimeMin || rec.Calories() != 520 {
		t.Errorf("unexpected optional values %d %d %d", rec.DurationMin(), rec.CardioMin(), rec.Calories())
	}
	if rec.WorkoutName != "Chest" {
		t.Errorf("WorkoutName = %q", rec.WorkoutName)
	}
}

func TestParseExerciseFormRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExerciseForm)
	}{
		{"missing name", func(f *ExerciseForm) { f.Name = "  " }},
		{"missing weight", func(f *ExerciseForm) { f.Weight = "" }},
		{"negative weight", func(f *ExerciseForm) { f.Weight = "-5" }},
		{"nan weight", func(f *ExerciseForm) { f.Weight = "NaN" }},
		{"infinite weight", func(f *ExerciseForm) { f.Weight = "Inf" }},
		{"negative infinite weight", func(f *ExerciseForm) { f.Weight = "-inf" }},
		{"text sets", func(f *ExerciseForm) { f.Sets = "four" }},
		{"zero reps", func(f *ExerciseForm) { f.Reps = "0" }},
		{"missing rpe", func(f *ExerciseForm) { f.RPE = "" }},
		{"rpe too high", func(f *ExerciseForm) { f.RPE = "11" }},
		{"rpe too low", func(f *ExerciseForm) { f.RPE = "0" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			if _, ok := ParseExerciseForm(form, now); ok {
				t.Error("expected form to be rejected")
			}
		})
	}
}

func TestParsePlannedExerciseForm(t *testing.T) {
	base := models.NewPlannedExercise()

	got, ok := ParsePlannedExerciseForm(PlannedExerciseForm{Name: "Row", Weight: "40", Sets: "4"}, base)
	if !ok {
		t.Fatal("expected valid form")
	}
	if got.ID != base.ID || got.Name != "Row" || got.Weight != 40 || got.Sets != 4 || got.Reps != 1 || got.RPE != 5 {
		t.Errorf("unexpected result %+v", got)
	}

	if _, ok := ParsePlannedExerciseForm(PlannedExerciseForm{Weight: "40"}, base); ok {
		t.Error("expected rejection without a name")
	}
	if _, ok := ParsePlannedExerciseForm(PlannedExerciseForm{Name: "Row", Weight: "nan"}, base); ok {
		t.Error("expected NaN weight to be rejected")
	}
	if _, ok := ParsePlannedExerciseForm(PlannedExerciseForm{Name: "Row", RPE: "12"}, base); ok {
		t.Error("expected rejection for rpe 12")
	}
	if _, ok := ParsePlannedExerciseForm(PlannedExerciseForm{Name: "Row", Reps: "0"}, base); ok {
		t.Error("expected rejection for zero reps")
	}
}

func TestParseSlotForm(t *testing.T) {
	slot, ok := ParseSlotForm(SlotForm{Day: "mon", MuscleGroup: "Chest"})
	if !ok {
		t.Fatal("expected valid slot")
	}
	if slot.Day != constants.Monday || slot.EstimatedDuration != constants.DefaultEstimatedDuration || slot.Exercises == nil {
		t.Errorf("unexpected slot %+v", slot)
	}

	for _, form := range []SlotForm{
		{Day: "someday", MuscleGroup: "Chest"},
		{Day: "Monday"},
		{Day: "Monday", MuscleGroup: "Chest", EstimatedDuration: "-1"},
	} {
		if _, ok := ParseSlotForm(form); ok {
			t.Errorf("expected rejection for %+v", form)
		}
	}
}

func TestValidWeight(t *testing.T) {
	tests := []struct {
		w    float64
		want bool
	}{
		{0, true},
		{62.5, true},
		{-0.5, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		if got := ValidWeight(tt.w); got != tt.want {
			t.Errorf("ValidWeight(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
}
