package reports

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/metrics"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

// 2026-03-04 is a Wednesday.
var testNow = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

func setupTestContext(t *testing.T, recs []models.ExerciseRecord, plan models.WeeklyPlan) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store:    store,
		Timezone: "UTC",
		Out:      out,
		Clock:    func() time.Time { return testNow },
	}
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Errorf("failed to close context: %v", err)
		}
	})

	if len(recs) > 0 {
		rs, err := ctx.Records()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := rs.AddMany(recs); err != nil {
			t.Fatal(err)
		}
	}
	if len(plan) > 0 {
		ps, err := ctx.Plan()
		if err != nil {
			t.Fatal(err)
		}
		for _, slot := range plan {
			if err := ps.SetSlot(slot); err != nil {
				t.Fatal(err)
			}
		}
	}
	return ctx, out
}

func record(name, date string, weight float64, sets, reps, rpe int) models.ExerciseRecord {
	return models.ExerciseRecord{
		Name: name, Weight: weight, Sets: sets, Reps: reps, RPE: rpe, Date: date,
		Duration: models.IntPtr(50), CardioTime: models.IntPtr(10), CaloriesBurned: models.IntPtr(400),
	}
}

func TestTodayCmd_Placeholders(t *testing.T) {
	plan := models.WeeklyPlan{{
		Day: "Wednesday", MuscleGroup: "Legs", EstimatedDuration: 40,
		Exercises: []models.PlannedExercise{{ID: "p1", Name: "Squat", Weight: 90, Sets: 5, Reps: 5, RPE: 8}},
	}}
	ctx, out := setupTestContext(t, nil, plan)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	for _, want := range []string{"Wednesday: Legs", "Squat", "Planned ~40 min"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTodayCmd_CompletedOverridesPlan(t *testing.T) {
	plan := models.WeeklyPlan{{
		Day: "Wednesday", MuscleGroup: "Legs", EstimatedDuration: 40,
		Exercises: []models.PlannedExercise{{ID: "p1", Name: "Squat", Sets: 5, Reps: 5, RPE: 8}},
	}}
	ctx, out := setupTestContext(t, []models.ExerciseRecord{record("Lunge", "2026-03-04", 20, 3, 12, 6)}, plan)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Lunge") || strings.Contains(output, "Squat") {
		t.Errorf("completed records should replace placeholders:\n%s", output)
	}
	if !strings.Contains(output, "1 exercise(s) logged today") {
		t.Errorf("missing today count:\n%s", output)
	}
}

func TestTodayCmd_FreeDay(t *testing.T) {
	ctx, out := setupTestContext(t, nil, nil)

	if err := (&TodayCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out.String(), "free training day") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestStatsCmd_JSON(t *testing.T) {
	ctx, out := setupTestContext(t, []models.ExerciseRecord{
		record("Bench", "2026-03-04", 60, 4, 8, 7),
		record("Bench", "2026-03-01", 57.5, 4, 8, 8),
		record("Bench", "2026-02-01", 55, 4, 8, 9),
	}, nil)

	if err := (&StatsCmd{JSON: true}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var m metrics.Metrics
	if err := json.Unmarshal(out.Bytes(), &m); err != nil {
		t.Fatalf("output is not metrics JSON: %v\n%s", err, out.String())
	}
	if m.ActiveDays != 2 || m.TotalSets != 12 || m.TotalCalories != 800 || m.AvgRPE != 8 {
		t.Errorf("unexpected metrics %+v", m)
	}
}

func TestStatsCmd_Text(t *testing.T) {
	ctx, out := setupTestContext(t, []models.ExerciseRecord{record("Row", "2026-03-03", 50, 3, 10, 2)}, nil)

	if err := (&StatsCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	for _, want := range []string{"2026-02-26 to 2026-03-04", "Active days:       1", "Total volume:      1500kg", "light"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestHistoryCmd(t *testing.T) {
	recs := []models.ExerciseRecord{
		record("Squat", "2026-03-04", 100, 5, 5, 8),
		record("Press", "2026-03-02", 40, 3, 8, 7),
	}
	recs[0].WorkoutName = "Legs"
	ctx, out := setupTestContext(t, recs, nil)

	if err := (&HistoryCmd{Limit: 1}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "2026-03-04  Legs") || strings.Contains(output, "Press") {
		t.Errorf("history should show only the newest workout:\n%s", output)
	}

	out.Reset()
	if err := (&HistoryCmd{Limit: 0}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "2026-03-02  Workout") {
		t.Errorf("unnamed workout should use default name:\n%s", out.String())
	}
}

func TestHistoryCmd_Empty(t *testing.T) {
	ctx, out := setupTestContext(t, nil, nil)
	if err := (&HistoryCmd{Limit: 5}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No workouts logged yet.") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestProgressCmd(t *testing.T) {
	ctx, out := setupTestContext(t, []models.ExerciseRecord{
		record("Deadlift", "2026-03-04", 142.5, 3, 5, 8),
		record("deadlift", "2026-02-25", 140, 3, 5, 9),
		record("Curl", "2026-03-01", 12, 3, 12, 6),
	}, nil)

	if err := (&ProgressCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	for _, want := range []string{"weight +2.5kg", "rpe -1", "Curl: not enough sessions to compare"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}
