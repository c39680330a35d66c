package weekplan

import (
	"errors"
	"testing"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

type mockStore struct {
	data    map[string][]byte
	failPut bool
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Init() error  { return nil }
func (m *mockStore) Load() error  { return nil }
func (m *mockStore) Close() error { return nil }
func (m *mockStore) Get(key string) ([]byte, error) {
	return m.data[key], nil
}
func (m *mockStore) Put(key string, value []byte) error {
	if m.failPut {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}
func (m *mockStore) Keys() ([]string, error)    { return nil, nil }
func (m *mockStore) Snapshot(dest string) error { return nil }
func (m *mockStore) GetConfigPath() string      { return "mock" }

func openStore(t *testing.T) (*Store, *mockStore) {
	t.Helper()
	m := newMockStore()
	s, err := Open(m)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, m
}

func TestSetSlotReplacesSameDay(t *testing.T) {
	s, _ := openStore(t)
	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Monday, MuscleGroup: "Chest", EstimatedDuration: 50}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Wednesday, MuscleGroup: "Back", EstimatedDuration: 40}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Monday, MuscleGroup: "Shoulders", EstimatedDuration: 70}); err != nil {
		t.Fatal(err)
	}

	plan := s.Plan()
	if len(plan) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(plan))
	}
	if plan[0].Day != constants.Monday || plan[0].MuscleGroup != "Shoulders" || plan[0].EstimatedDuration != 70 {
		t.Errorf("Monday slot not replaced in place: %+v", plan[0])
	}
}

func TestSetSlotDefaultsAndValidation(t *testing.T) {
	s, _ := openStore(t)
	if err := s.SetSlot(models.WorkoutDaySlot{Day: "Funday"}); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("SetSlot(Funday) error = %v, want ErrUnknownDay", err)
	}

	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Friday, MuscleGroup: " Legs "}); err != nil {
		t.Fatal(err)
	}
	slot, ok := s.Slot(constants.Friday)
	if !ok {
		t.Fatal("Friday slot missing")
	}
	if slot.EstimatedDuration != constants.DefaultEstimatedDuration || slot.MuscleGroup != "Legs" {
		t.Errorf("unexpected defaults %+v", slot)
	}

	tooMany := make([]models.PlannedExercise, constants.MaxExercisesPerSlot+1)
	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Sunday, Exercises: tooMany}); !errors.Is(err, ErrSlotFull) {
		t.Errorf("SetSlot(7 exercises) error = %v, want ErrSlotFull", err)
	}
}

func TestAddExerciseCap(t *testing.T) {
	s, _ := openStore(t)
	_ = s.SetSlot(models.WorkoutDaySlot{Day: constants.Tuesday, MuscleGroup: "Back"})

	for i := 0; i < constants.MaxExercisesPerSlot; i++ {
		if _, ok, err := s.AddExercise(constants.Tuesday, models.NewPlannedExercise()); err != nil || !ok {
			t.Fatalf("AddExercise #%d = %v, %v", i, ok, err)
		}
	}
	if _, _, err := s.AddExercise(constants.Tuesday, models.NewPlannedExercise()); !errors.Is(err, ErrSlotFull) {
		t.Errorf("7th AddExercise error = %v, want ErrSlotFull", err)
	}
	slot, _ := s.Slot(constants.Tuesday)
	if len(slot.Exercises) != constants.MaxExercisesPerSlot {
		t.Errorf("expected %d exercises, got %d", constants.MaxExercisesPerSlot, len(slot.Exercises))
	}
}

func TestUnknownDayIsNoop(t *testing.T) {
	s, m := openStore(t)

	if _, ok, err := s.AddExercise(constants.Saturday, models.NewPlannedExercise()); ok || err != nil {
		t.Errorf("AddExercise(unplanned) = %v, %v", ok, err)
	}
	if ok, err := s.UpdateExercise(constants.Saturday, models.PlannedExercise{ID: "x"}); ok || err != nil {
		t.Errorf("UpdateExercise(unplanned) = %v, %v", ok, err)
	}
	if ok, err := s.RemoveExercise(constants.Saturday, "x"); ok || err != nil {
		t.Errorf("RemoveExercise(unplanned) = %v, %v", ok, err)
	}
	if ok, err := s.RemoveSlot(constants.Saturday); ok || err != nil {
		t.Errorf("RemoveSlot(unplanned) = %v, %v", ok, err)
	}
	if len(m.data) != 0 {
		t.Error("no-op operations should not write")
	}
}

func TestUpdateAndRemoveExercise(t *testing.T) {
	s, _ := openStore(t)
	_ = s.SetSlot(models.WorkoutDaySlot{Day: constants.Thursday, MuscleGroup: "Arms"})
	a, _, _ := s.AddExercise(constants.Thursday, models.PlannedExercise{Name: "Curl", Sets: 3, Reps: 12, RPE: 7})
	b, _, _ := s.AddExercise(constants.Thursday, models.PlannedExercise{Name: "Pushdown", Sets: 3, Reps: 12, RPE: 7})

	a.Weight = 15
	if ok, err := s.UpdateExercise(constants.Thursday, a); !ok || err != nil {
		t.Fatalf("UpdateExercise() = %v, %v", ok, err)
	}
	if ok, _ := s.UpdateExercise(constants.Thursday, models.PlannedExercise{ID: "nope"}); ok {
		t.Error("UpdateExercise(unknown id) should be a no-op")
	}

	if ok, err := s.RemoveExercise(constants.Thursday, b.ID); !ok || err != nil {
		t.Fatalf("RemoveExercise() = %v, %v", ok, err)
	}
	slot, _ := s.Slot(constants.Thursday)
	if len(slot.Exercises) != 1 || slot.Exercises[0].Weight != 15 {
		t.Errorf("unexpected slot %+v", slot)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, m := openStore(t)
	_ = s.SetSlot(models.WorkoutDaySlot{Day: constants.Monday, MuscleGroup: "Chest", EstimatedDuration: 45})
	_, _, _ = s.AddExercise(constants.Monday, models.PlannedExercise{Name: "Bench", Weight: 60, Sets: 4, Reps: 8, RPE: 8})

	reopened, err := Open(m)
	if err != nil {
		t.Fatal(err)
	}
	slot, ok := reopened.Slot(constants.Monday)
	if !ok || len(slot.Exercises) != 1 || slot.Exercises[0].Name != "Bench" {
		t.Errorf("round trip lost data: %+v", slot)
	}
}

func TestOpenNormalizesNullExercises(t *testing.T) {
	m := newMockStore()
	m.data[constants.WorkoutPlanKey] = []byte(`[{"day":"Monday","muscleGroup":"Chest","estimatedDuration":60,"exercises":null}]`)
	s, err := Open(m)
	if err != nil {
		t.Fatal(err)
	}
	slot, _ := s.Slot(constants.Monday)
	if slot.Exercises == nil {
		t.Error("expected empty exercise list")
	}
}

func TestSlotCopyIsIsolated(t *testing.T) {
	s, _ := openStore(t)
	_ = s.SetSlot(models.WorkoutDaySlot{Day: constants.Monday, Exercises: []models.PlannedExercise{{Name: "Bench"}}})
	slot, _ := s.Slot(constants.Monday)
	slot.Exercises[0].Name = "Changed"
	again, _ := s.Slot(constants.Monday)
	if again.Exercises[0].Name != "Bench" {
		t.Error("Slot() exposed store-owned memory")
	}
}

func TestSubscribeAndFailedWrite(t *testing.T) {
	s, m := openStore(t)
	calls := 0
	s.Subscribe(func(models.WeeklyPlan) { calls++ })

	_ = s.SetSlot(models.WorkoutDaySlot{Day: constants.Monday})
	m.failPut = true
	if err := s.SetSlot(models.WorkoutDaySlot{Day: constants.Tuesday}); err == nil {
		t.Fatal("expected write error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if _, ok := s.Slot(constants.Tuesday); ok {
		t.Error("failed write should not change the plan")
	}
}
