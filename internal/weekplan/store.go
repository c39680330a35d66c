// Package weekplan owns the weekly workout split.
package weekplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/events"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

var (
	// ErrSlotFull is returned when a day already holds the maximum number of exercises.
	ErrSlotFull = fmt.Errorf("workout day already has %d exercises", constants.MaxExercisesPerSlot)
	// ErrUnknownDay is returned for a day that is not one of the seven weekday names.
	ErrUnknownDay = errors.New("unknown weekday")
)

// Store is the in-memory weekly plan backed by the "workoutPlan" blob.
type Store struct {
	provider storage.Provider
	plan     models.WeeklyPlan
	changes  events.Hub[models.WeeklyPlan]
}

// Open reads the persisted plan. A missing blob yields an empty plan.
func Open(p storage.Provider) (*Store, error) {
	var plan models.WeeklyPlan
	if _, err := storage.ReadJSON(p, constants.WorkoutPlanKey, &plan); err != nil {
		return nil, fmt.Errorf("failed to load workout plan: %w", err)
	}
	for i := range plan {
		if plan[i].Exercises == nil {
			plan[i].Exercises = []models.PlannedExercise{}
		}
	}
	if plan == nil {
		plan = models.WeeklyPlan{}
	}
	logger.Debug("Loaded workout plan", "slots", len(plan))
	return &Store{provider: p, plan: plan}, nil
}

// Plan returns a deep copy of the weekly plan.
func (s *Store) Plan() models.WeeklyPlan {
	return s.plan.Clone()
}

// Slot returns a copy of the slot planned for day.
func (s *Store) Slot(day string) (models.WorkoutDaySlot, bool) {
	slot, ok := s.plan.Slot(day)
	if !ok {
		return slot, false
	}
	return slot.Clone(), true
}

// SetSlot adds slot, replacing any slot already planned for the same day in place.
func (s *Store) SetSlot(slot models.WorkoutDaySlot) error {
	if !models.IsWeekday(slot.Day) {
		return fmt.Errorf("%w: %q", ErrUnknownDay, slot.Day)
	}
	if len(slot.Exercises) > constants.MaxExercisesPerSlot {
		return ErrSlotFull
	}
	slot = slot.Clone()
	slot.MuscleGroup = strings.TrimSpace(slot.MuscleGroup)
	if slot.EstimatedDuration <= 0 {
		slot.EstimatedDuration = constants.DefaultEstimatedDuration
	}
	for i := range slot.Exercises {
		if slot.Exercises[i].ID == "" {
			slot.Exercises[i].ID = models.NewID()
		}
	}

	next := s.plan.Clone()
	replaced := false
	for i := range next {
		if next[i].Day == slot.Day {
			next[i] = slot
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, slot)
	}
	if err := s.commit(next); err != nil {
		return err
	}
	logger.Info("Planned workout day", "day", slot.Day, "muscle_group", slot.MuscleGroup, "replaced", replaced)
	return nil
}

// RemoveSlot deletes the slot for day. An unplanned day is a no-op.
func (s *Store) RemoveSlot(day string) (bool, error) {
	idx := s.index(day)
	if idx < 0 {
		return false, nil
	}
	next := s.plan.Clone()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.commit(next); err != nil {
		return false, err
	}
	logger.Info("Removed workout day", "day", day)
	return true, nil
}

// AddExercise appends ex to day's slot. It reports false when day is not planned.
func (s *Store) AddExercise(day string, ex models.PlannedExercise) (models.PlannedExercise, bool, error) {
	idx := s.index(day)
	if idx < 0 {
		return ex, false, nil
	}
	if len(s.plan[idx].Exercises) >= constants.MaxExercisesPerSlot {
		return ex, false, ErrSlotFull
	}
	if ex.ID == "" {
		ex.ID = models.NewID()
	}

	next := s.plan.Clone()
	next[idx].Exercises = append(next[idx].Exercises, ex)
	if err := s.commit(next); err != nil {
		return ex, false, err
	}
	logger.Debug("Added planned exercise", "day", day, "id", ex.ID)
	return ex, true, nil
}

// UpdateExercise replaces the planned exercise with ex.ID in day's slot.
// Unknown days and ids are a no-op.
func (s *Store) UpdateExercise(day string, ex models.PlannedExercise) (bool, error) {
	idx := s.index(day)
	if idx < 0 {
		return false, nil
	}
	next := s.plan.Clone()
	for i := range next[idx].Exercises {
		if next[idx].Exercises[i].ID == ex.ID {
			next[idx].Exercises[i] = ex
			if err := s.commit(next); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// RemoveExercise deletes the planned exercise id from day's slot.
// Unknown days and ids are a no-op.
func (s *Store) RemoveExercise(day, id string) (bool, error) {
	idx := s.index(day)
	if idx < 0 {
		return false, nil
	}
	next := s.plan.Clone()
	exercises := next[idx].Exercises
	for i := range exercises {
		if exercises[i].ID == id {
			next[idx].Exercises = append(exercises[:i], exercises[i+1:]...)
			if err := s.commit(next); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Subscribe registers fn to receive the full plan after every change.
func (s *Store) Subscribe(fn func(models.WeeklyPlan)) func() {
	return s.changes.Subscribe(fn)
}

func (s *Store) index(day string) int {
	for i, slot := range s.plan {
		if slot.Day == day {
			return i
		}
	}
	return -1
}

func (s *Store) commit(next models.WeeklyPlan) error {
	if err := storage.WriteJSON(s.provider, constants.WorkoutPlanKey, next); err != nil {
		return fmt.Errorf("failed to save workout plan: %w", err)
	}
	s.plan = next
	s.changes.Publish(s.Plan())
	return nil
}
