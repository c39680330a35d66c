// Package session runs a live workout against a day's planned exercises.
package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/utils"
)

var (
	ErrNotInProgress    = errors.New("session is not in progress")
	ErrAlreadyStarted   = errors.New("session already started")
	ErrNothingCompleted = errors.New("no exercises marked as completed")
	ErrInvalidValue     = errors.New("invalid exercise value")
)

// State is the lifecycle stage of a session.
type State int

const (
	NotStarted State = iota
	InProgress
	Finalized
	Cancelled
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finalized:
		return "finalized"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Field selects one editable value of a row.
type Field int

const (
	FieldWeight Field = iota
	FieldSets
	FieldReps
	FieldRPE
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldWeight, FieldSets, FieldReps, FieldRPE}

func (f Field) String() string {
	switch f {
	case FieldWeight:
		return "weight"
	case FieldSets:
		return "sets"
	case FieldReps:
		return "reps"
	case FieldRPE:
		return "rpe"
	default:
		return "unknown"
	}
}

// Values are the load parameters of one exercise.
type Values struct {
	Weight float64
	Sets   int
	Reps   int
	RPE    int
}

// Validate reports whether v is a loggable set of values.
func (v Values) Validate() error {
	switch {
	case !(v.Weight >= 0) || math.IsInf(v.Weight, 0):
		return fmt.Errorf("%w: weight must be a non-negative number", ErrInvalidValue)
	case v.Sets <= 0:
		return fmt.Errorf("%w: sets must be positive", ErrInvalidValue)
	case v.Reps <= 0:
		return fmt.Errorf("%w: reps must be positive", ErrInvalidValue)
	case v.RPE < constants.MinRPE || v.RPE > constants.MaxRPE:
		return fmt.Errorf("%w: rpe must be between %d and %d", ErrInvalidValue, constants.MinRPE, constants.MaxRPE)
	}
	return nil
}

// Row is one planned exercise as performed in the session.
type Row struct {
	ID        string
	Name      string
	Planned   Values
	Actual    Values
	Completed bool
}

// Session tracks a single workout from start to finalization.
type Session struct {
	id          string
	workoutName string
	rows        []Row
	state       State
	startedAt   time.Time
	elapsed     int
}

// New loads exercises as rows with actual values equal to the planned ones.
func New(workoutName string, exercises []models.PlannedExercise) *Session {
	rows := make([]Row, len(exercises))
	for i, ex := range exercises {
		v := Values{Weight: ex.Weight, Sets: ex.Sets, Reps: ex.Reps, RPE: ex.RPE}
		rows[i] = Row{ID: ex.ID, Name: ex.Name, Planned: v, Actual: v}
	}
	return &Session{
		id:          models.NewID(),
		workoutName: workoutName,
		rows:        rows,
		state:       NotStarted,
	}
}

// FromSlot starts a session for a planned weekday.
func FromSlot(slot models.WorkoutDaySlot) *Session {
	return New(slot.MuscleGroup, slot.Exercises)
}

func (s *Session) ID() string           { return s.id }
func (s *Session) WorkoutName() string  { return s.workoutName }
func (s *Session) State() State         { return s.state }
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns whole minutes since start, as of the last Tick.
func (s *Session) Elapsed() int { return s.elapsed }

// Rows returns a copy of the session rows.
func (s *Session) Rows() []Row {
	return append([]Row{}, s.rows...)
}

// CompletedCount returns how many rows are marked as completed.
func (s *Session) CompletedCount() int {
	n := 0
	for _, r := range s.rows {
		if r.Completed {
			n++
		}
	}
	return n
}

// Start moves the session to InProgress and starts the clock at now.
func (s *Session) Start(now time.Time) error {
	if s.state != NotStarted {
		return ErrAlreadyStarted
	}
	s.state = InProgress
	s.startedAt = now
	s.elapsed = 0
	logger.Info("Workout session started", "session", s.id, "workout", s.workoutName, "exercises", len(s.rows))
	return nil
}

// Tick advances the elapsed time to now and returns it in whole minutes.
func (s *Session) Tick(now time.Time) int {
	if s.state != InProgress {
		return s.elapsed
	}
	if d := now.Sub(s.startedAt); d > 0 {
		s.elapsed = int(d / time.Minute)
	}
	return s.elapsed
}

// SetActual replaces the actual values of a row. Unknown rows are ignored.
func (s *Session) SetActual(rowID string, v Values) error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if i := s.index(rowID); i >= 0 {
		s.rows[i].Actual = v
	}
	return nil
}

// Adjust moves one actual value of a row by delta, clamped to the valid range.
func (s *Session) Adjust(rowID string, field Field, delta float64) error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	i := s.index(rowID)
	if i < 0 {
		return nil
	}
	v := s.rows[i].Actual
	switch field {
	case FieldWeight:
		v.Weight = math.Max(0, v.Weight+delta)
	case FieldSets:
		v.Sets = max(1, v.Sets+int(delta))
	case FieldReps:
		v.Reps = max(1, v.Reps+int(delta))
	case FieldRPE:
		v.RPE = min(constants.MaxRPE, max(constants.MinRPE, v.RPE+int(delta)))
	default:
		return fmt.Errorf("%w: unknown field %d", ErrInvalidValue, field)
	}
	s.rows[i].Actual = v
	return nil
}

// ToggleComplete flips the completion flag of a row. Unknown rows are ignored.
func (s *Session) ToggleComplete(rowID string) error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	if i := s.index(rowID); i >= 0 {
		s.rows[i].Completed = !s.rows[i].Completed
	}
	return nil
}

// Finalize ends the session and returns one record per completed row, dated
// now, carrying the elapsed duration. Uncompleted rows are discarded. With no
// completed rows the session stays in progress and ErrNothingCompleted is returned.
func (s *Session) Finalize(now time.Time) ([]models.ExerciseRecord, error) {
	return s.FinalizeWith(now, nil)
}

// FinalizeWith is Finalize with a commit step run before the session ends.
// When commit fails the session stays in progress and the error is returned.
func (s *Session) FinalizeWith(now time.Time, commit func([]models.ExerciseRecord) error) ([]models.ExerciseRecord, error) {
	if s.state != InProgress {
		return nil, ErrNotInProgress
	}
	if s.CompletedCount() == 0 {
		return nil, ErrNothingCompleted
	}

	elapsed := s.Tick(now)
	calories := int(math.Round(float64(elapsed) * constants.SessionCaloriesPerMin))
	date := utils.DateString(now)

	var out []models.ExerciseRecord
	for _, r := range s.rows {
		if !r.Completed {
			continue
		}
		out = append(out, models.ExerciseRecord{
			ID:             models.NewID(),
			Name:           r.Name,
			Weight:         r.Actual.Weight,
			Sets:           r.Actual.Sets,
			Reps:           r.Actual.Reps,
			RPE:            r.Actual.RPE,
			Date:           date,
			WorkoutName:    s.workoutName,
			Duration:       models.IntPtr(elapsed),
			CaloriesBurned: models.IntPtr(calories),
		})
	}

	if commit != nil {
		if err := commit(out); err != nil {
			logger.Warn("Workout session not saved", "session", s.id, "error", err)
			return nil, err
		}
	}

	s.state = Finalized
	logger.Info("Workout session finalized", "session", s.id, "completed", len(out), "discarded", len(s.rows)-len(out), "minutes", elapsed)
	return out, nil
}

// Cancel discards the session.
func (s *Session) Cancel() error {
	if s.state != InProgress {
		return ErrNotInProgress
	}
	s.state = Cancelled
	logger.Info("Workout session cancelled", "session", s.id)
	return nil
}

func (s *Session) index(rowID string) int {
	for i := range s.rows {
		if s.rows[i].ID == rowID {
			return i
		}
	}
	return -1
}
