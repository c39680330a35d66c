package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/validation"
	"github.com/julianstephens/liftlog/internal/weekplan"
)

func newExerciseForm(f *validation.ExerciseForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Exercise").Value(&f.Name),
			huh.NewInput().Title("Weight (kg)").Value(&f.Weight),
			huh.NewInput().Title("Sets").Value(&f.Sets),
			huh.NewInput().Title("Reps").Value(&f.Reps),
			huh.NewInput().Title("RPE (1-10)").Value(&f.RPE),
		),
		huh.NewGroup(
			huh.NewInput().Title("Workout name").Placeholder(constants.DefaultWorkoutName).Value(&f.WorkoutName),
			huh.NewInput().Title("Duration (min)").Placeholder(fmt.Sprint(constants.DefaultDurationMin)).Value(&f.Duration),
			huh.NewInput().Title("Cardio (min)").Placeholder(fmt.Sprint(constants.DefaultCardioTimeMin)).Value(&f.CardioTime),
			huh.NewInput().Title("Calories").Placeholder(fmt.Sprint(constants.DefaultCalories)).Value(&f.Calories),
		).Title("Optional"),
	)
}

func newSlotForm(f *validation.SlotForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(huh.NewOptions(constants.WeekdayNames[:]...)...).
				Value(&f.Day),
			huh.NewInput().
				Title("Muscle group").
				Suggestions(constants.MuscleGroups).
				Value(&f.MuscleGroup),
			huh.NewInput().
				Title("Estimated duration (min)").
				Placeholder(fmt.Sprint(constants.DefaultEstimatedDuration)).
				Value(&f.EstimatedDuration),
		),
	)
}

func newPlannedForm(day string, f *validation.PlannedExerciseForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Exercise").Value(&f.Name),
			huh.NewInput().Title("Weight (kg)").Placeholder("0").Value(&f.Weight),
			huh.NewInput().Title("Sets").Placeholder(fmt.Sprint(constants.DefaultPlannedSets)).Value(&f.Sets),
			huh.NewInput().Title("Reps").Placeholder(fmt.Sprint(constants.DefaultPlannedReps)).Value(&f.Reps),
			huh.NewInput().Title("RPE (1-10)").Placeholder(fmt.Sprint(constants.DefaultPlannedRPE)).Value(&f.RPE),
		).Title("Add exercise to " + day),
	)
}

func (m Model) openForm(state constants.SessionState, form *huh.Form) (Model, tea.Cmd) {
	m.previousState = m.state
	m.state = state
	m.form = form
	m.status = ""
	return m, m.form.Init()
}

func (m Model) closeForm() Model {
	m.state = m.previousState
	m.form = nil
	m.exerciseForm = nil
	m.slotForm = nil
	m.plannedForm = nil
	m.plannedDay = ""
	return m
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m.closeForm(), nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		return m.closeForm(), nil
	case huh.StateCompleted:
		return m.submitForm()
	}
	return m, cmd
}

// submitForm saves the completed form. Invalid input reopens the form with
// the values as typed and no error.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var (
		ok  bool
		err error
	)
	switch m.state {
	case constants.StateAddExercise:
		ok, err = m.saveExercise()
	case constants.StateAddSlot:
		ok, err = m.saveSlot()
	case constants.StateAddPlanned:
		ok, err = m.savePlanned()
	}

	if err != nil {
		logger.Error("Failed to save form", "error", err)
		m = m.closeForm()
		m.status = err.Error()
		return m, nil
	}
	if !ok {
		switch m.state {
		case constants.StateAddExercise:
			m.form = newExerciseForm(m.exerciseForm)
		case constants.StateAddSlot:
			m.form = newSlotForm(m.slotForm)
		case constants.StateAddPlanned:
			m.form = newPlannedForm(m.plannedDay, m.plannedForm)
		}
		return m, m.form.Init()
	}
	return m.closeForm(), nil
}

func (m Model) saveExercise() (bool, error) {
	rec, ok := validation.ParseExerciseForm(*m.exerciseForm, m.now())
	if !ok {
		return false, nil
	}
	_, err := m.records.Add(rec)
	return true, err
}

func (m Model) saveSlot() (bool, error) {
	slot, ok := validation.ParseSlotForm(*m.slotForm)
	if !ok {
		return false, nil
	}
	if existing, found := m.plan.Slot(slot.Day); found {
		slot.Exercises = existing.Exercises
	}
	return true, m.plan.SetSlot(slot)
}

func (m Model) savePlanned() (bool, error) {
	ex, ok := validation.ParsePlannedExerciseForm(*m.plannedForm, models.NewPlannedExercise())
	if !ok {
		return false, nil
	}
	_, added, err := m.plan.AddExercise(m.plannedDay, ex)
	if errors.Is(err, weekplan.ErrSlotFull) {
		return true, fmt.Errorf("%s already has %d exercises", m.plannedDay, constants.MaxExercisesPerSlot)
	}
	if err != nil {
		return true, err
	}
	if !added {
		return true, fmt.Errorf("%s is not planned", m.plannedDay)
	}
	return true, nil
}
