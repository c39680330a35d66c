package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/session"
	"github.com/julianstephens/liftlog/internal/today"
	"github.com/julianstephens/liftlog/internal/tui/components/exerciselist"
	"github.com/julianstephens/liftlog/internal/tui/components/plan"
	"github.com/julianstephens/liftlog/internal/tui/components/workout"
	"github.com/julianstephens/liftlog/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		bodyHeight := msg.Height - v - 4
		m.exerciseList.SetSize(msg.Width-h, bodyHeight)
		m.planModel.SetSize(msg.Width-h, bodyHeight)
		m.statsModel.SetSize(msg.Width-h, bodyHeight)
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case recordsChangedMsg:
		logger.Debug("Refreshing after record change", "count", msg.count)
		m.refresh()
		return m, waitForChange(m.changes)

	case planChangedMsg:
		logger.Debug("Refreshing after plan change", "slots", msg.slots)
		m.refresh()
		return m, waitForChange(m.changes)

	case tickMsg:
		return m.handleTick(msg)

	case constants.ConfirmationMsg:
		m.confirmation = &msg
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case constants.StateAddExercise, constants.StateAddSlot, constants.StateAddPlanned:
		return m.updateForm(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirm(msg)
	case constants.StateSession:
		return m.updateSession(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % constants.SessionState(len(tabs))
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + constants.SessionState(len(tabs))) % constants.SessionState(len(tabs))
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.state {
	case constants.StateToday:
		return m.updateToday(msg)
	case constants.StateLog:
		return m.updateLog(msg)
	case constants.StatePlan:
		return m.updatePlan(msg)
	case constants.StateStats:
		var cmd tea.Cmd
		m.statsModel, cmd = m.statsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Start) {
		return m.startSession()
	}
	return m, nil
}

func (m Model) updateLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exerciselist.AddExerciseMsg:
		m.exerciseForm = &validation.ExerciseForm{}
		return m.openForm(constants.StateAddExercise, newExerciseForm(m.exerciseForm))
	case exerciselist.DeleteExerciseMsg:
		id := msg.ID
		return m, func() tea.Msg {
			return constants.ConfirmationMsg{
				Message: fmt.Sprintf("Delete %s?", msg.Name),
				Action:  m.deleteRecordCmd(id),
			}
		}
	}

	var cmd tea.Cmd
	m.exerciseList, cmd = m.exerciseList.Update(msg)
	return m, cmd
}

func (m Model) updatePlan(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case plan.SetSlotMsg:
		m.slotForm = &validation.SlotForm{Day: msg.Day}
		if slot, ok := m.plan.Slot(msg.Day); ok {
			m.slotForm.MuscleGroup = slot.MuscleGroup
			m.slotForm.EstimatedDuration = fmt.Sprint(slot.EstimatedDuration)
		}
		return m.openForm(constants.StateAddSlot, newSlotForm(m.slotForm))
	case plan.AddPlannedMsg:
		if slot, ok := m.plan.Slot(msg.Day); ok && len(slot.Exercises) >= constants.MaxExercisesPerSlot {
			m.status = fmt.Sprintf("%s already has %d exercises", msg.Day, constants.MaxExercisesPerSlot)
			return m, nil
		}
		m.plannedDay = msg.Day
		m.plannedForm = &validation.PlannedExerciseForm{}
		return m.openForm(constants.StateAddPlanned, newPlannedForm(msg.Day, m.plannedForm))
	case plan.RemoveSlotMsg:
		day := msg.Day
		return m, func() tea.Msg {
			return constants.ConfirmationMsg{
				Message: fmt.Sprintf("Remove %s from the plan?", day),
				Action:  m.removeSlotCmd(day),
			}
		}
	}

	var cmd tea.Cmd
	m.planModel, cmd = m.planModel.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		action := m.confirmation.Action
		m.confirmation = nil
		m.state = m.previousState
		if action == nil {
			return m, nil
		}
		return m, action()
	case key.Matches(keyMsg, m.keys.No):
		m.confirmation = nil
		m.state = m.previousState
	}
	return m, nil
}

// statusMsg reports the outcome of a background store change.
type statusMsg string

func (m Model) deleteRecordCmd(id string) func() tea.Cmd {
	store := m.records
	return func() tea.Cmd {
		if _, err := store.Delete(id); err != nil {
			logger.Error("Failed to delete exercise", "id", id, "error", err)
			return func() tea.Msg { return statusMsg(err.Error()) }
		}
		return nil
	}
}

func (m Model) removeSlotCmd(day string) func() tea.Cmd {
	store := m.plan
	return func() tea.Cmd {
		if _, err := store.RemoveSlot(day); err != nil {
			logger.Error("Failed to remove plan day", "day", day, "error", err)
			return func() tea.Msg { return statusMsg(err.Error()) }
		}
		return nil
	}
}

func (m Model) startSession() (tea.Model, tea.Cmd) {
	now := m.now()
	slot, ok := today.PlannedSlot(m.plan.Plan(), now)
	if !ok {
		m.status = "Nothing planned today. Plan a day on the Plan tab."
		return m, nil
	}
	if len(slot.Exercises) == 0 {
		m.status = fmt.Sprintf("%s has no exercises yet.", slot.Day)
		return m, nil
	}

	s := session.FromSlot(slot)
	if err := s.Start(now); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.session = s
	m.workout = workout.New(s)
	m.previousState = m.state
	m.state = constants.StateSession
	m.status = ""
	return m, tickSession(s.ID())
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	// Ticks scheduled for an ended session are dropped
	if m.session == nil || m.session.ID() != msg.sessionID || m.session.State() != session.InProgress {
		return m, nil
	}
	m.session.Tick(msg.at)
	return m, tickSession(msg.sessionID)
}

func (m Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case workout.FinalizeMsg:
		return m.finalizeSession()
	case workout.CancelMsg:
		if err := m.session.Cancel(); err != nil {
			logger.Warn("Failed to cancel session", "error", err)
		}
		m.status = "Workout cancelled."
		return m.endSession(), nil
	}

	var cmd tea.Cmd
	m.workout, cmd = m.workout.Update(msg)
	return m, cmd
}

func (m Model) finalizeSession() (tea.Model, tea.Cmd) {
	recs, err := m.session.FinalizeWith(m.now(), func(recs []models.ExerciseRecord) error {
		_, err := m.records.AddMany(recs)
		return err
	})
	switch {
	case errors.Is(err, session.ErrNothingCompleted):
		m.workout.Status = "Mark at least one exercise as done before finishing."
		return m, nil
	case err != nil:
		// The session stays open so the user can retry or cancel
		logger.Error("Failed to save workout", "error", err)
		m.workout.Status = "Could not save workout: " + err.Error()
		return m, nil
	}

	m.status = fmt.Sprintf("Saved %d exercise(s) in %d min.", len(recs), m.session.Elapsed())
	return m.endSession(), nil
}

func (m Model) endSession() Model {
	m.session = nil
	m.workout = workout.Model{}
	m.state = constants.StateToday
	return m
}
