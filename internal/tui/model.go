package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/records"
	"github.com/julianstephens/liftlog/internal/session"
	"github.com/julianstephens/liftlog/internal/tui/components/exerciselist"
	"github.com/julianstephens/liftlog/internal/tui/components/plan"
	"github.com/julianstephens/liftlog/internal/tui/components/stats"
	"github.com/julianstephens/liftlog/internal/tui/components/workout"
	"github.com/julianstephens/liftlog/internal/validation"
	"github.com/julianstephens/liftlog/internal/weekplan"
)

// Clock returns the current time in the user's timezone.
type Clock func() (time.Time, error)

var tabs = []string{"Today", "Log", "Plan", "Stats"}

type Model struct {
	records *records.Store
	plan    *weekplan.Store
	clock   Clock
	changes chan tea.Msg

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	exerciseList exerciselist.Model
	planModel    plan.Model
	statsModel   stats.Model
	workout      workout.Model
	session      *session.Session

	form         *huh.Form
	exerciseForm *validation.ExerciseForm
	slotForm     *validation.SlotForm
	plannedForm  *validation.PlannedExerciseForm
	plannedDay   string
	confirmation *constants.ConfirmationMsg

	status              string
	validationWarning   string
	validationConflicts []validation.Conflict
	quitting            bool
	width               int
	height              int
}

func NewModel(recs *records.Store, weekly *weekplan.Store, clock Clock) Model {
	m := Model{
		records:      recs,
		plan:         weekly,
		clock:        clock,
		changes:      make(chan tea.Msg, 8),
		state:        constants.StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		exerciseList: exerciselist.New(recs.All(), 0, 0),
		planModel:    plan.New(0, 0),
		statsModel:   stats.New(0, 0),
	}

	// Store listeners run inside Update, so they only queue a refresh
	ch := m.changes
	recs.Subscribe(func(list []models.ExerciseRecord) {
		notify(ch, recordsChangedMsg{count: len(list)})
	})
	weekly.Subscribe(func(p models.WeeklyPlan) {
		notify(ch, planChangedMsg{slots: len(p)})
	})

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// now falls back to the local clock so a bad timezone never blocks the UI.
func (m Model) now() time.Time {
	if m.clock == nil {
		return time.Now()
	}
	t, err := m.clock()
	if err != nil {
		logger.Warn("Falling back to local time", "error", err)
		return time.Now()
	}
	return t
}

// refresh pulls the latest store contents into every view.
func (m *Model) refresh() {
	all := m.records.All()
	m.exerciseList.SetRecords(all)
	m.planModel.SetPlan(m.plan.Plan())
	m.statsModel.SetRecords(all, m.now())
	m.updateValidationStatus()
}

// updateValidationStatus runs validation and updates the warning message
func (m *Model) updateValidationStatus() {
	v := validation.New()
	result := v.ValidateRecords(m.records.All())
	result.Merge(v.ValidatePlan(m.plan.Plan()))
	m.validationConflicts = result.Conflicts

	if len(result.Conflicts) > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateSession:
		return m.workout.Keys()
	case constants.StateConfirmDelete:
		return []key.Binding{m.keys.Yes, m.keys.No}
	case constants.StateAddExercise, constants.StateAddSlot, constants.StateAddPlanned:
		return []key.Binding{m.keys.Back}
	}

	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateToday:
		keys = append(keys, m.keys.Start)
	case constants.StateLog:
		keys = append(keys, exerciselist.DefaultKeyMap().Add, exerciselist.DefaultKeyMap().Delete)
	case constants.StatePlan:
		keys = append(keys, m.planModel.Keys()...)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		m.ShortHelp(),
	}
}
