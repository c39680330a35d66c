package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	selectedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true).
				Width(12)

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type SetSlotMsg struct {
	Day string
}

type AddPlannedMsg struct {
	Day string
}

type RemoveSlotMsg struct {
	Day string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Set    key.Binding
	Add    key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),
		Set: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "plan day"),
		),
		Add: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "add exercise"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear day"),
		),
	}
}

// Model shows the week with one weekday selected.
type Model struct {
	viewport viewport.Model
	keys     KeyMap
	Plan     models.WeeklyPlan
	cursor   int
	width    int
	height   int
}

func New(width, height int) Model {
	m := Model{
		viewport: viewport.New(width, height),
		keys:     DefaultKeyMap(),
	}
	m.Render()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedDay returns the weekday under the cursor.
func (m Model) SelectedDay() string {
	return constants.WeekdayNames[m.cursor]
}

// Keys returns the plan bindings for help output.
func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Set, m.keys.Add, m.keys.Remove}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		day := m.SelectedDay()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + len(constants.WeekdayNames) - 1) % len(constants.WeekdayNames)
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(constants.WeekdayNames)
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Set):
			return m, func() tea.Msg { return SetSlotMsg{Day: day} }
		case key.Matches(msg, m.keys.Add):
			if _, ok := m.Plan.Slot(day); ok {
				return m, func() tea.Msg { return AddPlannedMsg{Day: day} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if _, ok := m.Plan.Slot(day); ok {
				return m, func() tea.Msg { return RemoveSlotMsg{Day: day} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetPlan(plan models.WeeklyPlan) {
	m.Plan = plan
	m.Render()
}

func (m *Model) Render() {
	var b strings.Builder
	for i, day := range constants.WeekdayNames {
		style := dayStyle
		marker := "  "
		if i == m.cursor {
			style = selectedDayStyle
			marker = "> "
		}

		slot, ok := m.Plan.Slot(day)
		if !ok {
			fmt.Fprintf(&b, "%s%s %s\n", marker, style.Render(day), statusStyle.Render("rest"))
			continue
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", marker, style.Render(day),
			groupStyle.Render(slot.MuscleGroup),
			statusStyle.Render(fmt.Sprintf("~%d min, %d/%d", slot.EstimatedDuration, len(slot.Exercises), constants.MaxExercisesPerSlot)),
		)
		for _, ex := range slot.Exercises {
			fmt.Fprintf(&b, "      %s %skg %dx%d RPE %d\n",
				ex.Name, strconv.FormatFloat(ex.Weight, 'f', -1, 64), ex.Sets, ex.Reps, ex.RPE)
		}
	}
	m.viewport.SetContent(b.String())
}
