package exerciselist

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftlog/internal/models"
)

type AddExerciseMsg struct{}

type DeleteExerciseMsg struct {
	ID   string
	Name string
}

type Item struct {
	Record models.ExerciseRecord
}

func (i Item) Title() string { return i.Record.Name }
func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %skg %dx%d | RPE %d",
		i.Record.Date, strconv.FormatFloat(i.Record.Weight, 'f', -1, 64), i.Record.Sets, i.Record.Reps, i.Record.RPE)
	if i.Record.WorkoutName != "" {
		desc += " | " + i.Record.WorkoutName
	}
	return desc
}
func (i Item) FilterValue() string { return i.Record.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(records []models.ExerciseRecord, width, height int) Model {
	l := list.New(toItems(records), list.NewDefaultDelegate(), width, height)
	l.Title = "Exercise log"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(records []models.ExerciseRecord) []list.Item {
	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = Item{Record: r}
	}
	return items
}

func (m *Model) SetRecords(records []models.ExerciseRecord) {
	m.list.SetItems(toItems(records))
}

// Len returns the number of records shown.
func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddExerciseMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteExerciseMsg{ID: i.Record.ID, Name: i.Record.Name} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No exercises logged yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
