package workout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/session"
)

// Step sizes for the +/- keys.
const (
	WeightStep = 2.5
	CountStep  = 1
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205"))

	plannedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type FinalizeMsg struct{}

type CancelMsg struct{}

type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Toggle    key.Binding
	Finalize  key.Binding
	Cancel    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev exercise"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next exercise"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "decrease"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "mark done"),
		),
		Finalize: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "finish"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model edits a running session row by row.
type Model struct {
	Session *session.Session
	keys    KeyMap
	cursor  int
	field   int
	Status  string
}

func New(s *session.Session) Model {
	return Model{Session: s, keys: DefaultKeyMap()}
}

// Keys returns the session bindings for help output.
func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Increase, m.keys.Decrease, m.keys.NextField, m.keys.Toggle, m.keys.Finalize, m.keys.Cancel}
}

// Cursor returns the selected row and field.
func (m Model) Cursor() (int, session.Field) {
	return m.cursor, session.Fields[m.field]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Session == nil {
		return m, nil
	}
	rows := m.Session.Rows()

	switch {
	case key.Matches(keyMsg, m.keys.Finalize):
		return m, func() tea.Msg { return FinalizeMsg{} }
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return CancelMsg{} }
	case len(rows) == 0:
		return m, nil
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor + len(rows) - 1) % len(rows)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(rows)
	case key.Matches(keyMsg, m.keys.NextField):
		m.field = (m.field + 1) % len(session.Fields)
	case key.Matches(keyMsg, m.keys.PrevField):
		m.field = (m.field + len(session.Fields) - 1) % len(session.Fields)
	case key.Matches(keyMsg, m.keys.Increase):
		m.adjust(rows[m.cursor].ID, 1)
	case key.Matches(keyMsg, m.keys.Decrease):
		m.adjust(rows[m.cursor].ID, -1)
	case key.Matches(keyMsg, m.keys.Toggle):
		if err := m.Session.ToggleComplete(rows[m.cursor].ID); err != nil {
			m.Status = err.Error()
		}
	}
	return m, nil
}

func (m *Model) adjust(rowID string, dir float64) {
	field := session.Fields[m.field]
	step := float64(CountStep)
	if field == session.FieldWeight {
		step = WeightStep
	}
	if err := m.Session.Adjust(rowID, field, dir*step); err != nil {
		m.Status = err.Error()
	}
}

func (m Model) View() string {
	if m.Session == nil {
		return ""
	}
	rows := m.Session.Rows()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %d min  %d/%d done",
		m.Session.WorkoutName(), m.Session.Elapsed(), m.Session.CompletedCount(), len(rows))))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(plannedStyle.Render("No exercises planned for this day."))
		b.WriteString("\n")
	}
	for i, r := range rows {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		check := "[ ]"
		style := rowStyle
		if r.Completed {
			check = "[x]"
			style = doneStyle
		}

		values := []string{
			strconv.FormatFloat(r.Actual.Weight, 'f', -1, 64) + "kg",
			fmt.Sprintf("%d sets", r.Actual.Sets),
			fmt.Sprintf("%d reps", r.Actual.Reps),
			fmt.Sprintf("RPE %d", r.Actual.RPE),
		}
		if i == m.cursor {
			values[m.field] = fieldStyle.Render(values[m.field])
		}

		fmt.Fprintf(&b, "%s%s %s  %s\n", marker, check, style.Render(r.Name), strings.Join(values, "  "))
		if r.Actual != r.Planned {
			fmt.Fprintf(&b, "        %s\n", plannedStyle.Render(fmt.Sprintf("planned %skg %dx%d RPE %d",
				strconv.FormatFloat(r.Planned.Weight, 'f', -1, 64), r.Planned.Sets, r.Planned.Reps, r.Planned.RPE)))
		}
	}

	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(plannedStyle.Render(m.Status))
		b.WriteString("\n")
	}
	return b.String()
}
