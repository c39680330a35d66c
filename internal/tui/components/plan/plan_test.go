package plan

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftlog/internal/models"
)

func TestPlanKeys(t *testing.T) {
	m := New(80, 20)
	m.SetPlan(models.WeeklyPlan{{Day: "Monday", MuscleGroup: "Chest", EstimatedDuration: 45}})

	if m.SelectedDay() != "Sunday" {
		t.Fatalf("initial day = %s, want Sunday", m.SelectedDay())
	}

	// Sunday is not planned so exercise and clear keys do nothing
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")}); cmd != nil {
		t.Error("add exercise should be ignored on a rest day")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.SelectedDay() != "Monday" {
		t.Fatalf("day = %s, want Monday", m.SelectedDay())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("expected remove command")
	}
	if msg, ok := cmd().(RemoveSlotMsg); !ok || msg.Day != "Monday" {
		t.Errorf("got %#v", cmd())
	}

	if !strings.Contains(m.View(), "Chest") {
		t.Errorf("view missing planned group:\n%s", m.View())
	}
}
