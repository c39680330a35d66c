package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/metrics"
	"github.com/julianstephens/liftlog/internal/today"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateToday:
		content = docStyle.Render(m.viewToday())
	case constants.StateLog:
		content = docStyle.Render(m.exerciseList.View())
	case constants.StatePlan:
		content = docStyle.Render(m.planModel.View())
	case constants.StateStats:
		content = docStyle.Render(m.statsModel.View())
	case constants.StateSession:
		content = docStyle.Render(m.workout.View())
	case constants.StateAddExercise, constants.StateAddSlot, constants.StateAddPlanned:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirm()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, warningStyle.Render(m.status))
	}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= constants.SessionState(len(tabs)) {
		active = m.previousState
	}
	if m.state == constants.StateSession {
		active = constants.StateToday
	}

	var rendered []string
	for i, title := range tabs {
		if active == constants.SessionState(i) {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewToday() string {
	now := m.now()
	plan := m.plan.Plan()
	all := m.records.All()

	var b strings.Builder
	day := today.ResolveDay(now)
	slot, planned := today.PlannedSlot(plan, now)
	if planned {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s (~%d min)", day, slot.MuscleGroup, slot.EstimatedDuration)))
	} else {
		b.WriteString(titleStyle.Render(day + ": free training day"))
	}
	b.WriteString("\n\n")

	display := today.DisplayExercises(plan, all, now)
	done := metrics.TodayCount(all, now) > 0
	if len(display) == 0 {
		b.WriteString(placeholderStyle.Render("Nothing planned or logged today."))
		b.WriteString("\n")
		return b.String()
	}

	style := placeholderStyle
	if done {
		style = completedStyle
	}
	for _, r := range display {
		fmt.Fprintf(&b, "  %s  %skg %dx%d  RPE %d\n",
			style.Render(r.Name), strconv.FormatFloat(r.Weight, 'f', -1, 64), r.Sets, r.Reps, r.RPE)
	}

	b.WriteString("\n")
	if done {
		fmt.Fprintf(&b, "%d exercise(s) logged today.\n", len(display))
	} else {
		b.WriteString(placeholderStyle.Render("Planned. Press 's' to start the workout."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewConfirm() string {
	message := "Are you sure?"
	if m.confirmation != nil && m.confirmation.Message != "" {
		message = m.confirmation.Message
	}
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(message),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
