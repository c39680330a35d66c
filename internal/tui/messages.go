package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/liftlog/internal/constants"
)

type recordsChangedMsg struct {
	count int
}

type planChangedMsg struct {
	slots int
}

// tickMsg advances the clock of the session it was scheduled for.
type tickMsg struct {
	sessionID string
	at        time.Time
}

// notify queues msg without blocking the store that published it.
// A full queue already holds a pending refresh.
func notify(ch chan tea.Msg, msg tea.Msg) {
	select {
	case ch <- msg:
	default:
	}
}

func waitForChange(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func tickSession(sessionID string) tea.Cmd {
	return tea.Tick(constants.SessionTickInterval, func(t time.Time) tea.Msg {
		return tickMsg{sessionID: sessionID, at: t}
	})
}
