// Package tui provides the Bubble Tea front end for a play session.
// It maps keys onto held actions, drives frames from tick messages and
// draws scenes as colored terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-quest/internal/loop"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(loop.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
