// Package tui provides the Bubble Tea host for the game.
// It turns terminal frames into driver frames, maps keys and mouse clicks to
// actions, and draws the playfield scaled onto the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one host frame.
type FrameMsg time.Time

// frameCmd schedules the next frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
