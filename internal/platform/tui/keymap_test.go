package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w flaps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{"enter triggers", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionTrigger},
		{"p pauses", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"mute is host only", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, core.ActionNone},
		{"unbound key triggers", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionTrigger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionTrigger},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapMouse(tt.msg); got != tt.want {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.want)
			}
		})
	}
}
