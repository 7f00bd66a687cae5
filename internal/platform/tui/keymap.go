package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the in-game key bindings. It also feeds the help bar.
type KeyMap struct {
	Flap       key.Binding
	Trigger    key.Binding
	Pause      key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Scoreboard key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Trigger: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/click", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Trigger, k.Pause, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Trigger, k.Pause},
		{k.Mute, k.Screenshot, k.Scoreboard, k.Quit},
	}
}

// MapKey translates a key message to an action. Keys without a binding act
// as the primary trigger. Mute is host-only and maps to ActionNone; callers
// check it separately.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Mute):
		return core.ActionNone
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Trigger):
		return core.ActionTrigger
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Scoreboard):
		return core.ActionScoreboard
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionTrigger
}

// MapMouse turns a left button press into the primary trigger.
func MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionTrigger
	}
	return core.ActionNone
}
