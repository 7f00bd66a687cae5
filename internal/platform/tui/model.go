package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/spectate"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	DefaultScreenW = 80
	DefaultScreenH = 24
)

// ModelOptions carries the optional collaborators of a Model.
type ModelOptions struct {
	Store          *storage.Store      // Scoreboard source; nil hides scores
	Hub            *spectate.Hub       // Spectator broadcast; nil disables it
	BroadcastEvery int                 // Frames between snapshots, default 2
	Sound          *audio.SoundManager // nil disables the mute toggle
	ScreenshotDir  string              // Defaults to ~/.flappy/screenshots
	FPS            int                 // Host frame rate, defaults to the simulation rate
	Width, Height  int                 // Initial terminal size
	Logger         *log.Logger
}

// Model is the Bubble Tea model hosting one game driver.
type Model struct {
	driver *loop.Driver
	screen *core.Screen
	canvas *ScreenCanvas
	keys   KeyMap
	help   help.Model
	input  core.InputFrame
	opts   ModelOptions

	scoreboard *ScoreboardModel
	status     string
	statusAt   time.Time
	quitting   bool
}

// NewModel creates a model around driver.
func NewModel(driver *loop.Driver, opts ModelOptions) Model {
	cfg := driver.Game().Config()
	if opts.FPS <= 0 {
		opts.FPS = cfg.Timing.FPS
	}
	if opts.BroadcastEvery <= 0 {
		opts.BroadcastEvery = 2
	}
	if opts.Width <= 0 {
		opts.Width = DefaultScreenW
	}
	if opts.Height <= 0 {
		opts.Height = DefaultScreenH
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	screen := core.NewScreen(opts.Width, max(opts.Height-1, 1))
	return Model{
		driver: driver,
		screen: screen,
		canvas: NewScreenCanvas(screen, cfg.Playfield.Width, cfg.Playfield.Height),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		opts:   opts,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.scoreboard == nil {
			if a := MapMouse(msg); a != core.ActionNone {
				m.input.Push(a)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Mute) {
		m.toggleMute()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionScoreboard:
		sb := NewScoreboardModel(m.opts.Store, m.driver.Game().ID(),
			m.driver.Game().Config().Storage.MaxScoreKey, m.opts.Width, m.opts.Height)
		m.scoreboard = &sb
	case core.ActionNone, core.ActionBack:
	default:
		m.input.Push(a)
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.Closed():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

func (m *Model) toggleMute() {
	if m.opts.Sound == nil {
		m.setStatus("sound unavailable")
		return
	}
	if m.opts.Sound.ToggleMute() {
		m.setStatus("sound muted")
	} else {
		m.setStatus("sound on")
	}
}

// handleResize keeps the last row free for the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleFrame runs one driver frame and schedules the next.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	// The game keeps running behind the scoreboard, without input.
	m.driver.Frame(m.input)
	m.input.Clear()

	if hub := m.opts.Hub; hub != nil && m.driver.Frames()%uint64(m.opts.BroadcastEvery) == 0 {
		if err := hub.Broadcast(m.driver.Game().Snapshot()); err != nil {
			m.opts.Logger.Warn("spectator broadcast failed", "err", err)
		}
	}

	if m.status != "" && time.Since(m.statusAt) > 3*time.Second {
		m.status = ""
	}

	return m, frameCmd(m.opts.FPS)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.driver.Game().Render(m.canvas)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.setStatus("screenshot failed: " + err.Error())
			return
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed: " + err.Error())
		return
	}
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// Status returns the transient status message, if any.
func (m Model) Status() string {
	return m.status
}

// ShowingScoreboard reports whether the scoreboard is open.
func (m Model) ShowingScoreboard() bool {
	return m.scoreboard != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.driver.Game().Render(m.canvas)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(footer)
}

// Run starts the Bubble Tea program for driver on the local terminal.
func Run(driver *loop.Driver, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(driver, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
