package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beamfight/internal/core"
	"github.com/vovakirdan/beamfight/internal/registry"
)

// holdTicks is how long a direction stays held after its last key event.
// Terminals report key repeats but never releases.
const holdTicks = 8

// opposite pairs directions so pressing one releases the other.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	game    registry.Game
	runtime core.RuntimeConfig
	events  registry.EventHandler
	logger  *log.Logger

	screen *core.Screen
	keys   KeyMap
	mapper *KeyMapper
	help   help.Model

	held    map[core.Action]int // Ticks left for each held direction
	pending core.InputFrame     // Presses since the last tick
	state   core.GameState

	gameOver bool
	quitting bool
}

// NewModel creates a model for a loaded and reset game on a width×height terminal.
func NewModel(g registry.Game, opts registry.Options, width, height int) Model {
	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    g,
		runtime: opts.Runtime,
		events:  opts.Events,
		logger:  opts.Logger,
		screen:  core.NewScreen(width, max(height-helpRows, 0)),
		keys:    keys,
		mapper:  NewKeyMapper(keys),
		help:    h,
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
		state:   g.State(),
	}
	m.help.Width = width
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records held directions and queues fire presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score, "tick", m.state.Tick)
		return m, tea.Quit
	}

	switch action {
	case core.ActionFire:
		m.pending.Press(core.ActionFire)
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held[action] = holdTicks
		delete(m.held, opposite[action])
	}

	return m, nil
}

// handleTick advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The final frame was shown once after Done
	if m.state.Done {
		m.quitting = true
		return m, tea.Quit
	}

	in := m.frame()
	res := m.game.Step(in)
	m.state = res.State

	if len(res.Events) > 0 {
		for _, e := range res.Events {
			m.logger.Debug("event", "kind", e.Kind, "x", e.X, "y", e.Y)
		}
		if m.events != nil {
			m.events.HandleEvents(res.Events)
		}
	}

	if res.State.GameOver && !m.gameOver {
		m.gameOver = true
		m.logger.Info("game over", "score", res.State.Score, "tick", res.State.Tick)
	}

	return m, tickCmd(m.runtime.TickRate)
}

// frame builds this tick's input and ages held directions.
func (m *Model) frame() core.InputFrame {
	in := m.pending.Clone()
	m.pending.Clear()

	for action, left := range m.held {
		in.Set(action)
		if left <= 1 {
			delete(m.held, action)
		} else {
			m.held[action] = left - 1
		}
	}
	return in
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.screen
	if s.Width() < minCols || s.Height() < minRows {
		return "Terminal too small"
	}

	s.Clear()
	m.game.Render(newCanvas(s, playArea(s.Width(), s.Height()), m.runtime.PlayW, m.runtime.PlayH))
	drawFrame(s, m.game.Title(), m.state)

	return RenderScreen(s) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last game state.
func (m Model) State() core.GameState {
	return m.state
}
