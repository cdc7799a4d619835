// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drpaneas/panis/internal/audio"
	"github.com/drpaneas/panis/internal/core"
	"github.com/drpaneas/panis/internal/game"
	"github.com/drpaneas/panis/internal/storage"
)

// TickMsg drives the fixed-rate simulation loop.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the Bubble Tea model driving one play session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	sound  *audio.Manager
	keys   *KeyMapper
	config core.RuntimeConfig

	pending    core.Command // At most one command is consumed per tick
	state      core.GameState
	resultSave bool // Whether the finished session has been recorded
	showDebug  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(g *game.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.TermW, cfg.TermH),
		store:  store,
		sound:  sound,
		keys:   NewKeyMapper(),
		config: cfg,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.sound.StartMusic()
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.TermW = msg.Width
		m.config.TermH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game commands are buffered and
// consumed on the next tick, platform keys act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m":
		m.sound.ToggleMusic()
		return m, nil
	case "tab":
		m.showDebug = !m.showDebug
		return m, nil
	case "r":
		if m.state.GameOver {
			m.config.Seed = time.Now().UnixNano()
			m.game.Reset(m.config)
			m.state = m.game.State()
			m.resultSave = false
			m.pending = core.CmdNone
		}
		return m, nil
	}

	cmd, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != core.CmdNone {
		m.pending = cmd
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.pending)
	m.pending = core.CmdNone
	m.state = result.State

	if result.HasBump() {
		m.sound.Pulse()
	}
	for _, e := range result.Events {
		if e.Kind == core.EventPickup {
			m.sound.Chime()
		}
	}

	// Record the finished session once
	if m.state.GameOver && !m.resultSave {
		if m.store != nil {
			snap := m.game.Snapshot()
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.SessionResult{
				Score: snap.Score,
				Pills: snap.Pills,
				Won:   snap.Won,
				Ticks: snap.Tick,
				Seed:  m.config.Seed,
			})
		}
		m.resultSave = true
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderSnapshot(m.screen, m.game.Snapshot(), m.showDebug)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one play session.
func Run(g *game.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
