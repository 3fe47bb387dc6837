package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockout/internal/core"
)

// Game is the simulation the platform drives: pure logic stepped once per
// tick, rendered into a cell buffer.
type Game interface {
	ID() string
	Title() string
	Reset(core.RuntimeConfig)
	Step(core.InputFrame) core.StepResult
	State() core.GameState
	Render(*core.Screen)
}

// Options tweak platform behavior.
type Options struct {
	NoBell bool // Suppress the terminal bell on hit/miss events
}

// Model is the Bubble Tea model driving the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.inputFrame.Set(core.ActionLeft)

	case key.Matches(msg, m.keys.Right):
		m.inputFrame.Set(core.ActionRight)

	case key.Matches(msg, m.keys.Launch):
		m.inputFrame.Set(core.ActionLaunch)

	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)

	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleMouse feeds the pointer column into the input frame so the paddle
// can track the mouse.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(msg.X)
	return m, nil
}

// handleResize processes window resize events. The bottom terminal row is
// reserved for the help bar.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - 1
	m.help.Width = msg.Width
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// The playfield layout depends on the screen size, so a resize restarts
	// the round unless the run is already over.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart after game over reseeds the run
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.opts.NoBell {
		ringBell(result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// ringBell sounds the terminal bell for impactful events. Written to stderr
// so it does not interfere with the renderer's stdout stream.
func ringBell(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventBrickDestroyed, core.EventMiss, core.EventLevelClear, core.EventGameOver:
			os.Stderr.WriteString("\a") //nolint:errcheck // Best-effort chime
			return
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Paddle follows the mouse
	)

	_, err := p.Run()
	return err
}
