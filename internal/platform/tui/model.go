package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// footerHeight is the number of rows reserved below the play field.
const footerHeight = 1

// GameModel is the Bubble Tea model that runs one game: it collects input
// between ticks, steps the simulation on every tick and renders the result.
type GameModel struct {
	id          int64 // Tick chain owner
	game        registry.Game
	screen      *core.Screen
	ledger      *storage.Ledger
	logger      *log.Logger
	renderer    *lipgloss.Renderer
	footerStyle lipgloss.Style
	config      core.RuntimeConfig
	keys        GameKeyMap
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	best        int
	recorded    bool // Whether the current run has been written to the ledger
	standalone  bool // Back quits the program instead of returning to a menu
	quitting    bool
	backToMenu  bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := svc.renderer()
	m := GameModel{
		id:          nextID(),
		game:        game,
		screen:      core.NewScreen(cfg.ScreenW, fieldRows(cfg.ScreenH)),
		ledger:      svc.Ledger,
		logger:      svc.Logger,
		renderer:    r,
		footerStyle: r.NewStyle().Foreground(lipgloss.Color("245")),
		config:      cfg,
		keys:        DefaultGameKeyMap(),
		help:        newHelp(r),
		inputFrame:  core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.best = m.loadBest()
	return m
}

func fieldRows(screenH int) int {
	return core.Max(screenH-footerHeight, 1)
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, fieldRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	// Anything else is ignored
	return m, nil
}

// handleAction applies an input action. Quit takes effect immediately;
// gameplay actions are buffered for the next tick.
func (m GameModel) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks. Ticks from another model's chain
// are dropped so exactly one chain drives the game.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.id || m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Restarted {
		m.recorded = false
	}

	// Record the run once, on the tick it ends
	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.id)
}

// recordRun writes the finished run to the ledger. Failures are logged and
// otherwise ignored; the game continues regardless.
func (m *GameModel) recordRun() {
	if m.ledger == nil {
		return
	}

	_, err := m.ledger.Record(storage.Run{
		GameID:     m.game.ID(),
		Player:     m.config.Player,
		Score:      m.gameState.Score,
		Ticks:      m.gameState.Ticks,
		Autopilots: m.gameState.Autopilots,
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not record run", "game", m.game.ID(), "error", err)
		}
		return
	}

	if m.logger != nil {
		m.logger.Debug("run recorded",
			"game", m.game.ID(),
			"player", m.config.Player,
			"score", m.gameState.Score,
			"ticks", m.gameState.Ticks,
		)
	}
	m.best = m.loadBest()
}

func (m GameModel) loadBest() int {
	if m.ledger == nil {
		return 0
	}
	best, err := m.ledger.Best(m.game.ID())
	if err != nil {
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.renderer) + "\n" + m.footer()
}

// footer shows the key help and the session best.
func (m GameModel) footer() string {
	line := m.help.View(m.keys)
	if m.ledger != nil {
		line = fmt.Sprintf("%s  %s", m.footerStyle.Render(fmt.Sprintf("session best: %d", m.best)), line)
	}
	return line
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
