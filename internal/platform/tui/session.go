package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewLeaderboard
)

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// It is the top-level model for both the local menu and SSH sessions.
type SessionModel struct {
	svc         Services
	config      core.RuntimeConfig
	view        sessionView
	menu        MenuModel
	game        *GameModel
	leaderboard *LeaderboardModel
	quitting    bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		svc:    svc,
		config: cfg,
		menu:   NewMenuModel(svc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so every sub-view starts at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewLeaderboard:
		return m.updateLeaderboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	if selected.GameID == leaderboardID {
		lb := NewLeaderboardModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		m.leaderboard = &lb
		m.view = viewLeaderboard
		return m, lb.Init()
	}

	game, err := registry.Create(selected.GameID, m.svc.Games)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.menu = NewMenuModel(m.svc, m.config)
		return m, nil
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	gm := NewGameModel(game, m.svc, cfg)
	m.game = &gm
	m.view = viewGame
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateLeaderboard handles updates when the leaderboard is shown.
func (m SessionModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.leaderboard.Update(msg)
	if lb, ok := newModel.(LeaderboardModel); ok {
		m.leaderboard = &lb
	}

	if m.leaderboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.leaderboard.GoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu drops the active sub-view and shows a fresh menu.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.game = nil
	m.leaderboard = nil
	m.menu = NewMenuModel(m.svc, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewLeaderboard:
		return m.leaderboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the interactive menu in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(svc, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
