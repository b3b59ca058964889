package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("expected SessionModel, got %T", next)
	}
	return sm, cmd
}

func selectEntry(t *testing.T, m SessionModel, id string) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == id {
			m.menu.cursor = i
			m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			return m
		}
	}
	t.Fatalf("menu entry %q not found", id)
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Services{Ledger: newTestLedger(t), Games: config.DefaultFlappyConfig()}, testConfig())

	m = selectEntry(t, m, "flappy")
	if m.view != viewGame || m.game == nil {
		t.Fatal("expected game view after selecting flappy")
	}

	m, _ = sessionUpdate(t, m, TickMsg{ID: m.game.id})
	if m.game.State().Ticks != 1 {
		t.Errorf("expected 1 tick, got %d", m.game.State().Ticks)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu || m.game != nil {
		t.Error("expected back at the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("expected a fresh menu without selection")
	}
}

func TestSessionLeaderboard(t *testing.T) {
	m := NewSessionModel(Services{Ledger: newTestLedger(t), Games: config.DefaultFlappyConfig()}, testConfig())

	m = selectEntry(t, m, leaderboardID)
	if m.view != viewLeaderboard || m.leaderboard == nil {
		t.Fatal("expected leaderboard view")
	}
	if m.View() == "" {
		t.Error("expected leaderboard output")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Error("expected back at the menu")
	}
}

func TestSessionWithoutLedgerHasNoLeaderboard(t *testing.T) {
	m := NewSessionModel(Services{Games: config.DefaultFlappyConfig()}, testConfig())
	for _, item := range m.menu.items {
		if item.GameID == leaderboardID {
			t.Fatal("leaderboard entry requires a ledger")
		}
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(Services{Games: config.DefaultFlappyConfig()}, testConfig())
	m = selectEntry(t, m, "flappy_solo")

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatal("expected quit from the game")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestSessionReentryIgnoresPreviousTickChain(t *testing.T) {
	m := NewSessionModel(Services{Games: config.DefaultFlappyConfig()}, testConfig())

	m = selectEntry(t, m, "flappy")
	staleID := m.game.id

	// Leave and re-enter before the first game's pending tick lands
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	m = selectEntry(t, m, "flappy")
	if m.game.id == staleID {
		t.Fatal("re-entered game reuses the previous tick id")
	}

	m, cmd := sessionUpdate(t, m, TickMsg{ID: staleID})
	if cmd != nil || m.game.State().Ticks != 0 {
		t.Errorf("stale tick advanced the new game to %d ticks", m.game.State().Ticks)
	}

	m, _ = sessionUpdate(t, m, TickMsg{ID: m.game.id})
	if m.game.State().Ticks != 1 {
		t.Errorf("expected 1 tick, got %d", m.game.State().Ticks)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(Services{}, testConfig())
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	next, _ := m.Update(up)
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.cursor)
	}

	for range len(m.items) + 3 {
		next, _ = m.Update(down)
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last entry %d", m.cursor, len(m.items)-1)
	}
}
