package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// leaderboardID is the menu entry that opens the session leaderboard.
const leaderboardID = "leaderboard"

// menuStyles are built per renderer so each session gets its own color profile.
type menuStyles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	detail   lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	var s menuStyles
	s.title = r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("2")).
		MarginBottom(1)
	s.item = r.NewStyle().PaddingLeft(2)
	s.selected = r.NewStyle().
		PaddingLeft(1).
		Foreground(lipgloss.Color("3")).
		Bold(true)
	s.detail = r.NewStyle().Foreground(lipgloss.Color("245"))
	return s
}

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	ledger   *storage.Ledger
	renderer *lipgloss.Renderer
	styles   menuStyles
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model listing every registered game.
func NewMenuModel(svc Services, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	if svc.Ledger != nil {
		items = append(items, MenuItem{GameID: leaderboardID, Title: "Session leaderboard"})
	}

	r := svc.renderer()
	return MenuModel{
		items:    items,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		ledger:   svc.Ledger,
		renderer: r,
		styles:   newMenuStyles(r),
		keys:     DefaultMenuKeyMap(),
		help:     newHelp(r),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, core.Max(len(m.items)-1, 0))

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, core.Max(len(m.items)-1, 0))

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("FLAPPY ARCADE"))
	b.WriteString("\n")

	for i, item := range m.items {
		line := item.Title
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.item.Render(line))
		}
		if detail := m.detail(item); detail != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.detail.Render(detail))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// detail returns the session summary shown next to a game entry.
func (m MenuModel) detail(item MenuItem) string {
	if m.ledger == nil || item.GameID == leaderboardID {
		return ""
	}
	runs, err := m.ledger.RunCount(item.GameID)
	if err != nil || runs == 0 {
		return ""
	}
	best, err := m.ledger.Best(item.GameID)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("best %d in %d runs", best, runs)
}

// Selected returns the chosen entry, or nil if none was chosen yet.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
