package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// maxLeaderboardRuns caps how many runs are listed per game.
const maxLeaderboardRuns = 50

// LeaderboardModel lists the session's best runs per game in a table.
type LeaderboardModel struct {
	games     []registry.GameInfo
	gameIdx   int
	ledger    *storage.Ledger
	table     table.Model
	tab       lipgloss.Style
	activeTab lipgloss.Style
	keys      MenuKeyMap
	help      help.Model
	width     int
	height    int
	loadErr   error
	quitting  bool
	goingBack bool
}

// NewLeaderboardModel creates a leaderboard over the session's ledger.
func NewLeaderboardModel(svc Services, width, height int) LeaderboardModel {
	r := svc.renderer()
	tab := r.NewStyle().Padding(0, 1)
	activeTab := tab.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("2"))

	m := LeaderboardModel{
		games:     registry.List(),
		ledger:    svc.Ledger,
		tab:       tab,
		activeTab: activeTab,
		keys:      DefaultMenuKeyMap(),
		help:      newHelp(r),
		width:     width,
		height:    height,
	}

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Player", Width: 16},
			{Title: "Score", Width: 7},
			{Title: "Ticks", Width: 8},
			{Title: "Rivals left", Width: 12},
			{Title: "Ended", Width: 9},
		}),
		table.WithFocused(true),
		table.WithStyles(tableStyles(r)),
		table.WithHeight(tableHeight(height)),
	)
	m.load()
	return m
}

func tableHeight(screenH int) int {
	// Tabs, blank line and help footer
	h := screenH - 4
	if h < 3 {
		h = 3
	}
	return h
}

// load fills the table with runs of the selected game.
func (m *LeaderboardModel) load() {
	m.loadErr = nil
	if m.ledger == nil || len(m.games) == 0 {
		m.table.SetRows(nil)
		return
	}

	runs, err := m.ledger.TopRuns(m.games[m.gameIdx].ID, maxLeaderboardRuns)
	if err != nil {
		m.loadErr = err
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Autopilots),
			r.EndedAt.Format("15:04:05"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the leaderboard model.
func (m LeaderboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if len(m.games) > 0 {
				m.gameIdx = (m.gameIdx + 1) % len(m.games)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting {
		return ""
	}

	var tabs []string
	for i, g := range m.games {
		style := m.tab
		if i == m.gameIdx {
			style = m.activeTab
		}
		tabs = append(tabs, style.Render(g.Title))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(fmt.Sprintf("could not load runs: %v", m.loadErr))
	case len(m.table.Rows()) == 0:
		b.WriteString("No runs this session yet.")
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(leaderboardHelp{m.keys}))
	return b.String()
}

// GoingBack returns true if the user asked to return to the menu.
func (m LeaderboardModel) GoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user asked to quit.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
