package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Services holds what every model of one session shares.
type Services struct {
	// Ledger records finished runs. May be nil.
	Ledger *storage.Ledger

	// Logger may be nil.
	Logger *log.Logger

	// Renderer carries the color profile of the terminal the session is
	// drawn on. SSH sessions need their own; nil means the local terminal.
	Renderer *lipgloss.Renderer

	// Games is the validated configuration new games are created with.
	Games config.FlappyConfig
}

// renderer returns the session renderer, falling back to the local terminal.
func (s Services) renderer() *lipgloss.Renderer {
	if s.Renderer == nil {
		return lipgloss.DefaultRenderer()
	}
	return s.Renderer
}

// newHelp creates a help view whose styles render through r.
func newHelp(r *lipgloss.Renderer) help.Model {
	keyStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	descStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sepStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})

	h := help.New()
	h.Styles = help.Styles{
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		Ellipsis:       sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
	return h
}

// tableStyles mirrors the bubbles defaults, rendered through r.
func tableStyles(r *lipgloss.Renderer) table.Styles {
	return table.Styles{
		Header:   r.NewStyle().Bold(true).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	}
}
