package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type styles struct {
	title     lipgloss.Style
	status    lipgloss.Style
	score     lipgloss.Style
	scoreBump lipgloss.Style
	separator lipgloss.Style
	notice    lipgloss.Style

	markX lipgloss.Style
	markO lipgloss.Style
	empty lipgloss.Style

	accent lipgloss.Color
	muted  lipgloss.Color
}

func newStyles(theme config.Theme) styles {
	accent := lipgloss.Color(theme.AccentColor)
	muted := lipgloss.Color(theme.MutedColor)

	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		status:    lipgloss.NewStyle().Bold(true),
		score:     lipgloss.NewStyle().Foreground(muted),
		scoreBump: lipgloss.NewStyle().Bold(true).Foreground(accent),
		separator: lipgloss.NewStyle().Foreground(muted),
		notice:    lipgloss.NewStyle().Italic(true).Foreground(muted),

		markX: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.XColor)),
		markO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.OColor)),
		empty: lipgloss.NewStyle().Foreground(muted),

		accent: accent,
		muted:  muted,
	}
}

func (that styles) mark(player entity.Player) lipgloss.Style {
	if player == entity.PlayerO {
		return that.markO
	}
	return that.markX
}
