package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pintask/internal/config"
)

type styles struct {
	title       lipgloss.Style
	section     lipgloss.Style
	row         lipgloss.Style
	selected    lipgloss.Style
	placeholder lipgloss.Style
	err         lipgloss.Style
}

func newStyles(theme config.ThemeSettings) styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)

	return styles{
		title:       lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		section:     lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1),
		row:         lipgloss.NewStyle().PaddingLeft(2),
		selected:    lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(accent),
		placeholder: lipgloss.NewStyle().PaddingLeft(2).Italic(true).Foreground(muted),
		err:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
	}
}
