// Package ui renders lockbox prompts and trade details for the terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/FluidXR/lockboxctl/internal/trade"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	colorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}
	colorGray    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#404040"}
)

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	contentStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Align(lipgloss.Center)

	imageStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			Align(lipgloss.Center)

	marqueeStyle = lipgloss.NewStyle().
			Foreground(colorInfo).
			Faint(true)

	stepDoneStyle    = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	stepPendingStyle = lipgloss.NewStyle().Foreground(colorBorder)

	tableTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	rowLabelStyle   = lipgloss.NewStyle().Faint(true)
	footnoteStyle   = lipgloss.NewStyle().Italic(true).Foreground(colorGray).MarginTop(1)
	helpStyle       = lipgloss.NewStyle().Foreground(colorGray).MarginTop(1)
	errorStyle      = lipgloss.NewStyle().Foreground(colorError)
)

func colorFor(c trade.Color) lipgloss.TerminalColor {
	switch c {
	case trade.ColorSuccess:
		return colorSuccess
	case trade.ColorError:
		return colorError
	case trade.ColorWarning:
		return colorWarning
	case trade.ColorInfo:
		return colorInfo
	case trade.ColorGray:
		return colorGray
	}
	return lipgloss.NoColor{}
}
