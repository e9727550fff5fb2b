package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FluidXR/lockboxctl/internal/lockbox"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 60

// Stepper draws current of total as a row of segments. current is 0-based and
// may exceed total, in which case every segment is filled.
func Stepper(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	seg := (width - (total - 1)) / total
	if seg < 1 {
		seg = 1
	}
	parts := make([]string, total)
	for i := 0; i < total; i++ {
		bar := strings.Repeat("━", seg)
		if i <= current {
			parts[i] = stepDoneStyle.Render(bar)
		} else {
			parts[i] = stepPendingStyle.Render(bar)
		}
	}
	return strings.Join(parts, " ")
}

// RenderPrompt draws the connection prompt as a bordered card.
func RenderPrompt(p lockbox.Prompt, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	inner := width - modalStyle.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	image := p.Image
	if len(p.Marquees) > 0 {
		lines := make([]string, len(p.Marquees))
		for i, m := range p.Marquees {
			lines[i] = marqueeStyle.Render(m)
		}
		image = lipgloss.JoinVertical(lipgloss.Left, append([]string{image}, lines...)...)
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		Stepper(p.CurrentStep, p.TotalSteps, inner),
		"",
		titleStyle.Width(inner).Render(p.Title),
		"",
		contentStyle.Width(inner).Render(p.Content),
		"",
		imageStyle.Width(inner-imageStyle.GetHorizontalFrameSize()).Render(image),
	)
	return modalStyle.Width(width - modalStyle.GetHorizontalBorderSize()).Render(body)
}
