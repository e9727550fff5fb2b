package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/FluidXR/lockboxctl/internal/trade"
)

func renderTable(t trade.Table, width int) string {
	labelWidth := 0
	for _, r := range t.Rows {
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
	}
	lines := []string{tableTitleStyle.Render(t.Title)}
	for _, r := range t.Rows {
		label := rowLabelStyle.Width(labelWidth + 2).Render(r.Label)
		valueWidth := width - labelWidth - 2
		if valueWidth < 1 {
			valueWidth = 1
		}
		value := lipgloss.NewStyle().
			Foreground(colorFor(r.Color)).
			Width(valueWidth).
			Align(lipgloss.Right).
			Render(r.Value)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}
	return strings.Join(lines, "\n")
}

// RenderDetails draws a trade details card.
func RenderDetails(d trade.Details, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	inner := width - modalStyle.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(colorFor(d.Header.Color)).
		Render(d.Title + " " + d.Header.Text)

	sections := []string{
		header,
		"",
		lipgloss.NewStyle().Width(inner).Render(d.Body.Text),
	}
	for _, t := range d.Tables {
		sections = append(sections, renderTable(t, inner))
	}
	if d.Footnote != "" {
		sections = append(sections, footnoteStyle.Width(inner).Render(d.Footnote))
	}
	if d.Recurring != nil {
		sections = append(sections, tableTitleStyle.Render(d.Recurring.Summary))
		for _, n := range d.Recurring.Notes {
			sections = append(sections, footnoteStyle.Width(inner).Render(n))
		}
	}
	return modalStyle.Width(width - modalStyle.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// RenderTradeList draws one line per trade: id, date, side, state and amount.
func RenderTradeList(trades []trade.Trade, dateOf func(trade.Trade) string) string {
	if len(trades) == 0 {
		return "No trades stored."
	}
	var b strings.Builder
	for _, t := range trades {
		side := "SELL"
		if t.IsBuy {
			side = "BUY"
		}
		h := trade.HeaderStatus(t.State)
		status := lipgloss.NewStyle().Foreground(colorFor(h.Color)).Render(h.Text)
		a := trade.RenderDetails(t)
		b.WriteString(strings.Join([]string{
			lipgloss.NewStyle().Width(10).Render(fmt.Sprintf("CNY-%d", t.ID)),
			lipgloss.NewStyle().Width(26).Render(dateOf(t)),
			lipgloss.NewStyle().Width(5).Render(side),
			lipgloss.NewStyle().Width(16).Render(a.BTCAmount),
			status,
		}, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
