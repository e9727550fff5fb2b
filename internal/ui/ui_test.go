package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FluidXR/lockboxctl/internal/device"
	"github.com/FluidXR/lockboxctl/internal/lockbox"
	"github.com/FluidXR/lockboxctl/internal/trade"
)

func TestStepper(t *testing.T) {
	assert.Empty(t, Stepper(0, 0, 30))

	out := Stepper(1, 3, 29)
	assert.Equal(t, 29, lipgloss.Width(out))
	assert.Equal(t, 3, len(strings.Fields(out)))

	// Indexes past the end still render every segment.
	assert.Equal(t, lipgloss.Width(out), lipgloss.Width(Stepper(3, 3, 29)))
}

func TestRenderPrompt(t *testing.T) {
	ready := lockbox.BuildPrompt(lockbox.Status{Ready: true}, "btc", []string{"Enter PIN", "Open app"})
	out := RenderPrompt(ready, 60)
	assert.Contains(t, out, "Open the App")
	assert.Contains(t, out, "1. Enter PIN")
	assert.Contains(t, out, "2. Open app")
	assert.Contains(t, out, "lockbox-ready")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}

	connect := RenderPrompt(lockbox.BuildPrompt(lockbox.Status{}, "btc", []string{"Enter PIN"}), 0)
	assert.NotContains(t, connect, "Enter PIN")
	assert.Contains(t, connect, "lockbox-connect")
}

func TestRenderDetails(t *testing.T) {
	tr := trade.Trade{
		ID:                9,
		State:             trade.StateProcessing,
		CreatedAt:         time.Date(2018, 3, 7, 16, 5, 0, 0, time.UTC),
		BTCAmount:         decimal.RequireFromString("0.5"),
		FiatAmount:        decimal.RequireFromString("100"),
		FiatCurrency:      "usd",
		BankAccountNumber: "12345678",
	}
	out := RenderDetails(trade.BuildDetails(tr, "", nil, time.UTC), 70)
	assert.Contains(t, out, "Sell Trade Processing")
	assert.Contains(t, out, "Order Details")
	assert.Contains(t, out, "CNY-9")
	assert.Contains(t, out, "March 7 2018 @ 4:05 PM")
	assert.Contains(t, out, "12345678")
	assert.Contains(t, out, "100.00 USD")
	assert.Contains(t, out, "Please note")
}

func TestRenderTradeList(t *testing.T) {
	assert.Equal(t, "No trades stored.", RenderTradeList(nil, nil))

	trades := []trade.Trade{
		{ID: 1, IsBuy: true, State: trade.StateCompleted, BTCAmount: decimal.RequireFromString("0.1")},
		{ID: 2, State: trade.StateCancelled, BTCAmount: decimal.RequireFromString("0.2")},
	}
	out := RenderTradeList(trades, func(trade.Trade) string { return "today" })
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "CNY-1")
	assert.Contains(t, lines[0], "BUY")
	assert.Contains(t, lines[0], "Completed")
	assert.Contains(t, lines[1], "SELL")
	assert.Contains(t, lines[1], "Cancelled")
}

func TestConnectModel_Flow(t *testing.T) {
	ch := make(chan device.Snapshot)
	m := NewConnectModel(ch, "btc", []string{"Enter PIN"}, func(s string) string { return "desk-" + s })
	assert.NotNil(t, m.Init())
	assert.Equal(t, lockbox.StepConnect, m.Step())
	_, seen := m.Result()
	assert.False(t, seen)

	d := &device.Device{Serial: "a1", Model: "nanos", ConnType: device.USB, State: device.StateDevice}
	next, cmd := m.Update(snapshotMsg{Status: lockbox.Status{Ready: true}, Device: d})
	m = next.(ConnectModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, lockbox.StepReady, m.Step())
	view := m.View()
	assert.Contains(t, view, "1. Enter PIN")
	assert.Contains(t, view, "desk-a1")
	assert.Contains(t, view, "q: cancel")

	next, cmd = m.Update(snapshotMsg{Status: lockbox.Status{Success: true}, Device: d})
	m = next.(ConnectModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, lockbox.StepSuccess, m.Step())
	assert.NotContains(t, m.View(), "q: cancel")

	snap, seen := m.Result()
	assert.True(t, seen)
	assert.True(t, snap.Status.Success)
}

func TestConnectModel_ErrorAndCancel(t *testing.T) {
	ch := make(chan device.Snapshot)
	m := NewConnectModel(ch, "btc", nil, nil)

	next, cmd := m.Update(snapshotMsg{Status: lockbox.Status{Error: true}, Err: errors.New("bridge exploded")})
	m = next.(ConnectModel)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "bridge exploded")

	m = NewConnectModel(ch, "btc", nil, nil)
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, lockbox.StepConnect, next.(ConnectModel).Step())
}

func TestConnectModel_MonitorClosed(t *testing.T) {
	ch := make(chan device.Snapshot)
	close(ch)
	m := NewConnectModel(ch, "btc", nil, nil)

	msg := m.waitForSnapshot()()
	assert.IsType(t, monitorDoneMsg{}, msg)
	_, cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
