package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/FluidXR/lockboxctl/internal/device"
	"github.com/FluidXR/lockboxctl/internal/lockbox"
)

type snapshotMsg device.Snapshot

type monitorDoneMsg struct{}

// ConnectModel is the interactive connection prompt. It redraws on every
// snapshot from the monitor and exits once the flow reaches a terminal step.
type ConnectModel struct {
	snapshots <-chan device.Snapshot
	coin      string
	marquees  []string
	label     func(serial string) string

	spinner  spinner.Model
	last     device.Snapshot
	seen     bool
	width    int
	quitting bool
}

// NewConnectModel wires a model to a running monitor. label maps a serial to
// a display name and may be nil.
func NewConnectModel(snapshots <-chan device.Snapshot, coin string, marquees []string, label func(string) string) ConnectModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = marqueeStyle
	if label == nil {
		label = func(serial string) string { return serial }
	}
	return ConnectModel{
		snapshots: snapshots,
		coin:      coin,
		marquees:  marquees,
		label:     label,
		spinner:   s,
		width:     DefaultWidth,
	}
}

func (m ConnectModel) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.snapshots
		if !ok {
			return monitorDoneMsg{}
		}
		return snapshotMsg(snap)
	}
}

// Init initializes the model.
func (m ConnectModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForSnapshot())
}

// Update handles messages and updates the model.
func (m ConnectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < DefaultWidth {
			m.width = msg.Width
		}
		return m, nil

	case snapshotMsg:
		m.last = device.Snapshot(msg)
		m.seen = true
		if m.Step().IsTerminal() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.waitForSnapshot()

	case monitorDoneMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Step returns the step for the most recent snapshot.
func (m ConnectModel) Step() lockbox.StepName {
	return lockbox.SelectStep(m.last.Status).Name
}

// Result returns the last snapshot seen, if any.
func (m ConnectModel) Result() (device.Snapshot, bool) {
	return m.last, m.seen
}

// View renders the current prompt.
func (m ConnectModel) View() string {
	p := lockbox.BuildPrompt(m.last.Status, m.coin, m.marquees)
	var b strings.Builder
	b.WriteString(RenderPrompt(p, m.width))
	b.WriteString("\n")

	switch {
	case m.last.Err != nil:
		b.WriteString(errorStyle.Render(m.last.Err.Error()))
	case m.last.Device != nil:
		d := m.last.Device
		b.WriteString(contentStyle.Render(m.label(d.Serial) + " " + d.Model + " [" + string(d.ConnType) + "]"))
	}

	if !m.quitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " waiting for device")
		b.WriteString(helpStyle.Render("q: cancel"))
	}
	b.WriteString("\n")
	return b.String()
}
