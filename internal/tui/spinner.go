package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type bootstrapDoneMsg struct{}

// bootstrapModel shows a spinner while the session is being restored.
type bootstrapModel struct {
	spinner spinner.Model
	message string
	done    <-chan struct{}
}

func newBootstrapModel(message string, done <-chan struct{}) bootstrapModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return bootstrapModel{spinner: s, message: message, done: done}
}

func (m bootstrapModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForDone())
}

func (m bootstrapModel) waitForDone() tea.Cmd {
	return func() tea.Msg {
		<-m.done
		return bootstrapDoneMsg{}
	}
}

func (m bootstrapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bootstrapDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m bootstrapModel) View() string {
	return m.spinner.View() + " " + m.message + "\n"
}

// RunWithSpinner runs work while displaying a spinner with the given
// message. Outside an interactive terminal it runs the work directly.
// The work function always runs to completion; ctrl+c only dismisses
// the spinner display.
func RunWithSpinner(ctx context.Context, message string, work func(context.Context)) {
	if !IsInteractive() {
		work(ctx)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		work(ctx)
	}()

	p := tea.NewProgram(newBootstrapModel(message, done))
	if _, err := p.Run(); err != nil {
		// Fall back to waiting without the spinner.
		<-done
		return
	}
	<-done
}
