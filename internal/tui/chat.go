// Package tui implements an interactive chat session that drives the
// extraction pipeline, for trying grammars without a chat transport.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duitbot/duitbot/internal/model"
	"github.com/duitbot/duitbot/internal/pipeline"
	"github.com/duitbot/duitbot/internal/reply"
)

var (
	userStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#95E1D3"))
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// Model is the bubbletea model for the chat session.
type Model struct {
	pipe  *pipeline.Pipeline
	input textinput.Model
	lines []string
	err   error
}

// NewModel creates a chat model around a pipeline.
func NewModel(pipe *pipeline.Pipeline) Model {
	input := textinput.New()
	input.Placeholder = "catat pengeluaran 50000 untuk makan"
	input.Focus()
	input.CharLimit = 280
	input.Width = 60

	return Model{
		pipe:  pipe,
		input: input,
		lines: []string{hintStyle.Render("Ketik pesan transaksi, atau \"bantuan\". Ctrl+C untuk keluar.")},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.lines = append(m.lines, userStyle.Render("anda> ")+text)
			m.lines = append(m.lines, botStyle.Render(m.respond(text)))
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) respond(text string) string {
	result, err := m.pipe.Process(context.Background(), model.Message{Body: text})
	if err != nil {
		return fmt.Sprintf("kesalahan: %v", err)
	}
	return reply.FormatResult(result)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive chat session and blocks until it exits.
func Run(pipe *pipeline.Pipeline) error {
	program := tea.NewProgram(NewModel(pipe))
	_, err := program.Run()
	return err
}
