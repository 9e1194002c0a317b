// Package tui is the terminal backend: the same event log as the GUI,
// rendered with Bubble Tea.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"discord-watcher/internal/ui"
)

type botNameMsg string
type eventMsg string

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	joinedStyle = lipgloss.NewStyle().Bold(true)
	leftStyle   = lipgloss.NewStyle().Strikethrough(true)
	plainStyle  = lipgloss.NewStyle()
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	botName string
	events  []string
	width   int
	height  int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "c":
			m.events = nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case botNameMsg:
		m.botName = string(msg)
	case eventMsg:
		m.events = append([]string{string(msg)}, m.events...)
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Discord Events"))
	b.WriteString("\n")
	status := "connecting..."
	if m.botName != "" {
		status = "connected as " + m.botName
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	visible := m.events
	if m.height > 6 && len(visible) > m.height-6 {
		visible = visible[:m.height-6]
	}
	for _, line := range visible {
		b.WriteString("  " + styleFor(line).Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  c: clear  q: quit"))
	return b.String()
}

func styleFor(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "joined"):
		return joinedStyle
	case strings.Contains(line, "left"):
		return leftStyle
	}
	return plainStyle
}

// App wraps the Bubble Tea program and implements ui.View through Send,
// which is safe from any goroutine.
type App struct {
	prog *tea.Program
}

func New() *App {
	return &App{prog: tea.NewProgram(model{}, tea.WithAltScreen())}
}

func (a *App) SetBotName(name string) {
	a.prog.Send(botNameMsg(name))
}

func (a *App) Prepend(line string) {
	a.prog.Send(eventMsg(line))
}

// Run blocks on the Bubble Tea loop.
func (a *App) Run() error {
	_, err := a.prog.Run()
	return err
}

func (a *App) Quit() {
	a.prog.Quit()
}

var _ ui.View = (*App)(nil)
