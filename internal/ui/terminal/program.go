package terminal

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paul0314/fitts-experiment/internal/app"
	"github.com/paul0314/fitts-experiment/internal/core/model"
)

// Program is the bubbletea model driving the launcher's current view.
// A restart replaces the view; Program keeps the terminal size across it.
type Program struct {
	launcher *app.Launcher[*View]
	width    int
	height   int
}

// NewProgram wraps a launcher whose first session has already been launched.
func NewProgram(launcher *app.Launcher[*View]) *Program {
	return &Program{launcher: launcher}
}

func (p *Program) Init() tea.Cmd {
	return nil
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	view := p.launcher.View()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		view.Resize(msg.Width, msg.Height)
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return p, tea.Quit
		case "q":
			if view.Screen() != model.ScreenDialog {
				return p, tea.Quit
			}
		}
	}

	cmd := view.Update(msg)
	if next := p.launcher.View(); next != view && p.width > 0 {
		next.Resize(p.width, p.height)
	}
	return p, cmd
}

func (p *Program) View() string {
	return p.launcher.View().Render()
}

// Run launches the first session and blocks until the user quits.
func Run(launcher *app.Launcher[*View]) error {
	launcher.Launch()
	program := tea.NewProgram(NewProgram(launcher), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
