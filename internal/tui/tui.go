package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/learnlog/internal/models"
)

// RunDashboard starts the interactive dashboard
func RunDashboard(sessions []models.Session, minDate, today time.Time) error {
	model := NewDashboardModel(sessions, minDate, today)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
