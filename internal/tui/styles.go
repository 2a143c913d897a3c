package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"bankist/internal/models"
	"bankist/internal/session"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#444444"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	balanceStyle    = lipgloss.NewStyle().Bold(true)
	timerStyle      = lipgloss.NewStyle().Bold(true)
	formTitleStyle  = lipgloss.NewStyle().Width(16).Bold(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#e52a5a"))
	depositStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#39b385"))
	withdrawalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e52a5a"))

	badgeStyle = lipgloss.NewStyle().Width(16).Padding(0, 1).Foreground(lipgloss.Color("#ffffff"))
	dateStyle  = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("#666666"))
	valueStyle = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
)

func renderRow(row session.MovementRow) string {
	badge := badgeStyle.Background(lipgloss.Color("#39b385"))
	if row.Kind == models.MovementKindWithdrawal {
		badge = badgeStyle.Background(lipgloss.Color("#e52a5a"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		badge.Render(fmt.Sprintf("%d %s", row.Index, row.Kind)),
		" ",
		dateStyle.Render(row.Date),
		valueStyle.Render(row.Amount),
	)
}
