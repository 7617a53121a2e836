package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusClearDelay is how long transient success feedback stays visible.
const statusClearDelay = 2500 * time.Millisecond

type statusClearMsg struct{}

func statusClearCmd() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e8d5b5"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e8d5b5")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b"))

	selectedStyle = lipgloss.NewStyle().
			Reverse(true)

	primaryMarkStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e8d5b5"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff6b6b")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)
