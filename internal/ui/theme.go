package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ghostmon/agent/internal/detection"
)

var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
	colorDim    = lipgloss.Color("8")
)

var statusColors = map[detection.Status]lipgloss.Color{
	detection.StatusActive:    colorGreen,
	detection.StatusThinking:  colorYellow,
	detection.StatusWaiting:   colorBlue,
	detection.StatusIdleShell: colorDim,
}

func statusColor(status detection.Status) lipgloss.Color {
	if color, found := statusColors[status]; found {
		return color
	}
	return colorDim
}

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	uptimeStyle   = lipgloss.NewStyle().Faint(true)
	commandStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	bgStyle       = lipgloss.NewStyle().Foreground(colorCyan).Faint(true)
	agentAgeStyle = lipgloss.NewStyle().Faint(true)
	footerStyle   = lipgloss.NewStyle().Faint(true).Align(lipgloss.Center)
)

func statusStyle(status detection.Status) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(statusColor(status))
	if status == detection.StatusIdleShell {
		return style.Faint(true)
	}
	return style.Bold(true)
}
