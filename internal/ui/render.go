// Package ui draws the sidebar dashboard. It renders whatever the tab report
// says and applies no classification of its own.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ghostmon/agent/internal/reports"
	"github.com/ghostmon/agent/internal/types"
)

// Renderer draws one frame per tab report at a fixed panel width.
type Renderer struct {
	width int
}

func NewRenderer(width int) *Renderer {
	return &Renderer{width: width}
}

// Render produces the full dashboard frame: one bordered panel per tab plus
// the footer summary.
func (r *Renderer) Render(report *reports.TabReport) string {
	parts := make([]string, 0, len(report.Tabs)+2)
	for i := range report.Tabs {
		parts = append(parts, r.renderTab(&report.Tabs[i]))
	}

	parts = append(parts, "", footerStyle.Width(r.width).Render(report.Summary()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) renderTab(tab *reports.TabSession) string {
	innerWidth := r.width - 4 // border + padding

	lines := []string{
		labelStyle.Render(truncate(tab.Label, innerWidth)),
		uptimeStyle.Render(types.FormatDuration(tab.TabUptime)),
		statusStyle(tab.Status).Render(tab.Status.Label()),
	}

	if tab.ActiveCommand.Valid {
		lines = append(lines, commandStyle.Render(truncate("$ "+tab.ActiveCommand.String, innerWidth)))
	}

	if len(tab.Background) > 0 {
		bg := "bg: " + strings.Join(tab.Background, ", ")
		lines = append(lines, bgStyle.Render(truncate(bg, innerWidth)))
	}

	if tab.AgentUptime.Valid {
		agentAge := types.FormatDuration(time.Duration(tab.AgentUptime.Int64) * time.Second)
		lines = append(lines, agentAgeStyle.Render(fmt.Sprintf("claude: %s", agentAge)))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(statusColor(tab.Status)).
		Padding(0, 1).
		Width(r.width - 2)

	return panel.Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
