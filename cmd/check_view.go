package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"valkey-health/pkg/probe"
)

var styleHealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B785")).Bold(true)
var styleUnhealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1244c")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)

var styleFaultWrapper = lipgloss.NewStyle().Padding(0, 0).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E1244C"))
var styleFaultHeading = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1244C")).Bold(true)
var styleFaultBody = lipgloss.NewStyle().PaddingLeft(3).Foreground(lipgloss.Color("#E1244C")).Width(80).MaxWidth(80)

func renderOutcome(outcome probe.Outcome) string {
	switch outcome.Status {
	case probe.StatusHealthy:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleHealthy.Render("▶︎"), " ",
			styleHighlight.Render("valkey"), " is ",
			styleHealthy.Render("healthy"),
		)
	case probe.StatusUnhealthy:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleUnhealthy.Render("◼︎"), " ",
			styleHighlight.Render("valkey"), " is ",
			styleUnhealthy.Render("unhealthy"),
		)
	default:
		return styleFaultWrapper.Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				styleFaultHeading.Render("💥 THE PROBE COULD NOT BE EXECUTED"),
				styleFaultBody.Render(outcome.Fault),
			),
		)
	}
}
