package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// taskroll theme (CLI + TUI).

const (
	IconList    = "📋"
	IconPlus    = "➕"
	IconRemove  = "🗑️"
	IconSort    = "↕️"
	IconClock   = "🕛"
	IconLoop    = "🔁"
	IconError   = "🧨"
	IconPointer = "▸"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelFocus  = Panel.BorderForeground(cAccent)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(lipgloss.Color("240"))
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PriorityStyle colors a priority: red at 3 and above, orange from 1,
// green below.
func PriorityStyle(priority float64) lipgloss.Style {
	switch {
	case priority >= 3:
		return Bad
	case priority >= 1:
		return Warn
	default:
		return Good
	}
}

// RowText renders a projected row. Selected rows get the gray highlight,
// matching the list's selection background.
func RowText(label string, selected bool) string {
	if selected {
		return SelectedRow.Render(label)
	}
	return label
}
