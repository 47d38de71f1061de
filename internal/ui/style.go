package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/taskdesk/taskdesk/task"
)

var (
	cHigh    = lipgloss.Color("196") // red
	cMedium  = lipgloss.Color("214") // orange
	cLow     = lipgloss.Color("42")  // green
	cMuted   = lipgloss.Color("244") // gray
	cOverdue = lipgloss.Color("196") // red
	cAccent  = lipgloss.Color("63")  // blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Muted = lipgloss.NewStyle().Foreground(cMuted)

	highStyle    = lipgloss.NewStyle().Bold(true).Foreground(cHigh)
	mediumStyle  = lipgloss.NewStyle().Foreground(cMedium)
	lowStyle     = lipgloss.NewStyle().Foreground(cLow)
	doneStyle    = lipgloss.NewStyle().Foreground(cMuted).Strikethrough(true)
	overdueStyle = lipgloss.NewStyle().Bold(true).Foreground(cOverdue)
)

// StylePriority renders a priority label in its color.
func StylePriority(p task.Priority) string {
	if !colorEnabled() {
		return string(p)
	}
	switch p {
	case task.PriorityHigh:
		return highStyle.Render(string(p))
	case task.PriorityMedium:
		return mediumStyle.Render(string(p))
	case task.PriorityLow:
		return lowStyle.Render(string(p))
	default:
		return string(p)
	}
}

// StyleTitle renders a task title, struck through when completed and
// highlighted when overdue.
func StyleTitle(t task.Task, overdue bool) string {
	title := TruncateTableCell(t.Title)
	if !colorEnabled() {
		return title
	}
	if t.Status == task.StatusCompleted {
		return doneStyle.Render(title)
	}
	if overdue {
		return overdueStyle.Render(title)
	}
	return title
}

// StyleDue renders a due-date cell, highlighted when overdue.
func StyleDue(due string, overdue bool) string {
	if due == "" {
		return "-"
	}
	if overdue && colorEnabled() {
		return overdueStyle.Render(due)
	}
	return due
}

func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
