package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"macaron/internal/task"
)

// Macaron theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "📝"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconPending = "⏳"
	IconOverdue = "⏰"
	IconArchive = "📦"
	IconChart   = "📊"
	IconFlame   = "🔥"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTicket  = "🎟️"
)

// The macaron palette the app is named for.
var (
	cPink  = lipgloss.Color("#FFB7B2")
	cMint  = lipgloss.Color("#B5EAD7")
	cPeach = lipgloss.Color("#FFDAC1")
	cSky   = lipgloss.Color("#C7CEEA")
	cCoral = lipgloss.Color("#FF9AA2")
	cMuted = lipgloss.Color("244")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPink)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cSky)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cSky)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cMint)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cPeach)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cCoral)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cPink)
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

func PriorityText(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return Bad.Render("high")
	case task.PriorityMedium:
		return Warn.Render("medium")
	case task.PriorityLow:
		return Good.Render("low")
	default:
		return Muted.Render(string(p))
	}
}

func StatusText(t task.Task) string {
	switch {
	case t.IsArchived:
		return Muted.Render("archived")
	case t.IsCompleted:
		return Good.Render("done")
	default:
		return Warn.Render("pending")
	}
}

func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return "[ ]"
}
