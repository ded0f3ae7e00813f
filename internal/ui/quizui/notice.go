package quizui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// noticeLifetime is how long a toast stays in the footer before auto-hiding.
const noticeLifetime = 3 * time.Second

// Severity classifies a notice for styling.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// Notice is a transient footer message shown after an interaction.
type Notice struct {
	Message  string
	Severity Severity
}

// noticeColor maps a severity to a foreground color.
func noticeColor(severity Severity) lipgloss.Color {
	switch severity {
	case SeveritySuccess:
		return lipgloss.Color("42")
	case SeverityWarning:
		return lipgloss.Color("214")
	case SeverityError:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("39")
	}
}

// renderNotice renders the footer toast, or nothing when the notice is empty.
func renderNotice(notice Notice, noColor bool) string {
	if notice.Message == "" {
		return ""
	}
	return stylize(notice.Message, noColor, noticeColor(notice.Severity))
}
