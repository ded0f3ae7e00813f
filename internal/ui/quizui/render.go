package quizui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizren/internal/quiz"
	"quizren/internal/session"
)

// View renders the quiz as a stack of question cards plus footer chrome.
func (m Model) View() string {
	document := m.session.Document()
	states := m.session.Snapshot()

	answered, total := m.session.Summary()
	sections := []string{m.renderHeader(answered, total)}
	for i := range document {
		sections = append(sections, m.renderQuestion(i, document[i], states[i]))
	}
	if m.confirming {
		prompt := fmt.Sprintf("You have answered %d out of %d questions. Submit anyway? [y/n]",
			m.pending.Answered, m.pending.Total)
		sections = append(sections, stylize(prompt, m.noColor, lipgloss.Color("214")))
	}
	if m.submitted {
		line := fmt.Sprintf("Submitted: %d of %d questions answered.", m.summary.Answered, m.summary.Total)
		sections = append(sections, stylize(line, m.noColor, lipgloss.Color("42")))
	}
	if notice := renderNotice(m.notice, m.noColor); notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title line with the running answer count.
func (m Model) renderHeader(answered, total int) string {
	line := fmt.Sprintf("Quiz Questions | %d answered of %d", answered, total)
	return stylize(line, m.noColor, lipgloss.Color("33"))
}

// renderQuestion renders one question card: prompt, choices, and the
// feedback panel once the question has been checked.
func (m Model) renderQuestion(index int, question quiz.Question, state session.QuestionState) string {
	focused := index == m.cursor

	var body strings.Builder
	body.WriteString(fmt.Sprintf("%d. %s\n", index+1, question.Prompt))
	for j, choice := range question.Choices {
		body.WriteString(m.renderChoice(index, j, choice, state, focused))
		body.WriteByte('\n')
	}
	if panel := m.renderFeedback(question, state); panel != "" {
		body.WriteString(panel)
		body.WriteByte('\n')
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !m.noColor {
		style = style.BorderForeground(cardBorderColor(state.Phase, focused))
	}
	return style.Render(strings.TrimRight(body.String(), "\n"))
}

// renderChoice renders one selectable line with highlight and selection
// markers. Correctness is never shown before the question is checked.
func (m Model) renderChoice(questionIndex, choiceIndex int, choice quiz.Choice, state session.QuestionState, focused bool) string {
	highlight := " "
	if focused && m.choices[questionIndex] == choiceIndex {
		highlight = ">"
	}
	marker := "( )"
	if state.Selected == choiceIndex {
		marker = "(•)"
	}
	line := fmt.Sprintf(" %s %s %d) %s", highlight, marker, choiceIndex+1, choice.Text)

	if state.Phase != session.Unanswered && state.Selected == choiceIndex {
		if choice.Correct {
			return stylize(line+"  ✓", m.noColor, lipgloss.Color("42"))
		}
		return stylize(line+"  ✗", m.noColor, lipgloss.Color("196"))
	}
	if focused && m.choices[questionIndex] == choiceIndex && !m.noColor {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Render(line)
	}
	return line
}

// renderFeedback renders the feedback panel for a checked question.
func (m Model) renderFeedback(question quiz.Question, state session.QuestionState) string {
	switch state.Phase {
	case session.Correct:
		return stylize("Correct! "+question.Feedback.Correct, m.noColor, lipgloss.Color("42"))
	case session.Incorrect:
		return stylize("Incorrect. "+question.Feedback.Incorrect+" (r to retry)", m.noColor, lipgloss.Color("196"))
	default:
		return ""
	}
}

// cardBorderColor picks the card border: green once correct, red while
// incorrect, highlight for the focused card.
func cardBorderColor(phase session.Phase, focused bool) lipgloss.Color {
	switch phase {
	case session.Correct:
		return lipgloss.Color("42")
	case session.Incorrect:
		return lipgloss.Color("196")
	}
	if focused {
		return lipgloss.Color("39")
	}
	return lipgloss.Color("240")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
