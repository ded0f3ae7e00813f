package quizui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quizren/internal/session"
)

// Model drives the interactive quiz view. It owns cursors and transient
// notices; all interaction state lives in the session, and every gesture goes
// through a session transition rather than being decided here.
type Model struct {
	session *session.Session

	cursor  int   // focused question
	choices []int // highlighted choice per question

	confirming bool // waiting for yes/no on a partial submission
	pending    session.Submission
	submitted  bool
	summary    session.Submission

	notice      Notice
	noticeUntil time.Time
	now         time.Time

	keys    keyMap
	help    help.Model
	noColor bool
	width   int
}

// Options configures the quiz UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a quiz view over a session.
func NewModel(s *session.Session, opts Options) Model {
	return Model{
		session: s,
		choices: make([]int, s.Len()),
		now:     time.Now(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		noColor: opts.NoColor,
	}
}

// tickMsg carries a clock tick used to expire notices.
type tickMsg time.Time

// tickInterval is the notice-expiry resolution.
const tickInterval = 250 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the expiry ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update consumes key presses and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		return m, nil
	case tickMsg:
		m.now = time.Time(typed)
		if m.notice.Message != "" && m.now.After(m.noticeUntil) {
			m.notice = Notice{}
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey routes a key press to the matching gesture.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.confirming {
		return m.handleConfirmKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.PrevQuestion):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.NextQuestion):
		if m.cursor < m.session.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevChoice):
		m.moveChoice(-1)
	case key.Matches(msg, m.keys.NextChoice):
		m.moveChoice(1)
	case key.Matches(msg, m.keys.Select):
		m = m.selectChoice(m.highlightedChoice())
	case key.Matches(msg, m.keys.Check):
		m = m.check()
	case key.Matches(msg, m.keys.Retry):
		m = m.retry()
	case key.Matches(msg, m.keys.Submit):
		m = m.submit()
	default:
		if index, ok := digitChoice(msg.String()); ok {
			m = m.selectChoice(index)
		}
	}
	return m, nil
}

// handleConfirmKey resolves the partial-submission confirmation prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		m = m.finalize(m.pending)
	case "n", "N", "esc":
		m.confirming = false
		m = m.showNotice("Submission cancelled.", SeverityInfo)
	}
	return m, nil
}

// digitChoice maps "1".."9" to a zero-based choice index.
func digitChoice(s string) (int, bool) {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1'), true
	}
	return 0, false
}

// highlightedChoice returns the focused choice of the focused question.
func (m Model) highlightedChoice() int {
	if m.session.Len() == 0 {
		return 0
	}
	return m.choices[m.cursor]
}

// moveChoice shifts the choice highlight within the focused question.
func (m *Model) moveChoice(delta int) {
	if m.session.Len() == 0 {
		return
	}
	count := len(m.session.Document()[m.cursor].Choices)
	next := m.choices[m.cursor] + delta
	if next < 0 || next >= count {
		return
	}
	m.choices[m.cursor] = next
}

// selectChoice records a selection on the focused question.
func (m Model) selectChoice(choiceIndex int) Model {
	if m.session.Len() == 0 {
		return m
	}
	err := m.session.Select(m.cursor, choiceIndex)
	switch {
	case errors.Is(err, session.ErrInvalidState):
		return m.showNotice("This question is already answered.", SeverityWarning)
	case errors.Is(err, session.ErrIndexOutOfRange):
		return m
	case err != nil:
		return m.showNotice(err.Error(), SeverityError)
	}
	m.choices[m.cursor] = choiceIndex
	return m
}

// check evaluates the focused question's selection.
func (m Model) check() Model {
	if m.session.Len() == 0 {
		return m
	}
	phase, err := m.session.Check(m.cursor)
	switch {
	case errors.Is(err, session.ErrNoSelection):
		return m.showNotice("Please select an answer first!", SeverityWarning)
	case errors.Is(err, session.ErrInvalidState):
		return m.showNotice("This question is already answered.", SeverityWarning)
	case err != nil:
		return m.showNotice(err.Error(), SeverityError)
	}
	if phase == session.Correct {
		return m.showNotice("Correct answer!", SeveritySuccess)
	}
	return m.showNotice("Incorrect answer. Press r to try again.", SeverityWarning)
}

// retry reopens the focused question after an incorrect answer.
func (m Model) retry() Model {
	if m.session.Len() == 0 {
		return m
	}
	if err := m.session.Retry(m.cursor); err != nil {
		return m.showNotice("Nothing to retry on this question.", SeverityWarning)
	}
	m.choices[m.cursor] = 0
	return m.showNotice("Question reset. Try again!", SeverityInfo)
}

// submit runs the submission gate; a partial result asks for confirmation
// before any feedback is revealed.
func (m Model) submit() Model {
	submission, err := m.session.Submit()
	if errors.Is(err, session.ErrNothingAnswered) {
		return m.showNotice("Please answer at least one question before submitting!", SeverityWarning)
	}
	if err != nil {
		return m.showNotice(err.Error(), SeverityError)
	}
	if !submission.Complete {
		m.confirming = true
		m.pending = submission
		return m
	}
	return m.finalize(submission)
}

// finalize marks the quiz submitted and reveals the feedback panels.
func (m Model) finalize(submission session.Submission) Model {
	m.submitted = true
	m.summary = submission
	message := fmt.Sprintf("Quiz submitted! You answered %d out of %d questions.", submission.Answered, submission.Total)
	return m.showNotice(message, SeveritySuccess)
}

// showNotice replaces the footer toast and restarts its expiry clock.
func (m Model) showNotice(message string, severity Severity) Model {
	m.notice = Notice{Message: message, Severity: severity}
	m.noticeUntil = m.now.Add(noticeLifetime)
	return m
}
