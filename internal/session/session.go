package session

import (
	"errors"

	"github.com/google/uuid"

	"quizren/internal/quiz"
)

// Phase is the interaction state of a single question.
type Phase int

const (
	// Unanswered is the initial phase; selection is open.
	Unanswered Phase = iota
	// Correct is terminal: one correct attempt ends the question.
	Correct
	// Incorrect allows a retry back to Unanswered.
	Incorrect
)

// String names a phase for logs and plain rendering.
func (p Phase) String() string {
	switch p {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unanswered"
	}
}

// NoSelection marks a question with no choice selected.
const NoSelection = -1

// ErrInvalidState signals a gesture the current phase forbids.
var ErrInvalidState = errors.New("question is not open for this action")

// ErrNoSelection signals a check with nothing selected.
var ErrNoSelection = errors.New("no choice selected")

// ErrNothingAnswered signals a submit before any question was checked.
var ErrNothingAnswered = errors.New("no questions answered yet")

// ErrIndexOutOfRange signals a gesture addressing a question or choice that
// does not exist.
var ErrIndexOutOfRange = errors.New("index out of range")

// QuestionState is the mutable interaction state of one question. Selected is
// a choice index or NoSelection.
type QuestionState struct {
	Selected int
	Phase    Phase
}

// Submission is the outcome of the submit gate. Complete is false for a
// partial submission, which needs external confirmation before the adapter
// reveals all feedback.
type Submission struct {
	Complete bool
	Answered int
	Total    int
}

// Session owns a normalized quiz document and the live state of each
// question. The document is immutable after construction; states change only
// through the transition methods. A session is ephemeral, scoped to one view.
type Session struct {
	id       string
	document quiz.Document
	states   []QuestionState
}

// New creates a session with every question unanswered.
func New(document quiz.Document) *Session {
	states := make([]QuestionState, len(document))
	for i := range states {
		states[i] = QuestionState{Selected: NoSelection, Phase: Unanswered}
	}
	return &Session{
		id:       uuid.NewString(),
		document: document,
		states:   states,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Document returns the normalized quiz. Callers must treat it as read-only.
func (s *Session) Document() quiz.Document { return s.document }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.document) }

// State returns a copy of one question's interaction state.
func (s *Session) State(questionIndex int) (QuestionState, error) {
	if questionIndex < 0 || questionIndex >= len(s.states) {
		return QuestionState{}, ErrIndexOutOfRange
	}
	return s.states[questionIndex], nil
}

// Snapshot returns a copy of every question state for rendering.
func (s *Session) Snapshot() []QuestionState {
	snapshot := make([]QuestionState, len(s.states))
	copy(snapshot, s.states)
	return snapshot
}

// Select records a choice for an open question. Re-selecting before a check
// overwrites the previous selection.
func (s *Session) Select(questionIndex, choiceIndex int) error {
	if questionIndex < 0 || questionIndex >= len(s.states) {
		return ErrIndexOutOfRange
	}
	if choiceIndex < 0 || choiceIndex >= len(s.document[questionIndex].Choices) {
		return ErrIndexOutOfRange
	}
	if s.states[questionIndex].Phase != Unanswered {
		return ErrInvalidState
	}
	s.states[questionIndex].Selected = choiceIndex
	return nil
}

// Check evaluates the selected choice against the immutable document and
// moves the question to Correct or Incorrect. This is the only place
// correctness is decided.
func (s *Session) Check(questionIndex int) (Phase, error) {
	if questionIndex < 0 || questionIndex >= len(s.states) {
		return Unanswered, ErrIndexOutOfRange
	}
	state := s.states[questionIndex]
	if state.Phase != Unanswered {
		return state.Phase, ErrInvalidState
	}
	if state.Selected == NoSelection {
		return Unanswered, ErrNoSelection
	}
	phase := Incorrect
	if s.document[questionIndex].Choices[state.Selected].Correct {
		phase = Correct
	}
	s.states[questionIndex].Phase = phase
	return phase, nil
}

// Retry reopens an incorrectly answered question with its selection cleared.
// Correct answers are final and cannot be retried.
func (s *Session) Retry(questionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(s.states) {
		return ErrIndexOutOfRange
	}
	if s.states[questionIndex].Phase != Incorrect {
		return ErrInvalidState
	}
	s.states[questionIndex] = QuestionState{Selected: NoSelection, Phase: Unanswered}
	return nil
}

// Summary reports how many questions have been answered, in either direction,
// out of the total. It is derived on demand, never stored.
func (s *Session) Summary() (answered, total int) {
	for _, state := range s.states {
		if state.Phase != Unanswered {
			answered++
		}
	}
	return answered, len(s.states)
}

// Submit gates the submission flow without mutating any question state. It
// fails when nothing was answered; otherwise it reports whether the
// submission is complete or needs confirmation as a partial one.
func (s *Session) Submit() (Submission, error) {
	answered, total := s.Summary()
	if answered == 0 {
		return Submission{}, ErrNothingAnswered
	}
	return Submission{Complete: answered == total, Answered: answered, Total: total}, nil
}
