package cucumber

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"quizren/internal/quiz"
	"quizren/internal/session"
)

// featureState holds scenario state for session feature tests.
type featureState struct {
	session    *session.Session
	lastErr    error
	submission session.Submission
	submitErr  error
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = featureState{}
		return ctx, nil
	})

	ctx.Step(`^a quiz with the following questions:$`, state.aQuizWithQuestions)
	ctx.Step(`^I select choice (\d+) on question (\d+)$`, state.iSelectChoice)
	ctx.Step(`^I check question (\d+)$`, state.iCheckQuestion)
	ctx.Step(`^I retry question (\d+)$`, state.iRetryQuestion)
	ctx.Step(`^question (\d+) is (correct|incorrect|unanswered)$`, state.questionIs)
	ctx.Step(`^selecting on question (\d+) is rejected$`, state.selectingIsRejected)
	ctx.Step(`^the gesture fails with no selection$`, state.gestureFailsNoSelection)
	ctx.Step(`^I submit the quiz$`, state.iSubmitTheQuiz)
	ctx.Step(`^submission is blocked$`, state.submissionIsBlocked)
	ctx.Step(`^the submission is partial with (\d+) of (\d+) answered$`, state.submissionIsPartial)
	ctx.Step(`^the submission is complete with (\d+) of (\d+) answered$`, state.submissionIsComplete)
}

// aQuizWithQuestions builds a session from a prompt/choices/correct table.
func (s *featureState) aQuizWithQuestions(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("table needs a header and at least one question")
	}
	document := quiz.Document{}
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 3 {
			return fmt.Errorf("expected 3 cells, got %d", len(row.Cells))
		}
		prompt := row.Cells[0].Value
		texts := strings.Split(row.Cells[1].Value, ",")
		correct, err := strconv.Atoi(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("parse correct column: %w", err)
		}
		choices := make([]quiz.Choice, 0, len(texts))
		for i, text := range texts {
			choices = append(choices, quiz.Choice{
				ID:      fmt.Sprintf("c%d", i+1),
				Text:    strings.TrimSpace(text),
				Correct: i+1 == correct,
			})
		}
		document = append(document, quiz.Question{
			Prompt:   prompt,
			Choices:  choices,
			Feedback: quiz.Feedback{Correct: "Right", Incorrect: "Wrong"},
		})
	}
	s.session = session.New(document)
	return nil
}

func (s *featureState) iSelectChoice(choice, question int) error {
	s.lastErr = s.session.Select(question-1, choice-1)
	return nil
}

func (s *featureState) iCheckQuestion(question int) error {
	_, s.lastErr = s.session.Check(question - 1)
	return nil
}

func (s *featureState) iRetryQuestion(question int) error {
	s.lastErr = s.session.Retry(question - 1)
	return nil
}

func (s *featureState) questionIs(question int, phase string) error {
	state, err := s.session.State(question - 1)
	if err != nil {
		return err
	}
	if state.Phase.String() != phase {
		return fmt.Errorf("question %d is %s, expected %s", question, state.Phase, phase)
	}
	return nil
}

func (s *featureState) selectingIsRejected(question int) error {
	if err := s.session.Select(question-1, 0); !errors.Is(err, session.ErrInvalidState) {
		return fmt.Errorf("expected invalid state, got %v", err)
	}
	return nil
}

func (s *featureState) gestureFailsNoSelection() error {
	if !errors.Is(s.lastErr, session.ErrNoSelection) {
		return fmt.Errorf("expected no-selection failure, got %v", s.lastErr)
	}
	return nil
}

func (s *featureState) iSubmitTheQuiz() error {
	s.submission, s.submitErr = s.session.Submit()
	return nil
}

func (s *featureState) submissionIsBlocked() error {
	if !errors.Is(s.submitErr, session.ErrNothingAnswered) {
		return fmt.Errorf("expected nothing-answered block, got %v", s.submitErr)
	}
	return nil
}

func (s *featureState) submissionIsPartial(answered, total int) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	if s.submission.Complete || s.submission.Answered != answered || s.submission.Total != total {
		return fmt.Errorf("expected partial %d/%d, got %+v", answered, total, s.submission)
	}
	return nil
}

func (s *featureState) submissionIsComplete(answered, total int) error {
	if s.submitErr != nil {
		return s.submitErr
	}
	if !s.submission.Complete || s.submission.Answered != answered || s.submission.Total != total {
		return fmt.Errorf("expected complete %d/%d, got %+v", answered, total, s.submission)
	}
	return nil
}
