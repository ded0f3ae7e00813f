package quiz

import (
	"encoding/json"
	"strings"
)

// Normalize parses a decoded payload into a strict Document. It never fails
// outright: malformed records are skipped and reported in the rejection log
// so a partially valid quiz still renders. An empty document with rejections
// is the "no valid questions" outcome.
func Normalize(decoded string) (Document, []Rejection) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(decoded), &records); err != nil {
		return Document{}, []Rejection{{Index: -1, ChoiceIndex: -1, Reason: RejectInvalidJSON}}
	}

	document := make(Document, 0, len(records))
	var rejections []Rejection
	for i, record := range records {
		question, drops, ok := normalizeRecord(i, record)
		rejections = append(rejections, drops...)
		if ok {
			document = append(document, question)
		}
	}
	return document, rejections
}

// normalizeRecord converts one raw record into a Question. Individual bad
// choices are dropped without sinking the record; everything else rejects the
// record as a whole.
func normalizeRecord(index int, record json.RawMessage) (Question, []Rejection, bool) {
	reject := func(reason Reason) (Question, []Rejection, bool) {
		return Question{}, []Rejection{{Index: index, ChoiceIndex: -1, Reason: reason}}, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return reject(RejectMissingField)
	}

	prompt, ok := stringField(fields, "question")
	if !ok {
		return reject(RejectMissingField)
	}
	rawChoices, hasChoices := fields["choices"]
	rawFeedback, hasFeedback := fields["feedback"]
	if !hasChoices || !hasFeedback {
		return reject(RejectMissingField)
	}

	var choiceRecords []json.RawMessage
	if err := json.Unmarshal(rawChoices, &choiceRecords); err != nil || len(choiceRecords) == 0 {
		return reject(RejectEmptyChoices)
	}

	var rejections []Rejection
	choices := make([]Choice, 0, len(choiceRecords))
	hasCorrect := false
	for j, choiceRecord := range choiceRecords {
		choice, ok := normalizeChoice(choiceRecord)
		if !ok {
			rejections = append(rejections, Rejection{Index: index, ChoiceIndex: j, Reason: RejectInvalidChoice})
			continue
		}
		if choice.Correct {
			hasCorrect = true
		}
		choices = append(choices, choice)
	}
	if len(choices) == 0 || !hasCorrect {
		rejections = append(rejections, Rejection{Index: index, ChoiceIndex: -1, Reason: RejectNoValidChoices})
		return Question{}, rejections, false
	}

	feedback, ok := normalizeFeedback(rawFeedback)
	if !ok {
		rejections = append(rejections, Rejection{Index: index, ChoiceIndex: -1, Reason: RejectInvalidFeedback})
		return Question{}, rejections, false
	}

	return Question{Prompt: prompt, Choices: choices, Feedback: feedback}, rejections, true
}

// normalizeChoice requires a non-empty id and text; the correctness flag is
// coerced to a boolean and defaults to false when absent.
func normalizeChoice(record json.RawMessage) (Choice, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(record, &fields); err != nil {
		return Choice{}, false
	}
	id, ok := stringField(fields, "id")
	if !ok {
		return Choice{}, false
	}
	text, ok := stringField(fields, "text")
	if !ok {
		return Choice{}, false
	}
	correct := boolField(fields, "isCorrect", "is_correct")
	return Choice{ID: id, Text: text, Correct: correct}, true
}

// normalizeFeedback requires both feedback texts. Stored quizzes predating
// the field rename still use the snake_case spellings, so those are accepted
// as fallbacks.
func normalizeFeedback(raw json.RawMessage) (Feedback, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Feedback{}, false
	}
	correct, ok := stringField(fields, "correctText", "correct_feedback")
	if !ok {
		return Feedback{}, false
	}
	incorrect, ok := stringField(fields, "incorrectText", "incorrect_feedback")
	if !ok {
		return Feedback{}, false
	}
	return Feedback{Correct: correct, Incorrect: incorrect}, true
}

// stringField returns the first named field that decodes to a non-blank
// string. Values that are all whitespace count as missing.
func stringField(fields map[string]json.RawMessage, names ...string) (string, bool) {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		return value, true
	}
	return "", false
}

// boolField coerces the first named field to a boolean. The upstream authors
// quizzes by hand, so "true"/"1" strings and numeric flags all appear in the
// wild; anything unrecognized counts as false.
func boolField(fields map[string]json.RawMessage, names ...string) bool {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var flag bool
		if err := json.Unmarshal(raw, &flag); err == nil {
			return flag
		}
		var number float64
		if err := json.Unmarshal(raw, &number); err == nil {
			return number != 0
		}
		var text string
		if err := json.Unmarshal(raw, &text); err == nil {
			switch strings.ToLower(strings.TrimSpace(text)) {
			case "true", "1", "yes":
				return true
			}
			return false
		}
		return false
	}
	return false
}
