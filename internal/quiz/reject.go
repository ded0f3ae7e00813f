package quiz

import "fmt"

// Reason classifies why normalization dropped a record or a choice.
type Reason int

const (
	// RejectInvalidJSON means the decoded payload was not a JSON array.
	RejectInvalidJSON Reason = iota
	// RejectMissingField means a record lacks question, choices or feedback.
	RejectMissingField
	// RejectEmptyChoices means the choices field is not a non-empty array.
	RejectEmptyChoices
	// RejectInvalidChoice means a single choice was dropped, not the record.
	RejectInvalidChoice
	// RejectNoValidChoices means no usable choice remained after filtering,
	// or none of the remaining choices is marked correct.
	RejectNoValidChoices
	// RejectInvalidFeedback means the feedback texts are missing or empty.
	RejectInvalidFeedback
)

// Rejection records one normalization drop with its source position. Index is
// the record's position in the source array, or -1 for payload-level
// failures. ChoiceIndex is set only for RejectInvalidChoice.
type Rejection struct {
	Index       int
	ChoiceIndex int
	Reason      Reason
}

// String renders a rejection for the skip log.
func (r Rejection) String() string {
	switch r.Reason {
	case RejectInvalidJSON:
		return "payload is not a JSON array of questions"
	case RejectMissingField:
		return fmt.Sprintf("question %d: missing question, choices or feedback", r.Index)
	case RejectEmptyChoices:
		return fmt.Sprintf("question %d: choices is not a non-empty array", r.Index)
	case RejectInvalidChoice:
		return fmt.Sprintf("question %d: choice %d dropped (missing id or text)", r.Index, r.ChoiceIndex)
	case RejectNoValidChoices:
		return fmt.Sprintf("question %d: no valid correct choice remains", r.Index)
	case RejectInvalidFeedback:
		return fmt.Sprintf("question %d: feedback texts missing", r.Index)
	default:
		return fmt.Sprintf("question %d: rejected", r.Index)
	}
}
