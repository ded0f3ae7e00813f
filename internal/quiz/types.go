package quiz

// Envelope is the outer JSON array returned by the quiz endpoint. Only the
// first record is consumed; its fields are kept loose because the upstream
// view attaches arbitrary node fields alongside the quiz payload.
type Envelope []map[string]any

// Choice is one selectable answer within a question.
type Choice struct {
	ID      string
	Text    string
	Correct bool
}

// Feedback holds the texts revealed after an answer is checked.
type Feedback struct {
	Correct   string
	Incorrect string
}

// Question is a normalized multiple-choice question. Identity is positional:
// a question is addressed by its index within the document, and choice order
// is presentation order.
type Question struct {
	Prompt   string
	Choices  []Choice
	Feedback Feedback
}

// Document is an ordered set of normalized questions. An empty document is a
// valid outcome meaning no usable questions survived normalization, not an
// error.
type Document []Question
