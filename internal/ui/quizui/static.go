package quizui

import (
	"fmt"
	"strings"

	"quizren/internal/quiz"
)

// RenderStatic renders a document for plain, non-interactive output. It never
// reveals which choices are correct; that is the interactive flow's job.
func RenderStatic(document quiz.Document) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Quiz Questions (%d)\n", len(document))
	for i, question := range document {
		fmt.Fprintf(&out, "\n%d. %s\n", i+1, question.Prompt)
		for j, choice := range question.Choices {
			fmt.Fprintf(&out, "   %d) %s\n", j+1, choice.Text)
		}
	}
	return out.String()
}
