package stubserver

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"quizren/internal/quiz"
)

// NewHandler builds the fixture router. With no fixture path configured the
// built-in sample quiz is served.
func NewHandler(cfg Config) (http.Handler, error) {
	payload := samplePayload
	if cfg.FixturePath != "" {
		data, err := os.ReadFile(cfg.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("read fixture: %w", err)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("fixture %s is not valid JSON", cfg.FixturePath)
		}
		payload = string(data)
	}

	router := chi.NewRouter()
	router.Get("/api/v1/quiz/data", serveQuizData(payload))
	return router, nil
}

// serveQuizData answers the data endpoint the way the real upstream does: a
// JSON array whose first record carries the encoded blob.
func serveQuizData(payload string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nid := strings.TrimSpace(r.URL.Query().Get("nid"))
		if nid == "" {
			http.Error(w, "missing nid parameter", http.StatusBadRequest)
			return
		}
		envelope := quiz.Envelope{{
			"nid":          nid,
			"title":        "Fixture quiz",
			quiz.BlobField: EncodeBlob(payload),
		}}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// EncodeBlob applies the upstream storage encoding: backslashes are doubled
// first (the known storage defect), then the text is entity-encoded. This is
// the exact inverse order of quiz.DecodeBlob.
func EncodeBlob(payload string) string {
	return html.EscapeString(strings.ReplaceAll(payload, `\`, `\\`))
}

// samplePayload is a small quiz with math notation so the backslash repair is
// visible end to end.
const samplePayload = `[
  {
    "question": "What is \\(2+2\\)?",
    "choices": [
      {"id": "a", "text": "3", "isCorrect": false},
      {"id": "b", "text": "4", "isCorrect": true},
      {"id": "c", "text": "5", "isCorrect": false}
    ],
    "feedback": {
      "correctText": "Four it is.",
      "incorrectText": "Count again."
    }
  },
  {
    "question": "Simplify \\(\\frac{2}{4}\\).",
    "choices": [
      {"id": "a", "text": "\\(\\frac{1}{2}\\)", "isCorrect": true},
      {"id": "b", "text": "\\(\\frac{1}{4}\\)", "isCorrect": false}
    ],
    "feedback": {
      "correctText": "Reduced correctly.",
      "incorrectText": "Divide numerator and denominator by 2."
    }
  }
]`
