package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizren/internal/quiz"
	"quizren/internal/stubserver"
)

// EncodeQuizBlob applies the upstream storage encoding to a JSON payload.
func EncodeQuizBlob(payload string) string {
	return stubserver.EncodeBlob(payload)
}

// EnvelopeBody builds a one-record envelope carrying the encoded payload.
func EnvelopeBody(t testing.TB, payload string) []byte {
	t.Helper()
	envelope := quiz.Envelope{{quiz.BlobField: EncodeQuizBlob(payload)}}
	body, err := json.Marshal(envelope)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return body
}

// QuizServer starts a test server that answers every nid with an envelope for
// the given payload. The server is closed with the test.
func QuizServer(t testing.TB, payload string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("nid") == "" {
			http.Error(w, "missing nid", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(EnvelopeBody(t, payload))
	}))
	t.Cleanup(server.Close)
	return server
}
