package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizren/internal/testutil"
)

const playPayload = `[{"question":"2+2=?","choices":[{"id":"a","text":"3","isCorrect":false},{"id":"b","text":"4","isCorrect":true}],"feedback":{"correctText":"Right","incorrectText":"Wrong"}}]`

// TestPlayPlainMode verifies the full pipeline renders questions in plain
// mode without revealing answers.
func TestPlayPlainMode(t *testing.T) {
	server := testutil.QuizServer(t, playPayload)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--endpoint", server.URL, "--item", "42", "--ui", "plain"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "2+2=?") || !strings.Contains(out, "1) 3") {
		t.Fatalf("questions missing from output:\n%s", out)
	}
	if strings.Contains(out, "Right") || strings.Contains(out, "isCorrect") {
		t.Fatalf("plain output leaked answer data:\n%s", out)
	}
}

// TestPlayTransportFailure verifies a non-2xx upstream yields one terminal
// message and an error exit.
func TestPlayTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--endpoint", server.URL, "--item", "42", "--ui", "plain"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Failed to load quiz data") {
		t.Fatalf("terminal message missing:\n%s", stderr.String())
	}
}

// TestPlayMissingBlobField verifies an envelope without the quiz field maps
// to the "no data" message.
func TestPlayMissingBlobField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"title":"not a quiz"}]`))
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--endpoint", server.URL, "--item", "42", "--ui", "plain"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "No quiz data returned") {
		t.Fatalf("missing-data message absent:\n%s", stderr.String())
	}
}

// TestPlayAllRecordsRejected verifies a quiz whose records all fail
// validation surfaces the no-valid-questions message plus the skip log.
func TestPlayAllRecordsRejected(t *testing.T) {
	server := testutil.QuizServer(t, `[{"question":"no choices","choices":[],"feedback":{}}]`)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--endpoint", server.URL, "--item", "42", "--ui", "plain"}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	errOut := stderr.String()
	if !strings.Contains(errOut, "No valid quiz questions found.") {
		t.Fatalf("terminal message missing:\n%s", errOut)
	}
	if !strings.Contains(errOut, "skipped:") {
		t.Fatalf("rejection log missing:\n%s", errOut)
	}
}

// TestPlayRequiresEndpointAndItem verifies the configuration gate runs
// before the pipeline.
func TestPlayRequiresEndpointAndItem(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--ui", "plain"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "required") {
		t.Fatalf("configuration error missing:\n%s", stderr.String())
	}
}

// TestInspectPrintsCorrectness verifies inspect marks correct choices and
// counts rejections.
func TestInspectPrintsCorrectness(t *testing.T) {
	server := testutil.QuizServer(t, playPayload)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"inspect", "--endpoint", server.URL, "--item", "42"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "1 valid question(s)") {
		t.Fatalf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "* 2) [b] 4") {
		t.Fatalf("correct choice marker missing:\n%s", out)
	}
}
