package stubserver

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"quizren/internal/fetch"
	"quizren/internal/quiz"
)

// TestHandlerServesSample verifies the built-in sample survives the full
// fetch, decode, normalize pipeline.
func TestHandlerServesSample(t *testing.T) {
	handler, err := NewHandler(Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	client, err := fetch.NewClient(server.URL+"/api/v1/quiz/data", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	envelope, err := client.Fetch(context.Background(), "1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	blob, err := quiz.ExtractBlob(envelope)
	if err != nil {
		t.Fatalf("extract blob: %v", err)
	}
	document, rejections := quiz.Normalize(quiz.DecodeBlob(blob))
	if len(rejections) != 0 {
		t.Fatalf("sample produced rejections: %v", rejections)
	}
	if len(document) != 2 {
		t.Fatalf("expected two sample questions, got %d", len(document))
	}
	if document[0].Prompt != `What is \(2+2\)?` {
		t.Fatalf("math escaping mangled: %q", document[0].Prompt)
	}
}

// TestHandlerRequiresNID verifies the endpoint rejects requests without an
// item id, like the upstream view does.
func TestHandlerRequiresNID(t *testing.T) {
	handler, err := NewHandler(Config{Addr: ":0"})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/v1/quiz/data")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 without nid, got %d", resp.StatusCode)
	}
}

// TestHandlerFixtureFile verifies a fixture file replaces the sample and
// invalid fixtures are refused at startup.
func TestHandlerFixtureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.json")
	payload := `[{"question":"q","choices":[{"id":"a","text":"t","isCorrect":true}],"feedback":{"correctText":"y","incorrectText":"n"}}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	handler, err := NewHandler(Config{Addr: ":0", FixturePath: path})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	client, err := fetch.NewClient(server.URL+"/api/v1/quiz/data", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	envelope, err := client.Fetch(context.Background(), "9")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	blob, err := quiz.ExtractBlob(envelope)
	if err != nil {
		t.Fatalf("extract blob: %v", err)
	}
	document, _ := quiz.Normalize(quiz.DecodeBlob(blob))
	if len(document) != 1 || document[0].Prompt != "q" {
		t.Fatalf("fixture not served: %+v", document)
	}

	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("write bad fixture: %v", err)
	}
	if _, err := NewHandler(Config{Addr: ":0", FixturePath: bad}); err == nil {
		t.Fatalf("expected error for invalid fixture")
	}
}
