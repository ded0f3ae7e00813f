package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunNoArgs verifies bare invocation prints usage and exits with the
// usage code.
func TestRunNoArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit code, got %d", code)
	}
	if !strings.Contains(stdout.String(), "quizren <command>") {
		t.Fatalf("usage not printed:\n%s", stdout.String())
	}
}

// TestRunHelp verifies help lists every command.
func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"--help"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit code, got %d", code)
	}
	for _, name := range []string{"play", "inspect", "serve"} {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("help missing command %q:\n%s", name, stdout.String())
		}
	}
}

// TestRunUnknownCommand verifies unknown commands report usage on stderr.
func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"bogus"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected usage exit code, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Fatalf("unexpected stderr:\n%s", stderr.String())
	}
}
