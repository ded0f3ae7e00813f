package quiz

import (
	"errors"
	"testing"
)

// TestExtractBlob verifies the blob is taken from the first envelope record.
func TestExtractBlob(t *testing.T) {
	envelope := Envelope{
		{"title": "Sample quiz", BlobField: "[1,2]"},
		{BlobField: "ignored"},
	}
	blob, err := ExtractBlob(envelope)
	if err != nil {
		t.Fatalf("extract blob: %v", err)
	}
	if blob != "[1,2]" {
		t.Fatalf("expected blob from first record, got %q", blob)
	}
}

// TestExtractBlobMissing verifies missing or unusable payloads are rejected.
func TestExtractBlobMissing(t *testing.T) {
	cases := []struct {
		name     string
		envelope Envelope
	}{
		{"empty envelope", Envelope{}},
		{"field absent", Envelope{{"title": "no quiz here"}}},
		{"field not a string", Envelope{{BlobField: 42}}},
		{"field blank", Envelope{{BlobField: "   "}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractBlob(tc.envelope)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
		})
	}
}

// TestDecodeBlobEntities verifies HTML entities decode exactly once.
func TestDecodeBlobEntities(t *testing.T) {
	decoded := DecodeBlob("[{&quot;question&quot;:&quot;a &amp; b&quot;}]")
	if decoded != `[{"question":"a & b"}]` {
		t.Fatalf("unexpected decode result: %q", decoded)
	}
}

// TestDecodeBlobCollapsesBackslashesOnce verifies the collapse is a single
// pass: four backslashes must become two, never one.
func TestDecodeBlobCollapsesBackslashesOnce(t *testing.T) {
	if got := DecodeBlob(`\\\\`); got != `\\` {
		t.Fatalf("expected two backslashes, got %q", got)
	}
	if got := DecodeBlob(`\\frac{1}{2}`); got != `\frac{1}{2}` {
		t.Fatalf("expected single-escaped latex, got %q", got)
	}
}

// TestDecodeBlobDeterministic verifies decoding is a pure function.
func TestDecodeBlobDeterministic(t *testing.T) {
	input := `&quot;x \\&quot; y&quot;`
	first := DecodeBlob(input)
	second := DecodeBlob(input)
	if first != second {
		t.Fatalf("decode not deterministic: %q vs %q", first, second)
	}
}
