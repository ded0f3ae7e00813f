package quiz

import (
	"errors"
	"html"
	"strings"
)

// BlobField is the envelope field carrying the encoded quiz payload.
const BlobField = "field_quiz_data"

// ErrMissingField indicates the envelope carries no quiz payload.
var ErrMissingField = errors.New("envelope has no " + BlobField + " field")

// ExtractBlob returns the raw quiz blob from the first envelope record.
func ExtractBlob(envelope Envelope) (string, error) {
	if len(envelope) == 0 {
		return "", ErrMissingField
	}
	value, ok := envelope[0][BlobField]
	if !ok {
		return "", ErrMissingField
	}
	blob, ok := value.(string)
	if !ok || strings.TrimSpace(blob) == "" {
		return "", ErrMissingField
	}
	return blob, nil
}

// DecodeBlob reverses the two encoding layers the upstream storage applies:
// HTML entity encoding first, then the doubled backslashes its escaping
// defect leaves inside JSON string literals. Each layer is reversed exactly
// once; collapsing backslashes repeatedly would eat the single escapes that
// embedded math notation relies on.
func DecodeBlob(blob string) string {
	return collapseEscapes(html.UnescapeString(blob))
}

// collapseEscapes rewrites every doubled backslash to a single one in one
// left-to-right pass. strings.ReplaceAll scans past each replacement, so four
// backslashes become two, never one.
func collapseEscapes(text string) string {
	return strings.ReplaceAll(text, `\\`, `\`)
}
