// Package extract recovers a single JSON document from the free-form text reply
// of a language model.
//
// Models frequently wrap JSON in markdown code fences and surround it with prose.
// Block isolates the candidate JSON and Decode parses it into a result type.
// Malformed JSON is reported, never repaired.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// ErrStructuredOutput is the sentinel wrapped by every OutputError.
var ErrStructuredOutput = errors.New("invalid structured output from language model")

// OutputError reports that a model reply did not contain parseable JSON.
// Text holds the candidate that failed to parse, for server-side logging only.
type OutputError struct {
	Err  error
	Text string
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s: %v", ErrStructuredOutput.Error(), e.Err)
}

// Unwrap exposes both the sentinel and the underlying decoder error.
func (e *OutputError) Unwrap() []error {
	return []error{ErrStructuredOutput, e.Err}
}

// Block returns the JSON candidate contained in text:
//
//  1. the body of the first fence opened with "```json", if any;
//  2. otherwise the body of the first "```" fence, language tag included;
//  3. otherwise the whole text.
//
// The result is trimmed of surrounding whitespace. A fence without a closing
// marker extends to the end of the text.
func Block(text string) string {
	switch {
	case strings.Contains(text, jsonFence):
		return between(text, jsonFence)
	case strings.Contains(text, fence):
		return between(text, fence)
	default:
		return strings.TrimSpace(text)
	}
}

// between returns the trimmed text after the first occurrence of open and
// before the next fence marker.
func between(text, open string) string {
	start := strings.Index(text, open) + len(open)
	rest := text[start:]
	if end := strings.Index(rest, fence); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// Decode extracts the JSON candidate from text and unmarshals it into v.
// On failure it returns an *OutputError carrying the decoder diagnostic.
func Decode(text string, v any) error {
	candidate := Block(text)

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return &OutputError{Err: err, Text: candidate}
	}
	return nil
}

// Into is the generic form of Decode.
func Into[T any](text string) (T, error) {
	var out T
	if err := Decode(text, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
