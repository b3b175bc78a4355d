// Package jsonx extracts JSON payloads embedded in free-form model output.
//
// Generation providers are instructed to return pure JSON but routinely wrap
// it in prose or markdown fences. The helpers here locate the outermost
// bracket-delimited substring and decode it, returning a typed failure so
// every caller's fallback trigger is uniform and testable independently of
// the generation call.
package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that no candidate JSON payload exists in the text.
var ErrNotFound = errors.New("no JSON payload found")

// ExtractArray decodes the first-to-last bracket-delimited array substring
// of text into out.
func ExtractArray(text string, out any) error {
	return extract(text, '[', ']', out)
}

// ExtractObject decodes the first-to-last brace-delimited object substring
// of text into out.
func ExtractObject(text string, out any) error {
	return extract(text, '{', '}', out)
}

func extract(text string, open, close byte, out any) error {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), out); err != nil {
		return fmt.Errorf("decoding extracted JSON: %w", err)
	}
	return nil
}
