package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Fence markers stripped from model replies.
const (
	fencePrefix = "```json"
	fenceSuffix = "```"
)

// CleanAndParse strips a surrounding markdown code fence from a raw model
// reply and checks that the remainder is a JSON document.
//
// The reply is trimmed once, then a leading "```json" and a trailing "```"
// are removed if present at the very start and very end. If that text does
// not decode, the span from the first '[' or '{' to the last matching ']' or
// '}' is tried instead, which tolerates other fence styles and commentary
// around the JSON. Only syntax is checked here; see DecodeOutfits for the
// schema.
func CleanAndParse(raw string) (json.RawMessage, error) {
	cleaned := stripFence(raw)

	doc, err := decodeDocument(cleaned)
	if err == nil {
		return doc, nil
	}

	if span, ok := extractJSONSpan(cleaned); ok && span != cleaned {
		if doc, spanErr := decodeDocument(span); spanErr == nil {
			return doc, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
}

// stripFence applies the literal prefix/suffix removal.
func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, fencePrefix)
	s = strings.TrimSuffix(s, fenceSuffix)
	return s
}

// decodeDocument decodes s as a single JSON value and returns it compacted.
func decodeDocument(s string) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, doc); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// extractJSONSpan returns the text between the first opening bracket and the
// last closing bracket of the same kind.
func extractJSONSpan(s string) (string, bool) {
	start := strings.IndexAny(s, "[{")
	if start < 0 {
		return "", false
	}

	closing := byte(']')
	if s[start] == '{' {
		closing = '}'
	}

	end := strings.LastIndexByte(s, closing)
	if end <= start {
		return "", false
	}

	return s[start : end+1], true
}
