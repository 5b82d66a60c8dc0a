package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const genericErrorMessage = "An unexpected error occurred"

// extractErrorMessage picks the user-facing message from an error body, trying
// detail, error, non_field_errors[0] and then the first field error, in that order.
func extractErrorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return genericErrorMessage
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		var text string
		if json.Unmarshal(trimmed, &text) == nil && text != "" {
			return text
		}

		return genericErrorMessage
	}

	if msg := rawText(fields["detail"]); msg != "" {
		return msg
	}
	if raw, ok := fields["error"]; ok && !isNull(raw) {
		if msg := rawText(raw); msg != "" {
			return msg
		}

		return string(bytes.TrimSpace(raw))
	}
	if raw, ok := fields["non_field_errors"]; ok {
		var list []json.RawMessage
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
			return rawText(list[0])
		}
	}

	if key, raw, ok := firstField(trimmed); ok {
		var list []json.RawMessage
		if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
			raw = list[0]
		}

		return fmt.Sprintf("%s: %s", key, rawDisplay(raw))
	}

	return genericErrorMessage
}

// firstField returns the first key of a JSON object in document order.
func firstField(body []byte) (string, json.RawMessage, bool) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	if tok, err := decoder.Token(); err != nil || tok != json.Delim('{') {
		return "", nil, false
	}
	if !decoder.More() {
		return "", nil, false
	}

	tok, err := decoder.Token()
	if err != nil {
		return "", nil, false
	}
	key, _ := tok.(string)

	var value json.RawMessage
	if err := decoder.Decode(&value); err != nil {
		return "", nil, false
	}

	return key, value, true
}

func rawText(raw json.RawMessage) string {
	var text string
	if len(raw) == 0 || json.Unmarshal(raw, &text) != nil {
		return ""
	}

	return text
}

func rawDisplay(raw json.RawMessage) string {
	if text := rawText(raw); text != "" {
		return text
	}

	return strings.TrimSpace(string(raw))
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
