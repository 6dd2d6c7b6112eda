package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The provider occasionally emits a stray quote after a numeric field
// (observed as `"id": 123"`), which breaks strict parsing. Repair it before
// the parse attempt.
var strayNumericQuote = regexp.MustCompile(`"(\w+)":\s*(\d+)"`)

// RepairJSON normalizes known provider malformations in a JSON payload.
func RepairJSON(text string) string {
	return strayNumericQuote.ReplaceAllString(text, `"$1": $2`)
}

// ExtractMessageText locates the textual payload in a response envelope: the
// first output item tagged as a message, then its first content block. The
// second return is false when no such item exists.
func ExtractMessageText(env *ResponseEnvelope) (string, bool) {
	if env == nil {
		return "", false
	}
	for _, item := range env.Output {
		if item.Type != "message" {
			continue
		}
		if len(item.Content) == 0 {
			return "", false
		}
		return item.Content[0].Text, true
	}
	return "", false
}

// ParsePayload attempts a strict JSON parse of model text, after stripping
// markdown fences and repairing known malformations. The parsed value is
// returned as-is; callers adapt it to their own shape.
func ParsePayload(text string) (any, error) {
	cleaned := RepairJSON(extractJSON(text))

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// ExtractCandidatePayload resolves an envelope into the candidate-list
// payload. A missing message item yields nil. Unparseable text falls back to
// the raw string rather than an error; this is a silent data-quality
// degradation, not a failure.
func ExtractCandidatePayload(env *ResponseEnvelope) any {
	text, ok := ExtractMessageText(env)
	if !ok {
		return nil
	}

	parsed, err := ParsePayload(text)
	if err != nil {
		return text
	}
	return parsed
}

// extractJSON trims markdown fences and slices the outermost JSON object or
// array out of surrounding prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	// Prefer an array when it opens before the first object; candidate lists
	// arrive as arrays of objects.
	if startArr != -1 && endArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj) {
		return text[startArr : endArr+1]
	}
	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
