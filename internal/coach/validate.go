package coach

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lifecoach/internal/model"
)

const (
	problemCount = 3

	problemsKey        = "problems"
	recommendationsKey = "recommendations"
)

var (
	problemFields        = []string{"id", "title", "description"}
	recommendationFields = []string{"problem_id", "advice"}
)

func parseProblems(text string) ([]model.Problem, error) {
	raw, err := parseJSON(text)
	if err != nil {
		return nil, err
	}

	items, ok := unwrapArray(raw, problemsKey)
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("Expected exactly %d problems, got 0", problemCount)}
	}

	if len(items) != problemCount {
		return nil, &ValidationError{Message: fmt.Sprintf("Expected exactly %d problems, got %d", problemCount, len(items))}
	}

	return decodeItems[model.Problem](items, problemFields, "Problem")
}

func parseRecommendations(text string) ([]model.Recommendation, error) {
	raw, err := parseJSON(text)
	if err != nil {
		return nil, err
	}

	items, ok := unwrapArray(raw, recommendationsKey)
	if !ok {
		return nil, &ValidationError{Message: "Expected a list of recommendations"}
	}

	return decodeItems[model.Recommendation](items, recommendationFields, "Recommendation")
}

func parseJSON(text string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, &ResponseParseError{Err: err}
	}
	return raw, nil
}

// unwrapArray accepts either an object holding the array under key or a bare array.
// Anything else, including null, reports false.
func unwrapArray(raw json.RawMessage, key string) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}

	switch raw[0] {
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, false
		}
		inner, ok := wrapper[key]
		if !ok {
			return nil, false
		}
		return decodeArray(inner)
	case '[':
		return decodeArray(raw)
	default:
		return nil, false
	}
}

func decodeArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// decodeItems checks every element for the required keys before decoding it.
// A required key holding null or an empty string counts as missing.
// Unknown keys are ignored; the first bad element fails the whole batch.
func decodeItems[T any](items []json.RawMessage, required []string, noun string) ([]T, error) {
	out := make([]T, 0, len(items))
	missing := &ValidationError{Message: noun + " missing required fields"}

	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			return nil, missing
		}

		for _, key := range required {
			if isBlank(fields[key]) {
				return nil, missing
			}
		}

		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, missing
		}
		out = append(out, v)
	}

	return out, nil
}

func isBlank(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null")) || bytes.Equal(v, []byte(`""`))
}
